package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output control flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds input and output location overrides.
type pathFlags struct {
	output string
	root   string
	graphs string
}

// outputFlags holds extra output and checking modes.
type outputFlags struct {
	html   bool // Write the intermediate HTML next to the PDF
	verify bool // Read the PDF back and check its page count
}

// cliFlags holds every flag of the command.
type cliFlags struct {
	common     commonFlags
	paths      pathFlags
	outputMode outputFlags
	date       string
	timeout    string
	version    bool
	help       bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show descriptions sources, missing graphs and timing")
}

// addPathFlags adds location flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (parent directory must exist)")
	fs.StringVar(&f.root, "root", "", "directory containing temp/ and the graph directory")
	fs.StringVar(&f.graphs, "graphs", "", "graph directory, relative to --root")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "also write the HTML used to print the PDF")
	fs.BoolVar(&f.verify, "verify", false, "check the written PDF page count")
}

// parseFlags parses the command line (args[0] is the program name) and
// returns the remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("beaddeck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addOutputFlags(fs, &f.outputMode)
	fs.StringVar(&f.date, "date", "", "title page date: literal, \"auto\" or \"auto:FORMAT\"")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
