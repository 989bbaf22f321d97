package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: beaddeck [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the Bead Web Visualization Presentation PDF from bead READMEs")
	fmt.Fprintln(w, "(temp/<bead>/output/README.md) and graph images (output/graph_*.png).")
	fmt.Fprintln(w, "Without flags, writes output/bead_web_presentation.pdf.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (parent directory must exist)")
	fmt.Fprintln(w, "      --root <dir>          Directory containing temp/ (default: .)")
	fmt.Fprintln(w, "      --graphs <dir>        Graph directory, relative to --root (default: output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Date]: YYYY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (default: 30s)")
	fmt.Fprintln(w, "      --html                Also write the HTML next to the PDF")
	fmt.Fprintln(w, "      --verify              Check the written PDF page count")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show description sources, missing graphs and timing")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
