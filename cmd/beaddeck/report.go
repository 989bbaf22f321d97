package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// reporter writes diagnostics to stderr. Colors are dropped automatically
// when the writer is not a terminal.
type reporter struct {
	w       io.Writer
	quiet   bool
	verbose bool

	errLabel  lipgloss.Style
	warnLabel lipgloss.Style
	dim       lipgloss.Style
}

func newReporter(w io.Writer, quiet, verbose bool) *reporter {
	r := lipgloss.NewRenderer(w)
	return &reporter{
		w:         w,
		quiet:     quiet,
		verbose:   verbose && !quiet,
		errLabel:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		warnLabel: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5C07B")),
		dim:       r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Error prints a fatal error. Never suppressed.
func (r *reporter) Error(err error) {
	fmt.Fprintf(r.w, "%s %v\n", r.errLabel.Render("error:"), err)
}

// Warn prints a non-fatal problem unless quiet.
func (r *reporter) Warn(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", r.warnLabel.Render("warning:"), fmt.Sprintf(format, args...))
}

// Detail prints a verbose-only line.
func (r *reporter) Detail(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintln(r.w, r.dim.Render(fmt.Sprintf(format, args...)))
}
