// Package logging builds the CLI's stderr logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// New returns a logger writing to w. Only warnings and errors are shown
// unless verbose is set. Terminals get the styled text format; anything
// else (files, pipes, CI) gets logfmt.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	formatter := log.LogfmtFormatter
	if isTerminal(w) {
		formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "promptrun",
		ReportTimestamp: verbose,
		Formatter:       formatter,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
