// Package ui provides colored stderr output for the gridley CLI.
// Status messages stay on stderr so the rendered table on stdout remains
// clean for piping and diffing. Color respects the NO_COLOR environment
// variable and TTY detection.
package ui

import (
	"os"

	"github.com/fatih/color"
)

// Error prints a red-colored message to stderr.
func Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format, args...)
}

// Info prints a cyan-colored message to stderr.
func Info(format string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(os.Stderr, format, args...)
}
