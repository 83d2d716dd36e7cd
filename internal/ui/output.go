// Package ui provides colored user messaging for pitcrew. All output goes
// to stderr so build output on stdout stays machine-readable; color respects
// NO_COLOR and TTY detection.
package ui

import (
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
)

// Success prints a green message to stderr.
func Success(format string, args ...interface{}) {
	successColor.Fprintf(os.Stderr, format, args...)
}

// Warning prints a yellow message to stderr.
func Warning(format string, args ...interface{}) {
	warningColor.Fprintf(os.Stderr, format, args...)
}

// Error prints a red message to stderr.
func Error(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, format, args...)
}

// Info prints a cyan message to stderr.
func Info(format string, args ...interface{}) {
	infoColor.Fprintf(os.Stderr, format, args...)
}
