// Package logging provides the levelled stderr logger used by every command.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes prefixed diagnostic lines. Info and debug lines are only
// emitted when the matching flag is set; warnings and errors always are.
type Logger struct {
	Verbose bool
	Debug   bool

	// Out defaults to os.Stderr. Stdout carries command output only.
	Out io.Writer
}

// New returns a Logger writing to stderr.
func New(verbose, debug bool) *Logger {
	return &Logger{Verbose: verbose || debug, Debug: debug, Out: os.Stderr}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{Out: io.Discard}
}

func (l *Logger) out() io.Writer {
	if l == nil || l.Out == nil {
		return os.Stderr
	}
	return l.Out
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Verbose {
		fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Debug {
		fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(l.out(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l *Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.out(), color.RedString("[error] ")+msg+"\n", args...)
}
