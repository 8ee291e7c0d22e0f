package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Streams are the standard streams commands read from and write to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// InTerminal is set when In is an interactive terminal.
	InTerminal bool
}

// StdStreams returns the process's standard streams.
func StdStreams() *Streams {
	return &Streams{
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		InTerminal: term.IsTerminal(int(os.Stdin.Fd())),
	}
}
