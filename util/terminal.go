package util

import (
	"io"

	"golang.org/x/term"
)

// Terminal reports whether a file descriptor is attached to a terminal
type Terminal interface {
	IsTerminal(fd int) bool
}

type stdTerminal struct{}

func (stdTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DefaultTerminal queries the operating system through golang.org/x/term
var DefaultTerminal Terminal = stdTerminal{}

type fder interface {
	Fd() uintptr
}

// UseColor reports whether styled output should be written to w. Writers which are not
// files never get color; NO_COLOR (any value) and TERM=dumb turn it off.
func UseColor(t Terminal, w io.Writer, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return t.IsTerminal(int(f.Fd()))
}
