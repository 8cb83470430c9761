package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   __           ", "#818cf8"},
		{"  / _|___  __ _ ", "#a78bfa"},
		{" |  _(_-< / _` |", "#c084fc"},
		{" |_| /__/ \\__,_|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String(" finite-state automata "+version).Faint())
	fmt.Fprintln(w)
}
