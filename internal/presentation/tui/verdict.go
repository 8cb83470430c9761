package tui

import (
	"github.com/muesli/termenv"
)

// Styler colors short verdicts. A plain Styler leaves text untouched.
type Styler struct {
	profile termenv.Profile
}

// NewStyler detects the color profile of stdout. When color is false every
// method returns its input unchanged.
func NewStyler(color bool) Styler {
	if !color {
		return Styler{profile: termenv.Ascii}
	}
	return Styler{profile: termenv.ColorProfile()}
}

func (s Styler) paint(text, hex string) string {
	return s.profile.String(text).Foreground(s.profile.Color(hex)).String()
}

// Verdict renders a yes/no answer in green or red.
func (s Styler) Verdict(ok bool) string {
	if ok {
		return s.paint("yes", "#22c55e")
	}
	return s.paint("no", "#ef4444")
}

// Accepted renders the outcome of running one word.
func (s Styler) Accepted(ok bool) string {
	if ok {
		return s.paint("accepted", "#22c55e")
	}
	return s.paint("rejected", "#ef4444")
}

// Warn renders a diagnostic.
func (s Styler) Warn(text string) string {
	return s.paint(text, "#f59e0b")
}

// Name renders an automaton or state name.
func (s Styler) Name(text string) string {
	return s.paint(text, "#818cf8")
}
