package automata

import _ "embed"

// Version is the release of the library and the fsa command, read from VERSION.
//
//go:embed VERSION
var Version string
