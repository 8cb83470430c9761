package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/automata"
	"github.com/spf13/cobra"
)

// Execute runs the fsa command tree.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNegative) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// errNegative reports a "no" answer as a distinct exit status.
var errNegative = errors.New("negative answer")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fsa",
		Short: "fsa builds, inspects and combines finite-state automata",
		Long: `fsa works on automata described in YAML or JSON files, or stored by name.

Every argument naming an automaton may be a stored name or a path to a
.yaml, .yml or .json definition file. Results of constructions are printed as
YAML unless --save stores them under a new name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Config file (default ./fsa.yaml when present)")
	root.PersistentFlags().String("dir", "", "Directory of the file and loam stores")
	root.PersistentFlags().String("store", "", "Store backend: memory, file, redis or loam")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	root.AddCommand(
		newCheckCmd(),
		newAcceptCmd(),
		newOpCmd("union <left> <right>", "Build an automaton accepting the words of either operand", automata.OpUnion),
		newOpCmd("intersect <left> <right>", "Build the product automaton of two operands", automata.OpIntersection),
		newOpCmd("complement <automaton>", "Build the complement of a deterministic complete automaton", automata.OpComplement),
		newOpCmd("mirror <automaton>", "Build the automaton of reversed words", automata.OpMirror),
		newOpCmd("trim <automaton>", "Keep only the reachable and co-reachable states", automata.OpTrim),
		newOpCmd("determinize <automaton>", "Apply the subset construction", automata.OpDeterminize),
		newOpCmd("complete <automaton>", "Add a sink state for every missing transition", automata.OpComplete),
		newCompareCmd("include <left> <right>", "Check that every word of left is accepted by right", automata.OpIncludes),
		newCompareCmd("equiv <left> <right>", "Check that two automata accept the same words", automata.OpEquivalent),
		newGraphCmd(),
		newDescribeCmd(),
		newPutCmd(),
		newGetCmd(),
		newListCmd(),
		newRemoveCmd(),
		newServeCmd(),
		newMCPCmd(),
		newVersionCmd(),
	)
	return root
}
