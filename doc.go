/*
Package automata manipulates finite-state automata over finite alphabets.

The core lives in pkg/fsa: a generic Automaton[S, A] with queries (determinism,
completeness, reachability, acceptance) and constructions (mirror, trim, union,
intersection, complement, subset construction) plus inclusion and equivalence
checks. This package adds a Workbench that keeps named automaton definitions in a
store and runs those operations by name, which is what the fsa command, the HTTP
server and the MCP server are built on.

# Usage

	ctx := context.Background()
	wb := automata.New()

	_ = wb.Put(ctx, &schema.Definition{
		Name:     "ends-with-b",
		Alphabet: []string{"a", "b"},
		States:   []string{"0", "1"},
		Initial:  []string{"0"},
		Final:    []string{"1"},
		Transitions: []schema.Transition{
			{From: "0", Label: "a", To: "0"},
			{From: "0", Label: "b", To: "1"},
			{From: "1", Label: "a", To: "0"},
			{From: "1", Label: "b", To: "1"},
		},
	})

	ok, _ := wb.Accepts(ctx, "ends-with-b", []string{"a", "b"})
	// ok == []bool{true}

	// Store the complement under a new name.
	_, _ = wb.Complement(ctx, "ends-with-b", automata.SaveAs("not-ends-with-b"))

# Stores

Definitions are kept in a ports.Store: in memory by default, or a directory
(pkg/adapters/file) or Redis (pkg/adapters/redis). A Loam repository can be
attached read-only with WithSource.
*/
package automata
