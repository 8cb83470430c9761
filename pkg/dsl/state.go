package dsl

type edge[S, A comparable] struct {
	label A
	to    S
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder[S, A comparable] struct {
	id      S
	initial bool
	final   bool
	edges   []edge[S, A]
	builder *Builder[S, A]
}

// Initial marks the state as initial.
func (n *StateBuilder[S, A]) Initial() *StateBuilder[S, A] {
	n.initial = true
	return n
}

// Final marks the state as final (accepting).
func (n *StateBuilder[S, A]) Final() *StateBuilder[S, A] {
	n.final = true
	return n
}

// On adds a transition labelled sym to each target.
// Several targets make the automaton non-deterministic.
func (n *StateBuilder[S, A]) On(sym A, targets ...S) *StateBuilder[S, A] {
	for _, t := range targets {
		n.edges = append(n.edges, edge[S, A]{label: sym, to: t})
	}
	return n
}

// Loop adds a self-loop for every given symbol.
func (n *StateBuilder[S, A]) Loop(syms ...A) *StateBuilder[S, A] {
	for _, sym := range syms {
		n.edges = append(n.edges, edge[S, A]{label: sym, to: n.id})
	}
	return n
}

// State jumps to another state declaration, for chaining.
func (n *StateBuilder[S, A]) State(id S) *StateBuilder[S, A] {
	return n.builder.State(id)
}
