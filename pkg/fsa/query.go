package fsa

import "fmt"

// CheckDeterministic returns nil when the automaton has exactly one initial state
// and no (state, symbol) pair with more than one target. Otherwise it describes
// the first problem found, scanning states and symbols in sorted order.
func (a *Automaton[S, A]) CheckDeterministic() *Violation {
	if len(a.initial) != 1 {
		return &Violation{Kind: InitialCount, Count: len(a.initial)}
	}
	for _, s := range a.states.Sorted() {
		for _, sym := range a.alphabet.Sorted() {
			if n := len(a.delta[edge[S, A]{s, sym}]); n > 1 {
				return &Violation{
					Kind:   MultipleTargets,
					State:  fmt.Sprint(s),
					Symbol: fmt.Sprint(sym),
					Count:  n,
				}
			}
		}
	}
	return nil
}

// IsDeterministic reports whether CheckDeterministic finds nothing.
func (a *Automaton[S, A]) IsDeterministic() bool {
	return a.CheckDeterministic() == nil
}

// CheckComplete returns nil when every state has at least one successor for every
// symbol. States without any outgoing transition fail on the first symbol.
// An explicitly empty target set does not count as a transition.
func (a *Automaton[S, A]) CheckComplete() *Violation {
	for _, s := range a.states.Sorted() {
		for _, sym := range a.alphabet.Sorted() {
			if len(a.delta[edge[S, A]{s, sym}]) == 0 {
				return &Violation{
					Kind:   MissingTransition,
					State:  fmt.Sprint(s),
					Symbol: fmt.Sprint(sym),
				}
			}
		}
	}
	return nil
}

// IsComplete reports whether CheckComplete finds nothing.
func (a *Automaton[S, A]) IsComplete() bool {
	return a.CheckComplete() == nil
}
