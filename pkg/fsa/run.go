package fsa

// Step returns every state reachable from a member of from by one transition on sym.
// The result is empty when no such transition exists.
func (a *Automaton[S, A]) Step(from Set[S], sym A) Set[S] {
	out := make(Set[S])
	for s := range from {
		for t := range a.delta[edge[S, A]{s, sym}] {
			out[t] = struct{}{}
		}
	}
	return out
}

// Run simulates the automaton on word and returns the active set once every
// symbol is consumed. Each symbol replaces the active set with its Step image;
// states visited earlier are not carried along.
func (a *Automaton[S, A]) Run(word []A) Set[S] {
	active := a.initial.Clone()
	for _, sym := range word {
		if len(active) == 0 {
			break
		}
		active = a.Step(active, sym)
	}
	return active
}

// Trace is like Run but records the active set before the first symbol and
// after each one, so len(Trace(w)) == len(w)+1.
func (a *Automaton[S, A]) Trace(word []A) []Set[S] {
	trace := make([]Set[S], 0, len(word)+1)
	active := a.initial.Clone()
	trace = append(trace, active)
	for _, sym := range word {
		active = a.Step(active, sym)
		trace = append(trace, active)
	}
	return trace
}

// Accepts reports whether word leads from an initial state to a final state.
// The empty word is accepted iff some initial state is final.
func (a *Automaton[S, A]) Accepts(word []A) bool {
	return a.Run(word).Intersects(a.final)
}
