package fsa

// Reachable returns the states reachable from an initial state through zero or
// more transitions. It grows a frontier pass by pass over the whole alphabet and
// stops after a pass that adds nothing, so it terminates on any finite automaton.
func (a *Automaton[S, A]) Reachable() Set[S] {
	reached := a.initial.Clone()
	frontier := reached.Clone()
	for len(frontier) > 0 {
		next := make(Set[S])
		for sym := range a.alphabet {
			for t := range a.Step(frontier, sym) {
				if !reached.Has(t) {
					reached.Add(t)
					next.Add(t)
				}
			}
		}
		frontier = next
	}
	return reached
}

// CoReachable returns the states from which a final state can be reached.
func (a *Automaton[S, A]) CoReachable() Set[S] {
	return a.Mirror().Reachable()
}

// Useful returns the states lying on some path from an initial to a final state.
func (a *Automaton[S, A]) Useful() Set[S] {
	return a.Reachable().Intersect(a.CoReachable())
}

// IsEmpty reports whether the automaton accepts no word at all.
func (a *Automaton[S, A]) IsEmpty() bool {
	if len(a.final) == 0 {
		return true
	}
	return !a.Reachable().Intersects(a.final)
}
