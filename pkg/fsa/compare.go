package fsa

// Includes reports whether L(a) ⊆ L(b). Both automata must share an alphabet and be
// deterministic and complete. It checks that a × complement(b) accepts nothing.
func Includes[S, T, A comparable](a *Automaton[S, A], b *Automaton[T, A]) (bool, error) {
	if err := requireSameAlphabet(a, b); err != nil {
		return false, err
	}
	if err := requireDFA(a, "left"); err != nil {
		return false, err
	}
	cb, err := b.Complement()
	if err != nil {
		return false, err
	}
	p, err := Intersection(a, cb)
	if err != nil {
		return false, err
	}
	return p.IsEmpty(), nil
}

// Equivalent reports whether L(a) = L(b), i.e. inclusion holds both ways.
func Equivalent[S, T, A comparable](a *Automaton[S, A], b *Automaton[T, A]) (bool, error) {
	ab, err := Includes(a, b)
	if err != nil || !ab {
		return false, err
	}
	return Includes(b, a)
}
