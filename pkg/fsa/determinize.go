package fsa

import "fmt"

// SubsetName renders a set of states as the canonical name used by Determinize,
// e.g. "{0,2}". The empty set renders as "{}".
func SubsetName[S comparable](s Set[S]) string {
	return "{" + joinSorted(s.Items(), ",") + "}"
}

// Determinize applies the subset construction to a, keeping only the subsets
// reachable from the set of initial states. The result is deterministic and
// complete: the empty subset, when reachable, acts as a sink. States are named
// with SubsetName. It fails with ErrDuplicateState if two distinct subsets render
// to the same name, which can only happen when state names contain commas or braces.
func Determinize[S, A comparable](a *Automaton[S, A]) (*Automaton[string, A], error) {
	d := New[string, A]()
	d.alphabet = a.alphabet.Clone()

	subsets := make(map[string]Set[S])
	intern := func(s Set[S]) (string, bool, error) {
		name := SubsetName(s)
		if prev, ok := subsets[name]; ok {
			if !prev.Equal(s) {
				return "", false, fmt.Errorf("%w: subsets %v and %v share name %q", ErrDuplicateState, prev, s, name)
			}
			return name, false, nil
		}
		subsets[name] = s
		d.states.Add(name)
		if s.Intersects(a.final) {
			d.final.Add(name)
		}
		return name, true, nil
	}

	start, _, err := intern(a.initial.Clone())
	if err != nil {
		return nil, err
	}
	d.initial.Add(start)

	queue := []string{start}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for sym := range a.alphabet {
			next := a.Step(subsets[name], sym)
			target, fresh, err := intern(next)
			if err != nil {
				return nil, err
			}
			d.delta[edge[string, A]{name, sym}] = NewSet(target)
			if fresh {
				queue = append(queue, target)
			}
		}
	}
	return d, nil
}
