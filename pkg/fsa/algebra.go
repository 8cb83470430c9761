package fsa

import "fmt"

// Tagged identifies a state of a union by the operand it came from:
// 0 for the left operand, 1 for the right one.
type Tagged[S comparable] struct {
	State   S
	Operand int
}

func (t Tagged[S]) String() string {
	return fmt.Sprintf("(%v, %d)", t.State, t.Operand)
}

// Pair identifies a state of a product automaton.
type Pair[S, T comparable] struct {
	First  S
	Second T
}

func (p Pair[S, T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Mirror returns a new automaton with every transition reversed and the roles of
// initial and final states swapped.
func (a *Automaton[S, A]) Mirror() *Automaton[S, A] {
	m := New[S, A]()
	m.alphabet = a.alphabet.Clone()
	m.states = a.states.Clone()
	m.initial = a.final.Clone()
	m.final = a.initial.Clone()
	for k, targets := range a.delta {
		for t := range targets {
			rk := edge[S, A]{t, k.sym}
			rev, ok := m.delta[rk]
			if !ok {
				rev = make(Set[S])
				m.delta[rk] = rev
			}
			rev.Add(k.src)
		}
	}
	return m
}

// Trim returns a new automaton restricted to the useful states.
func (a *Automaton[S, A]) Trim() *Automaton[S, A] {
	useful := a.Useful()
	t := New[S, A]()
	t.alphabet = a.alphabet.Clone()
	t.states = useful
	t.initial = a.initial.Intersect(useful)
	t.final = a.final.Intersect(useful)
	for k, targets := range a.delta {
		if !useful.Has(k.src) {
			continue
		}
		kept := targets.Intersect(useful)
		if len(kept) > 0 {
			t.delta[k] = kept
		}
	}
	return t
}

// Complement returns an automaton accepting exactly the words a rejects.
// The final states become states \ final; the initial state is unchanged.
// a must be deterministic and complete, otherwise ErrPreconditionViolated is returned.
func (a *Automaton[S, A]) Complement() (*Automaton[S, A], error) {
	if err := requireDFA(a, "operand"); err != nil {
		return nil, err
	}
	c := a.Clone()
	c.final = a.states.Minus(a.final)
	return c, nil
}

// Union returns an automaton accepting L(a) ∪ L(b). States of a are tagged with
// operand 0 and states of b with operand 1, so |states| = |a.states| + |b.states|
// and no transition links the two halves.
func Union[S, A comparable](a, b *Automaton[S, A]) (*Automaton[Tagged[S], A], error) {
	if err := requireSameAlphabet(a, b); err != nil {
		return nil, err
	}
	u := New[Tagged[S], A]()
	u.alphabet = a.alphabet.Clone()
	for i, op := range []*Automaton[S, A]{a, b} {
		tag := func(s S) Tagged[S] { return Tagged[S]{State: s, Operand: i} }
		for s := range op.states {
			u.states.Add(tag(s))
		}
		for s := range op.initial {
			u.initial.Add(tag(s))
		}
		for s := range op.final {
			u.final.Add(tag(s))
		}
		for k, targets := range op.delta {
			tagged := make(Set[Tagged[S]], len(targets))
			for t := range targets {
				tagged.Add(tag(t))
			}
			u.delta[edge[Tagged[S], A]{tag(k.src), k.sym}] = tagged
		}
	}
	return u, nil
}

// Intersection returns the synchronized product of a and b, accepting L(a) ∩ L(b).
//
// Every pair of states becomes a state, so the result has |a.states|·|b.states|
// states and building its transitions costs O(|a.states|·|b.states|·|alphabet|)
// plus the size of the target products. The targets of ((p, q), x) are the
// Cartesian product of the targets of (p, x) and (q, x); no entry is created when
// either side has none.
// The loop walks the defined transitions of a against every state of b, which
// visits at most |a.states|·|alphabet|·|b.states| candidate pairs.
func Intersection[S, T, A comparable](a *Automaton[S, A], b *Automaton[T, A]) (*Automaton[Pair[S, T], A], error) {
	if err := requireSameAlphabet(a, b); err != nil {
		return nil, err
	}
	p := New[Pair[S, T], A]()
	p.alphabet = a.alphabet.Clone()
	for s := range a.states {
		for t := range b.states {
			p.states.Add(Pair[S, T]{s, t})
		}
	}
	for s := range a.initial {
		for t := range b.initial {
			p.initial.Add(Pair[S, T]{s, t})
		}
	}
	for s := range a.final {
		for t := range b.final {
			p.final.Add(Pair[S, T]{s, t})
		}
	}
	for ka, ta := range a.delta {
		for t := range b.states {
			tb, ok := b.delta[edge[T, A]{t, ka.sym}]
			if !ok {
				continue
			}
			targets := make(Set[Pair[S, T]], len(ta)*len(tb))
			for x := range ta {
				for y := range tb {
					targets.Add(Pair[S, T]{x, y})
				}
			}
			p.delta[edge[Pair[S, T], A]{Pair[S, T]{ka.src, t}, ka.sym}] = targets
		}
	}
	return p, nil
}

// Relabel maps every state of a through f. f must be injective on a's states;
// if two states collapse onto the same label ErrDuplicateState is returned.
func Relabel[S, T, A comparable](a *Automaton[S, A], f func(S) T) (*Automaton[T, A], error) {
	r := New[T, A]()
	r.alphabet = a.alphabet.Clone()
	names := make(map[S]T, len(a.states))
	for s := range a.states {
		n := f(s)
		if err := r.AddState(n); err != nil {
			return nil, fmt.Errorf("relabel %v: %w", s, err)
		}
		names[s] = n
	}
	for s := range a.initial {
		r.initial.Add(names[s])
	}
	for s := range a.final {
		r.final.Add(names[s])
	}
	for k, targets := range a.delta {
		mapped := make(Set[T], len(targets))
		for t := range targets {
			mapped.Add(names[t])
		}
		r.delta[edge[T, A]{names[k.src], k.sym}] = mapped
	}
	return r, nil
}

// Complete returns a copy of a in which every missing transition leads to sink.
// sink is only added when a is not already complete, and must not be a state of a.
func Complete[S, A comparable](a *Automaton[S, A], sink S) (*Automaton[S, A], error) {
	if a.IsComplete() {
		return a.Clone(), nil
	}
	c := a.Clone()
	if err := c.AddState(sink); err != nil {
		return nil, fmt.Errorf("sink state: %w", err)
	}
	for s := range c.states {
		for sym := range c.alphabet {
			k := edge[S, A]{s, sym}
			if len(c.delta[k]) == 0 {
				c.delta[k] = NewSet(sink)
			}
		}
	}
	return c, nil
}
