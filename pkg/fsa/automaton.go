package fsa

import "fmt"

// Transition is a single labelled edge of an automaton.
type Transition[S, A comparable] struct {
	From  S
	Label A
	To    S
}

// Delta is the nested form of a transition relation: source -> symbol -> targets.
// It is the shape accepted by FromParts.
type Delta[S, A comparable] map[S]map[A]Set[S]

type edge[S, A comparable] struct {
	src S
	sym A
}

// Automaton is a finite-state automaton with a non-deterministic transition relation.
//
// A missing (state, symbol) entry means "no transition"; an entry with an empty
// target set is kept distinct so that it round-trips through Clone and Delta.
type Automaton[S, A comparable] struct {
	alphabet Set[A]
	states   Set[S]
	delta    map[edge[S, A]]Set[S]
	initial  Set[S]
	final    Set[S]
}

// New returns an empty automaton over the given alphabet.
// States and transitions are added with the mutators.
func New[S, A comparable](alphabet ...A) *Automaton[S, A] {
	return &Automaton[S, A]{
		alphabet: NewSet(alphabet...),
		states:   make(Set[S]),
		delta:    make(map[edge[S, A]]Set[S]),
		initial:  make(Set[S]),
		final:    make(Set[S]),
	}
}

// FromParts builds a fully formed automaton. The arguments are copied, so the
// caller keeps ownership of its containers. It fails if any transition, initial
// or final state is not in states, or if a label is not in alphabet.
func FromParts[S, A comparable](alphabet Set[A], states Set[S], delta Delta[S, A], initial, final Set[S]) (*Automaton[S, A], error) {
	a := New[S, A](alphabet.Items()...)
	a.states = states.Clone()

	for src, row := range delta {
		if !a.states.Has(src) {
			return nil, fmt.Errorf("%w: transition source %v", ErrUnknownState, src)
		}
		for sym, targets := range row {
			if !a.alphabet.Has(sym) {
				return nil, fmt.Errorf("%w: %v on transition from %v", ErrUnknownSymbol, sym, src)
			}
			for t := range targets {
				if !a.states.Has(t) {
					return nil, fmt.Errorf("%w: transition target %v", ErrUnknownState, t)
				}
			}
			a.delta[edge[S, A]{src, sym}] = targets.Clone()
		}
	}

	for s := range initial {
		if err := a.SetInitial(s); err != nil {
			return nil, err
		}
	}
	for s := range final {
		if err := a.SetFinal(s); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Clone returns a deep copy sharing no structure with a.
func (a *Automaton[S, A]) Clone() *Automaton[S, A] {
	c := &Automaton[S, A]{
		alphabet: a.alphabet.Clone(),
		states:   a.states.Clone(),
		delta:    make(map[edge[S, A]]Set[S], len(a.delta)),
		initial:  a.initial.Clone(),
		final:    a.final.Clone(),
	}
	for k, v := range a.delta {
		c.delta[k] = v.Clone()
	}
	return c
}

// AddState inserts s. It fails with ErrDuplicateState if s is already present.
func (a *Automaton[S, A]) AddState(s S) error {
	if a.states.Has(s) {
		return fmt.Errorf("%w: %v", ErrDuplicateState, s)
	}
	a.states.Add(s)
	return nil
}

// AddTransition adds target to the successors of (source, label).
// Existing targets for the same pair are kept.
func (a *Automaton[S, A]) AddTransition(source S, label A, target S) error {
	if !a.states.Has(source) {
		return fmt.Errorf("%w: transition source %v", ErrUnknownState, source)
	}
	if !a.states.Has(target) {
		return fmt.Errorf("%w: transition target %v", ErrUnknownState, target)
	}
	if !a.alphabet.Has(label) {
		return fmt.Errorf("%w: %v", ErrUnknownSymbol, label)
	}
	k := edge[S, A]{source, label}
	targets, ok := a.delta[k]
	if !ok {
		targets = make(Set[S])
		a.delta[k] = targets
	}
	targets.Add(target)
	return nil
}

// SetInitial marks s as initial. Marking twice is a no-op.
func (a *Automaton[S, A]) SetInitial(s S) error {
	if !a.states.Has(s) {
		return fmt.Errorf("%w: initial state %v", ErrUnknownState, s)
	}
	a.initial.Add(s)
	return nil
}

// SetFinal marks s as final. Marking twice is a no-op.
func (a *Automaton[S, A]) SetFinal(s S) error {
	if !a.states.Has(s) {
		return fmt.Errorf("%w: final state %v", ErrUnknownState, s)
	}
	a.final.Add(s)
	return nil
}

// Alphabet returns a copy of the alphabet.
func (a *Automaton[S, A]) Alphabet() Set[A] { return a.alphabet.Clone() }

// States returns a copy of the state set.
func (a *Automaton[S, A]) States() Set[S] { return a.states.Clone() }

// Initial returns a copy of the initial states.
func (a *Automaton[S, A]) Initial() Set[S] { return a.initial.Clone() }

// Final returns a copy of the final states.
func (a *Automaton[S, A]) Final() Set[S] { return a.final.Clone() }

// NumStates returns |states|.
func (a *Automaton[S, A]) NumStates() int { return len(a.states) }

// NumTransitions counts (source, label, target) triples.
func (a *Automaton[S, A]) NumTransitions() int {
	n := 0
	for _, targets := range a.delta {
		n += len(targets)
	}
	return n
}

// HasTransition reports whether an entry exists for (s, sym), even an empty one.
func (a *Automaton[S, A]) HasTransition(s S, sym A) bool {
	_, ok := a.delta[edge[S, A]{s, sym}]
	return ok
}

// Targets returns a copy of the successors of s on sym.
func (a *Automaton[S, A]) Targets(s S, sym A) Set[S] {
	return a.delta[edge[S, A]{s, sym}].Clone()
}

// Transitions lists every (source, label, target) triple in unspecified order.
func (a *Automaton[S, A]) Transitions() []Transition[S, A] {
	out := make([]Transition[S, A], 0, len(a.delta))
	for k, targets := range a.delta {
		for t := range targets {
			out = append(out, Transition[S, A]{From: k.src, Label: k.sym, To: t})
		}
	}
	return out
}

// Delta returns a deep copy of the transition relation in nested form.
// Explicitly empty entries are preserved.
func (a *Automaton[S, A]) Delta() Delta[S, A] {
	d := make(Delta[S, A])
	for k, targets := range a.delta {
		row, ok := d[k.src]
		if !ok {
			row = make(map[A]Set[S])
			d[k.src] = row
		}
		row[k.sym] = targets.Clone()
	}
	return d
}

// String gives a compact multi-line description, mostly useful in test failures.
func (a *Automaton[S, A]) String() string {
	out := fmt.Sprintf("alphabet: %s\nstates: %s\ninitial: %s\nfinal: %s\n",
		a.alphabet, a.states, a.initial, a.final)
	trans := a.Transitions()
	sortByString(trans)
	for _, t := range trans {
		out += fmt.Sprintf("%v --%v--> %v\n", t.From, t.Label, t.To)
	}
	return out
}
