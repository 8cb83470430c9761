package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/automata/pkg/fsa"
)

// Builder manages the automaton construction.
type Builder[S, A comparable] struct {
	alphabet []A
	order    []S
	states   map[S]*StateBuilder[S, A]
}

// New creates a new builder over the given alphabet.
func New[S, A comparable](alphabet ...A) *Builder[S, A] {
	return &Builder[S, A]{
		alphabet: alphabet,
		states:   make(map[S]*StateBuilder[S, A]),
	}
}

// State declares a state. If the state already exists, it returns the existing builder.
func (b *Builder[S, A]) State(id S) *StateBuilder[S, A] {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder[S, A]{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// States declares several states at once.
func (b *Builder[S, A]) States(ids ...S) *Builder[S, A] {
	for _, id := range ids {
		b.State(id)
	}
	return b
}

// Build replays the declarations into a fresh automaton.
// Every problem found is reported, joined into a single error.
func (b *Builder[S, A]) Build() (*fsa.Automaton[S, A], error) {
	a := fsa.New[S](b.alphabet...)
	var errs []error

	for _, id := range b.order {
		if err := a.AddState(id); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range b.order {
		sb := b.states[id]
		if sb.initial {
			if err := a.SetInitial(id); err != nil {
				errs = append(errs, err)
			}
		}
		if sb.final {
			if err := a.SetFinal(id); err != nil {
				errs = append(errs, err)
			}
		}
		for _, e := range sb.edges {
			if err := a.AddTransition(id, e.label, e.to); err != nil {
				errs = append(errs, fmt.Errorf("state %v: %w", id, err))
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return a, nil
}
