package fsa

import (
	"errors"
	"fmt"
)

// ErrDuplicateState is returned when adding a state that is already present.
var ErrDuplicateState = errors.New("duplicate state")

// ErrUnknownState is returned when a transition, initial or final assignment
// references a state that is not part of the automaton.
var ErrUnknownState = errors.New("unknown state")

// ErrUnknownSymbol is returned when a transition references a symbol outside the alphabet.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrAlphabetMismatch is returned by binary operations on automata over different alphabets.
var ErrAlphabetMismatch = errors.New("alphabet mismatch")

// ErrPreconditionViolated is returned when an operation that requires a
// deterministic and complete automaton receives one that is not.
var ErrPreconditionViolated = errors.New("precondition violated")

// ViolationKind classifies why an automaton fails a structural check.
type ViolationKind int

const (
	// InitialCount means the automaton does not have exactly one initial state.
	InitialCount ViolationKind = iota + 1
	// MultipleTargets means a (state, symbol) pair leads to more than one state.
	MultipleTargets
	// MissingTransition means a state has no successor for some symbol.
	MissingTransition
)

func (k ViolationKind) String() string {
	switch k {
	case InitialCount:
		return "initial_count"
	case MultipleTargets:
		return "multiple_targets"
	case MissingTransition:
		return "missing_transition"
	default:
		return fmt.Sprintf("violation(%d)", int(k))
	}
}

// Violation explains why CheckDeterministic or CheckComplete failed.
// State and Symbol hold the fmt rendering of the offending values, when relevant.
type Violation struct {
	Kind   ViolationKind
	State  string
	Symbol string
	Count  int
}

func (v *Violation) Error() string {
	switch v.Kind {
	case InitialCount:
		return fmt.Sprintf("expected exactly one initial state, found %d", v.Count)
	case MultipleTargets:
		return fmt.Sprintf("%d transitions from %s labelled by %s", v.Count, v.State, v.Symbol)
	case MissingTransition:
		return fmt.Sprintf("missing transition from %s labelled by %s", v.State, v.Symbol)
	default:
		return v.Kind.String()
	}
}

func requireSameAlphabet[S, T, A comparable](a *Automaton[S, A], b *Automaton[T, A]) error {
	if !a.alphabet.Equal(b.alphabet) {
		return fmt.Errorf("%w: %s vs %s", ErrAlphabetMismatch, a.alphabet, b.alphabet)
	}
	return nil
}

func requireDFA[S, A comparable](a *Automaton[S, A], role string) error {
	if v := a.CheckDeterministic(); v != nil {
		return fmt.Errorf("%w: %s automaton is not deterministic: %v", ErrPreconditionViolated, role, v)
	}
	if v := a.CheckComplete(); v != nil {
		return fmt.Errorf("%w: %s automaton is not complete: %v", ErrPreconditionViolated, role, v)
	}
	return nil
}
