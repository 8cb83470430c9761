package schema

import (
	"fmt"

	"github.com/aretw0/automata/pkg/fsa"
)

// Automaton validates d and builds the corresponding automaton.
func (d *Definition) Automaton() (*fsa.Automaton[string, string], error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	n := d.Clone()
	n.Normalize()

	a := fsa.New[string](n.Alphabet...)
	for _, s := range n.States {
		if err := a.AddState(s); err != nil {
			return nil, err
		}
	}
	for _, t := range n.Transitions {
		if err := a.AddTransition(t.From, t.Label, t.To); err != nil {
			return nil, err
		}
	}
	for _, s := range n.Initial {
		if err := a.SetInitial(s); err != nil {
			return nil, err
		}
	}
	for _, s := range n.Final {
		if err := a.SetFinal(s); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// FromAutomaton describes a with string names obtained from fmt. Composite states
// such as fsa.Pair and fsa.Tagged render as "(p, q)". It fails if two distinct
// states or symbols render to the same name.
func FromAutomaton[S, A comparable](name string, a *fsa.Automaton[S, A]) (*Definition, error) {
	flat, err := fsa.Relabel(a, func(s S) string { return fmt.Sprint(s) })
	if err != nil {
		return nil, err
	}

	alphabet := a.Alphabet().Sorted()
	d := &Definition{
		Name:     name,
		Alphabet: make([]string, 0, len(alphabet)),
		States:   flat.States().Sorted(),
		Initial:  flat.Initial().Sorted(),
		Final:    flat.Final().Sorted(),
	}
	seen := make(map[string]bool, len(alphabet))
	for _, sym := range alphabet {
		label := fmt.Sprint(sym)
		if seen[label] {
			return nil, fmt.Errorf("symbol %q rendered twice", label)
		}
		seen[label] = true
		d.Alphabet = append(d.Alphabet, label)
	}
	for _, t := range flat.Transitions() {
		d.Transitions = append(d.Transitions, Transition{From: t.From, Label: fmt.Sprint(t.Label), To: t.To})
	}
	d.Normalize()
	return d, nil
}
