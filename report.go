package automata

import (
	"context"
	"time"
)

// Report summarizes the structural properties of one automaton.
type Report struct {
	Name          string   `json:"name"`
	Alphabet      []string `json:"alphabet"`
	States        int      `json:"states"`
	Transitions   int      `json:"transitions"`
	Deterministic bool     `json:"deterministic"`
	Complete      bool     `json:"complete"`
	Empty         bool     `json:"empty"`
	Reachable     []string `json:"reachable"`
	CoReachable   []string `json:"co_reachable"`
	Useful        []string `json:"useful"`
	// Violations explains why the automaton is not deterministic or not complete.
	Violations []string `json:"violations,omitempty"`
}

// Check inspects name and reports its properties.
func (w *Workbench) Check(ctx context.Context, name string) (*Report, error) {
	start := time.Now()
	r, err := w.check(ctx, name)
	w.report(ctx, "check", []string{name}, start, -1, err)
	return r, err
}

func (w *Workbench) check(ctx context.Context, name string) (*Report, error) {
	a, err := w.Automaton(ctx, name)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Name:        name,
		Alphabet:    a.Alphabet().Sorted(),
		States:      a.NumStates(),
		Transitions: a.NumTransitions(),
		Reachable:   a.Reachable().Sorted(),
		CoReachable: a.CoReachable().Sorted(),
		Useful:      a.Useful().Sorted(),
		Empty:       a.IsEmpty(),
	}
	if v := a.CheckDeterministic(); v != nil {
		r.Violations = append(r.Violations, v.Error())
	} else {
		r.Deterministic = true
	}
	if v := a.CheckComplete(); v != nil {
		r.Violations = append(r.Violations, v.Error())
	} else {
		r.Complete = true
	}
	return r, nil
}

// Accepts runs every word through name and reports which ones are accepted.
// Each word is a sequence of symbols.
func (w *Workbench) Accepts(ctx context.Context, name string, words ...[]string) ([]bool, error) {
	start := time.Now()
	a, err := w.Automaton(ctx, name)
	if err != nil {
		w.report(ctx, "accept", []string{name}, start, -1, err)
		return nil, err
	}
	out := make([]bool, len(words))
	for i, word := range words {
		out[i] = a.Accepts(word)
	}
	w.report(ctx, "accept", []string{name}, start, -1, nil)
	return out, nil
}

// Trace returns the active states of name before the first symbol of word and
// after each symbol.
func (w *Workbench) Trace(ctx context.Context, name string, word []string) ([][]string, error) {
	a, err := w.Automaton(ctx, name)
	if err != nil {
		return nil, err
	}
	steps := a.Trace(word)
	out := make([][]string, len(steps))
	for i, s := range steps {
		out[i] = s.Sorted()
	}
	return out, nil
}
