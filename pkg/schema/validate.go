package schema

// Validate checks that d describes a consistent automaton: no duplicate or empty
// state and symbol names, and every referenced state and symbol declared.
// All failures are returned at once as an *AggregateError.
func Validate(d *Definition) error {
	var errs []error
	fail := func(sec Section, i int, reason, name string) {
		errs = append(errs, &ValidationError{Section: sec, Index: i, Reason: reason, Name: name})
	}

	symbols := make(map[string]bool, len(d.Alphabet))
	for i, a := range d.Alphabet {
		if a == "" {
			fail(SectionAlphabet, i, "empty symbol", "")
			continue
		}
		if symbols[a] {
			fail(SectionAlphabet, i, "duplicate symbol", a)
		}
		symbols[a] = true
	}

	states := make(map[string]bool, len(d.States))
	for i, s := range d.States {
		if s == "" {
			fail(SectionStates, i, "empty state name", "")
			continue
		}
		if states[s] {
			fail(SectionStates, i, "duplicate state", s)
		}
		states[s] = true
	}

	for i, s := range d.Initial {
		if !states[s] {
			fail(SectionInitial, i, "unknown state", s)
		}
	}
	for i, s := range d.Final {
		if !states[s] {
			fail(SectionFinal, i, "unknown state", s)
		}
	}

	transitions := append([]Transition(nil), d.Transitions...)
	for from, row := range d.Delta {
		for label, targets := range row {
			for _, to := range targets {
				transitions = append(transitions, Transition{From: from, Label: label, To: to})
			}
		}
	}
	for i, t := range transitions {
		if !states[t.From] {
			fail(SectionTransitions, i, "unknown source state", t.From)
		}
		if !states[t.To] {
			fail(SectionTransitions, i, "unknown target state", t.To)
		}
		if !symbols[t.Label] {
			fail(SectionTransitions, i, "unknown symbol", t.Label)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
