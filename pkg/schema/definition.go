package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Transition is one labelled edge.
type Transition struct {
	From  string `json:"from" yaml:"from" mapstructure:"from"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`
	To    string `json:"to" yaml:"to" mapstructure:"to"`
}

// Definition is the serializable description of an automaton.
type Definition struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Alphabet    []string     `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	States      []string     `json:"states" yaml:"states" mapstructure:"states"`
	Initial     []string     `json:"initial" yaml:"initial" mapstructure:"initial"`
	Final       []string     `json:"final" yaml:"final" mapstructure:"final"`
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty" mapstructure:"transitions"`

	// Delta is the nested source -> symbol -> targets form. Normalize folds it
	// into Transitions.
	Delta map[string]map[string][]string `json:"delta,omitempty" yaml:"delta,omitempty" mapstructure:"delta"`
}

// Decode builds a Definition from a loosely typed document, such as the result of
// unmarshalling YAML into a map. Numbers become strings and single values become
// one-element lists. The result is normalized but not validated.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &def,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	def.Normalize()
	return &def, nil
}

// Normalize folds Delta into Transitions, drops duplicate transitions and sorts
// them so that equal definitions serialize identically.
func (d *Definition) Normalize() {
	for from, row := range d.Delta {
		for label, targets := range row {
			for _, to := range targets {
				d.Transitions = append(d.Transitions, Transition{From: from, Label: label, To: to})
			}
		}
	}
	d.Delta = nil

	seen := make(map[Transition]bool, len(d.Transitions))
	uniq := d.Transitions[:0]
	for _, t := range d.Transitions {
		if seen[t] {
			continue
		}
		seen[t] = true
		uniq = append(uniq, t)
	}
	sort.Slice(uniq, func(i, j int) bool {
		a, b := uniq[i], uniq[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.To < b.To
	})
	if len(uniq) == 0 {
		uniq = nil
	}
	d.Transitions = uniq
}

// Clone returns a deep copy.
func (d *Definition) Clone() *Definition {
	c := *d
	c.Alphabet = append([]string(nil), d.Alphabet...)
	c.States = append([]string(nil), d.States...)
	c.Initial = append([]string(nil), d.Initial...)
	c.Final = append([]string(nil), d.Final...)
	c.Transitions = append([]Transition(nil), d.Transitions...)
	if d.Delta != nil {
		c.Delta = make(map[string]map[string][]string, len(d.Delta))
		for from, row := range d.Delta {
			r := make(map[string][]string, len(row))
			for label, targets := range row {
				r[label] = append([]string(nil), targets...)
			}
			c.Delta[from] = r
		}
	}
	return &c
}

// SplitWord turns a word into symbols. With an empty separator every rune is a
// symbol; otherwise the word is split on sep and empty pieces are dropped.
func SplitWord(word, sep string) []string {
	if sep == "" {
		out := make([]string, 0, len(word))
		for _, r := range word {
			out = append(out, string(r))
		}
		return out
	}
	var out []string
	for _, part := range strings.Split(word, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
