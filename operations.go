package automata

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/automata/pkg/fsa"
	"github.com/aretw0/automata/pkg/schema"
)

// Operation names accepted by Do.
const (
	OpUnion        = "union"
	OpIntersection = "intersection"
	OpComplement   = "complement"
	OpMirror       = "mirror"
	OpTrim         = "trim"
	OpDeterminize  = "determinize"
	OpComplete     = "complete"
	OpIncludes     = "include"
	OpEquivalent   = "equiv"
)

// DefaultSink names the state added by the complete operation.
const DefaultSink = "sink"

type automaton = fsa.Automaton[string, string]

type opSpec struct {
	arity int
	// build produces an automaton; compare produces a verdict. Exactly one is set.
	build   func(cfg *opConfig, in []*automaton) (*schema.Definition, error)
	compare func(cfg *opConfig, in []*automaton) (bool, error)
}

var operations = map[string]opSpec{
	OpUnion: {arity: 2, build: func(cfg *opConfig, in []*automaton) (*schema.Definition, error) {
		u, err := fsa.Union(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return schema.FromAutomaton(cfg.name, u)
	}},
	OpIntersection: {arity: 2, build: func(cfg *opConfig, in []*automaton) (*schema.Definition, error) {
		p, err := fsa.Intersection(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return schema.FromAutomaton(cfg.name, p)
	}},
	OpComplement: {arity: 1, build: func(cfg *opConfig, in []*automaton) (*schema.Definition, error) {
		c, err := in[0].Complement()
		if err != nil {
			return nil, err
		}
		return schema.FromAutomaton(cfg.name, c)
	}},
	OpMirror: {arity: 1, build: func(cfg *opConfig, in []*automaton) (*schema.Definition, error) {
		return schema.FromAutomaton(cfg.name, in[0].Mirror())
	}},
	OpTrim: {arity: 1, build: func(cfg *opConfig, in []*automaton) (*schema.Definition, error) {
		return schema.FromAutomaton(cfg.name, in[0].Trim())
	}},
	OpDeterminize: {arity: 1, build: func(cfg *opConfig, in []*automaton) (*schema.Definition, error) {
		d, err := fsa.Determinize(in[0])
		if err != nil {
			return nil, err
		}
		return schema.FromAutomaton(cfg.name, d)
	}},
	OpComplete: {arity: 1, build: func(cfg *opConfig, in []*automaton) (*schema.Definition, error) {
		c, err := fsa.Complete(in[0], cfg.sink)
		if err != nil {
			return nil, err
		}
		return schema.FromAutomaton(cfg.name, c)
	}},
	OpIncludes: {arity: 2, compare: func(_ *opConfig, in []*automaton) (bool, error) {
		return fsa.Includes(in[0], in[1])
	}},
	OpEquivalent: {arity: 2, compare: func(_ *opConfig, in []*automaton) (bool, error) {
		return fsa.Equivalent(in[0], in[1])
	}},
}

// Operations lists the names Do accepts, sorted.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for n := range operations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Arity returns the number of inputs op takes, or 0 for an unknown operation.
func Arity(op string) int {
	return operations[op].arity
}

// IsComparison reports whether op yields a verdict rather than an automaton.
func IsComparison(op string) bool {
	return operations[op].compare != nil
}

// OpOption tunes a single operation.
type OpOption func(*opConfig)

type opConfig struct {
	name        string
	saveAs      string
	sink        string
	determinize bool
}

// SaveAs stores the resulting definition under name. It also names the result.
func SaveAs(name string) OpOption {
	return func(c *opConfig) {
		c.saveAs = name
	}
}

// WithSink names the state added by the complete operation.
func WithSink(name string) OpOption {
	return func(c *opConfig) {
		c.sink = name
	}
}

// Determinized applies the subset construction to every input first, so that
// complement and the comparisons accept nondeterministic or incomplete inputs.
func Determinized() OpOption {
	return func(c *opConfig) {
		c.determinize = true
	}
}

// Result is the outcome of Do. Definition is set for constructions and Verdict
// for comparisons.
type Result struct {
	Operation  string             `json:"operation"`
	Inputs     []string           `json:"inputs"`
	Definition *schema.Definition `json:"definition,omitempty"`
	Verdict    *bool              `json:"verdict,omitempty"`
}

// Do runs the operation op on the named definitions.
func (w *Workbench) Do(ctx context.Context, op string, inputs []string, opts ...OpOption) (*Result, error) {
	start := time.Now()
	res, err := w.do(ctx, op, inputs, opts)
	states := -1
	if res != nil && res.Definition != nil {
		states = len(res.Definition.States)
	}
	w.report(ctx, op, inputs, start, states, err)
	return res, err
}

func (w *Workbench) do(ctx context.Context, op string, inputs []string, opts []OpOption) (*Result, error) {
	entry, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(inputs) != entry.arity {
		return nil, fmt.Errorf("%w: %s takes %d inputs, got %d", ErrInvalidArguments, op, entry.arity, len(inputs))
	}

	cfg := &opConfig{sink: DefaultSink}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.name = cfg.saveAs
	if cfg.name == "" {
		cfg.name = op + "(" + strings.Join(inputs, ",") + ")"
	}

	in := make([]*automaton, len(inputs))
	for i, name := range inputs {
		a, err := w.Automaton(ctx, name)
		if err != nil {
			return nil, err
		}
		if cfg.determinize {
			if a, err = fsa.Determinize(a); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
		in[i] = a
	}

	res := &Result{Operation: op, Inputs: append([]string(nil), inputs...)}
	if entry.compare != nil {
		v, err := entry.compare(cfg, in)
		if err != nil {
			return nil, err
		}
		res.Verdict = &v
		return res, nil
	}

	def, err := entry.build(cfg, in)
	if err != nil {
		return nil, err
	}
	res.Definition = def
	if cfg.saveAs != "" {
		if err := w.store.Save(ctx, cfg.saveAs, def); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", cfg.saveAs, err)
		}
	}
	return res, nil
}

func (w *Workbench) build(ctx context.Context, op string, inputs []string, opts []OpOption) (*schema.Definition, error) {
	res, err := w.Do(ctx, op, inputs, opts...)
	if err != nil {
		return nil, err
	}
	return res.Definition, nil
}

func (w *Workbench) verdict(ctx context.Context, op string, inputs []string, opts []OpOption) (bool, error) {
	res, err := w.Do(ctx, op, inputs, opts...)
	if err != nil {
		return false, err
	}
	return *res.Verdict, nil
}

// Union builds an automaton accepting the words of either operand.
func (w *Workbench) Union(ctx context.Context, left, right string, opts ...OpOption) (*schema.Definition, error) {
	return w.build(ctx, OpUnion, []string{left, right}, opts)
}

// Intersection builds the product automaton of the two operands.
func (w *Workbench) Intersection(ctx context.Context, left, right string, opts ...OpOption) (*schema.Definition, error) {
	return w.build(ctx, OpIntersection, []string{left, right}, opts)
}

// Complement builds the automaton rejecting exactly what name accepts.
func (w *Workbench) Complement(ctx context.Context, name string, opts ...OpOption) (*schema.Definition, error) {
	return w.build(ctx, OpComplement, []string{name}, opts)
}

// Mirror builds the automaton of reversed words.
func (w *Workbench) Mirror(ctx context.Context, name string, opts ...OpOption) (*schema.Definition, error) {
	return w.build(ctx, OpMirror, []string{name}, opts)
}

// Trim keeps only the useful states of name.
func (w *Workbench) Trim(ctx context.Context, name string, opts ...OpOption) (*schema.Definition, error) {
	return w.build(ctx, OpTrim, []string{name}, opts)
}

// Determinize applies the subset construction to name.
func (w *Workbench) Determinize(ctx context.Context, name string, opts ...OpOption) (*schema.Definition, error) {
	return w.build(ctx, OpDeterminize, []string{name}, opts)
}

// Completed adds a sink state so that every transition of name is defined.
func (w *Workbench) Completed(ctx context.Context, name string, opts ...OpOption) (*schema.Definition, error) {
	return w.build(ctx, OpComplete, []string{name}, opts)
}

// Includes reports whether every word accepted by left is accepted by right.
func (w *Workbench) Includes(ctx context.Context, left, right string, opts ...OpOption) (bool, error) {
	return w.verdict(ctx, OpIncludes, []string{left, right}, opts)
}

// Equivalent reports whether left and right accept the same words.
func (w *Workbench) Equivalent(ctx context.Context, left, right string, opts ...OpOption) (bool, error) {
	return w.verdict(ctx, OpEquivalent, []string{left, right}, opts)
}
