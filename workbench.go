package automata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/fsa"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
)

// Workbench is the high-level entry point of the library.
// It keeps named definitions in a Store and runs automaton operations on them.
type Workbench struct {
	store    ports.Store
	source   ports.Source
	observer observability.Observer
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Workbench.
type Option func(*Workbench)

// WithStore sets where definitions are kept. The default is an in-memory store.
func WithStore(s ports.Store) Option {
	return func(w *Workbench) {
		w.store = s
	}
}

// WithSource adds a read-only catalog consulted when the store has no entry for a name.
func WithSource(s ports.Source) Option {
	return func(w *Workbench) {
		w.source = s
	}
}

// WithObserver registers a hook notified after every operation.
func WithObserver(o observability.Observer) Option {
	return func(w *Workbench) {
		w.observer = o
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workbench) {
		w.logger = logger
	}
}

// New creates a Workbench.
func New(opts ...Option) *Workbench {
	w := &Workbench{}
	for _, opt := range opts {
		opt(w)
	}
	if w.store == nil {
		w.store = memory.NewStore()
	}
	if w.logger == nil {
		w.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w
}

// Store returns the underlying store.
func (w *Workbench) Store() ports.Store {
	return w.store
}

// Put validates def and saves it under def.Name.
func (w *Workbench) Put(ctx context.Context, def *schema.Definition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: definition has no name", ErrInvalidArguments)
	}
	if err := schema.Validate(def); err != nil {
		return err
	}
	n := def.Clone()
	n.Normalize()
	if err := w.store.Save(ctx, n.Name, n); err != nil {
		return fmt.Errorf("failed to save %s: %w", n.Name, err)
	}
	w.logger.Debug("definition saved", "name", n.Name, "states", len(n.States))
	return nil
}

// Get returns the definition stored under name, falling back to the source.
func (w *Workbench) Get(ctx context.Context, name string) (*schema.Definition, error) {
	def, err := w.store.Load(ctx, name)
	if err == nil {
		return def, nil
	}
	if w.source == nil || !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return w.source.Load(ctx, name)
}

// List returns every known name, from the store and the source, sorted.
func (w *Workbench) List(ctx context.Context) ([]string, error) {
	names, err := w.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if w.source == nil {
		return names, nil
	}
	extra, err := w.source.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(names)+len(extra))
	all := make([]string, 0, len(names)+len(extra))
	for _, n := range append(names, extra...) {
		if !seen[n] {
			seen[n] = true
			all = append(all, n)
		}
	}
	sort.Strings(all)
	return all, nil
}

// Delete removes name from the store. Entries of the source cannot be deleted.
func (w *Workbench) Delete(ctx context.Context, name string) error {
	return w.store.Delete(ctx, name)
}

// Automaton loads name and builds its automaton.
func (w *Workbench) Automaton(ctx context.Context, name string) (*fsa.Automaton[string, string], error) {
	def, err := w.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	a, err := def.Automaton()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return a, nil
}

func (w *Workbench) report(ctx context.Context, op string, inputs []string, start time.Time, states int, err error) {
	elapsed := time.Since(start)
	if err != nil {
		w.logger.Warn("operation failed", "op", op, "inputs", inputs, "err", err)
	} else {
		w.logger.Debug("operation completed", "op", op, "inputs", inputs, "states", states, "duration", elapsed)
	}
	if w.observer != nil {
		w.observer.OperationDone(ctx, observability.OperationEvent{
			Operation: op,
			Inputs:    inputs,
			Duration:  elapsed,
			States:    states,
			Err:       err,
		})
	}
}
