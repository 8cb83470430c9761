package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
)

// Store implements ports.Store in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*schema.Definition
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store, optionally seeded with definitions
// keyed by their Name.
func NewStore(seed ...*schema.Definition) *Store {
	s := &Store{
		data: make(map[string]*schema.Definition),
	}
	for _, def := range seed {
		s.data[def.Name] = def.Clone()
	}
	return s
}

// Save persists a copy of the definition.
func (s *Store) Save(ctx context.Context, name string, def *schema.Definition) error {
	copied := def.Clone()
	copied.Name = name

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load returns a copy so callers cannot mutate the stored definition.
func (s *Store) Load(ctx context.Context, name string) (*schema.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.data[name]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return def.Clone(), nil
}

// Delete removes the definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored names in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
