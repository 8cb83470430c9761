package ports

import (
	"context"
	"errors"

	"github.com/aretw0/automata/pkg/schema"
)

// ErrNotFound is returned when no definition exists under the requested name.
var ErrNotFound = errors.New("automaton not found")

// Source gives read access to named automaton definitions.
type Source interface {
	// Load retrieves the definition stored under name.
	// Returns ErrNotFound if it does not exist.
	Load(ctx context.Context, name string) (*schema.Definition, error)

	// List returns the names of all stored definitions, sorted.
	List(ctx context.Context) ([]string, error)
}

// Store persists automaton definitions by name.
type Store interface {
	Source

	// Save persists def under name, replacing any previous definition.
	Save(ctx context.Context, name string, def *schema.Definition) error

	// Delete removes the definition. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
