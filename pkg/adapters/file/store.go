// Package file stores automaton definitions as documents in a local directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
)

// DefaultDir is used when NewStore receives an empty path.
var DefaultDir = filepath.Join(".automata", "definitions")

// Store implements ports.Store using the local filesystem.
// Each definition lives in <dir>/<name>.yaml, or .yml/.json when written by hand.
type Store struct {
	BasePath string
	Format   schema.Format
}

// NewStore creates a Store rooted at basePath. New definitions are written as YAML.
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = DefaultDir
	}
	return &Store{BasePath: basePath, Format: schema.FormatYAML}
}

func (f *Store) ext() string {
	if f.Format == schema.FormatJSON {
		return ".json"
	}
	return ".yaml"
}

func validName(name string) error {
	if name == "" {
		return fmt.Errorf("definition name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid definition name %q", name)
	}
	return nil
}

// find returns the existing file for name, if any.
func (f *Store) find(name string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := filepath.Join(f.BasePath, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Save writes the definition, replacing any previous file for the same name.
func (f *Store) Save(ctx context.Context, name string, def *schema.Definition) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure definition directory: %w", err)
	}

	copied := def.Clone()
	copied.Name = name
	data, err := schema.Marshal(copied, f.Format)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	target := filepath.Join(f.BasePath, name+f.ext())
	if old, ok := f.find(name); ok && old != target {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("failed to replace definition file: %w", err)
		}
	}

	// Write through a temp file so readers never see a partial document.
	tmp, err := os.CreateTemp(f.BasePath, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write definition file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write definition file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write definition file: %w", err)
	}
	return nil
}

// Load reads and parses the definition stored under name. Names Save would
// reject are reported as not found.
func (f *Store) Load(ctx context.Context, name string) (*schema.Definition, error) {
	if validName(name) != nil {
		return nil, fmt.Errorf("%w: %s", ports.ErrNotFound, name)
	}
	p, ok := f.find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrNotFound, name)
	}
	def, err := schema.ReadFile(p)
	if err != nil {
		return nil, err
	}
	def.Name = name
	return def, nil
}

// Delete removes the definition file. Missing files are not an error.
func (f *Store) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	for {
		p, ok := f.find(name)
		if !ok {
			return nil
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to delete definition file: %w", err)
		}
	}
}

// List returns the names of all stored definitions in sorted order.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		n := entry.Name()
		if entry.IsDir() || strings.HasPrefix(n, ".") || !schema.IsDefinitionFile(n) {
			continue
		}
		id := strings.TrimSuffix(n, filepath.Ext(n))
		if !seen[id] {
			seen[id] = true
			names = append(names, id)
		}
	}
	sort.Strings(names)
	return names, nil
}
