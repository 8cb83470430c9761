// Package loam reads automaton definitions from a Loam document repository.
//
// Each document carries the definition in its front matter (Markdown) or body
// (JSON/YAML). The Markdown body, when present, becomes the description.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/loam"
)

// Source adapts a Loam repository to ports.Source.
type Source struct {
	Repo *loam.TypedRepository[Metadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[Metadata]) *Source {
	return &Source{Repo: repo}
}

// Open initializes a strict, read-only Loam repository at dir.
func Open(dir string) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[Metadata](repo)), nil
}

// Load retrieves the definition named name. The name may be the file name
// without extension or the id declared in the metadata.
func (s *Source) Load(ctx context.Context, name string) (*schema.Definition, error) {
	doc, err := s.Repo.Get(ctx, name)
	if err == nil {
		return toDefinition(name, doc.Data, doc.Content)
	}

	docs, listErr := s.Repo.List(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", name, err)
	}
	for _, d := range docs {
		if documentID(d.ID, d.Data) == name {
			return toDefinition(name, d.Data, d.Content)
		}
	}
	return nil, fmt.Errorf("%w: %s", ports.ErrNotFound, name)
}

// List returns the definition names in the repository. Two documents that
// resolve to the same name are reported as an error.
func (s *Source) List(ctx context.Context) ([]string, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		id := documentID(doc.ID, doc.Data)
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: name '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		names = append(names, id)
	}
	sort.Strings(names)
	return names, nil
}

func documentID(docID string, meta Metadata) string {
	raw := meta.ID
	if raw == "" {
		raw = meta.Name
	}
	if raw == "" {
		raw = docID
	}
	return trimExtension(raw)
}

func toDefinition(name string, meta Metadata, content string) (*schema.Definition, error) {
	def, err := schema.Decode(meta.raw())
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}
	def.Name = name
	if def.Description == "" {
		def.Description = strings.TrimSpace(content)
	}
	return def, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
