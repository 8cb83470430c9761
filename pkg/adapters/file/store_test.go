package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, file.NewStore(t.TempDir()))
}

func TestFileStore_JSONContract(t *testing.T) {
	store := file.NewStore(t.TempDir())
	store.Format = schema.FormatJSON
	ports.RunStoreContract(t, store)
}

func TestFileStore_ReadsHandWrittenFiles(t *testing.T) {
	dir := t.TempDir()
	doc := `
alphabet: [a, b]
states: [0, 1]
initial: 0
final: [1]
delta:
  0: {a: [0], b: [1]}
  1: {a: [0], b: [1]}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ends-with-b.yml"), []byte(doc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	store := file.NewStore(dir)
	ctx := context.Background()

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ends-with-b"}, names)

	def, err := store.Load(ctx, "ends-with-b")
	require.NoError(t, err)
	assert.Equal(t, "ends-with-b", def.Name)
	assert.Equal(t, []string{"0"}, def.Initial)
	assert.Len(t, def.Transitions, 4)

	a, err := def.Automaton()
	require.NoError(t, err)
	assert.True(t, a.Accepts([]string{"a", "b"}))
	assert.False(t, a.Accepts([]string{"b", "a"}))
}

func TestFileStore_SaveReplacesOtherExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m.json"), []byte(`{"alphabet":["a"]}`), 0644))

	store := file.NewStore(dir)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "m", &schema.Definition{Alphabet: []string{"x"}}))

	_, err := os.Stat(filepath.Join(dir, "m.json"))
	assert.True(t, os.IsNotExist(err))

	def, err := store.Load(ctx, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, def.Alphabet)
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "../escape", &schema.Definition{}))
	assert.Error(t, store.Save(ctx, "dir/x.yaml", &schema.Definition{}))

	for _, name := range []string{"", "dir/x.yaml", `dir\x.yaml`, ".."} {
		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, ports.ErrNotFound, name)
	}
}

func TestFileStore_MissingDirectory(t *testing.T) {
	store := file.NewStore(filepath.Join(t.TempDir(), "absent"))
	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
