package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractDefinition(name string) *schema.Definition {
	return &schema.Definition{
		Name:     name,
		Alphabet: []string{"a", "b"},
		States:   []string{"0", "1"},
		Initial:  []string{"0"},
		Final:    []string{"1"},
		Transitions: []schema.Transition{
			{From: "0", Label: "a", To: "0"},
			{From: "0", Label: "b", To: "1"},
			{From: "1", Label: "a", To: "0"},
			{From: "1", Label: "b", To: "1"},
		},
	}
}

// RunStoreContract runs a suite of tests to verify that a Store implementation
// adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		def := contractDefinition(name)
		require.NoError(t, store.Save(ctx, name, def), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, def.Alphabet, loaded.Alphabet)
		assert.Equal(t, def.States, loaded.States)
		assert.Equal(t, def.Initial, loaded.Initial)
		assert.Equal(t, def.Final, loaded.Final)
		assert.ElementsMatch(t, def.Transitions, loaded.Transitions)

		a, err := loaded.Automaton()
		require.NoError(t, err)
		assert.True(t, a.Accepts([]string{"a", "b"}))
	})

	t.Run("Save Isolates Caller", func(t *testing.T) {
		def := contractDefinition(name)
		require.NoError(t, store.Save(ctx, name, def))
		def.States = append(def.States, "mutated")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.NotContains(t, loaded.States, "mutated")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, contractDefinition(name)))
		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, ErrNotFound, "Load after Delete should return ErrNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		require.NoError(t, store.Save(ctx, id1, contractDefinition(id1)))
		require.NoError(t, store.Save(ctx, id2, contractDefinition(id2)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsNonDecreasing(t, names)
	})
}
