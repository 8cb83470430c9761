package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/automata/pkg/adapters/memory"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunStoreContract(t, store)
}

func TestMemoryStore_Seed(t *testing.T) {
	store := memory.NewStore(&schema.Definition{Name: "empty", Alphabet: []string{"a"}})
	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"empty"}, names)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	def := &schema.Definition{Alphabet: []string{"a"}, States: []string{"0"}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, "shared", def)
			_, _ = store.Load(ctx, "shared")
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	loaded, err := store.Load(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "shared", loaded.Name)
}
