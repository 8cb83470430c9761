package automata_test

import (
	"context"
	"testing"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDefinitions(t *testing.T) {
	ctx := context.Background()
	wb := automata.New(automata.WithStore(file.NewStore("examples/definitions")))

	names, err := wb.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"binary-mod3", "ends-ab", "even-a"}, names)

	for _, n := range names {
		r, err := wb.Check(ctx, n)
		require.NoError(t, err, n)
		assert.False(t, r.Empty, n)
	}

	got, err := wb.Accepts(ctx, "ends-ab", []string{"a", "a", "b"}, []string{"a", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got)

	got, err = wb.Accepts(ctx, "binary-mod3", []string{"1", "1", "0"}, []string{"1", "1", "1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got)

	same, err := wb.Equivalent(ctx, "ends-ab", "ends-ab", automata.Determinized())
	require.NoError(t, err)
	assert.True(t, same)
}
