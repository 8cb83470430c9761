package dsl

import (
	"testing"

	"github.com/aretw0/automata/pkg/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_FigureA(t *testing.T) {
	b := New[int]("a", "b")

	b.State(0).Initial().On("a", 1)
	b.State(1).Loop("a").On("b", 1, 2)
	b.State(2).Final()

	a, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, a.NumStates())
	assert.Equal(t, 4, a.NumTransitions())
	assert.True(t, a.Targets(1, "b").Equal(fsa.NewSet(1, 2)))
	assert.False(t, a.IsDeterministic())
	assert.True(t, a.Accepts([]string{"a", "a", "b"}))
	assert.False(t, a.Accepts(nil))
}

func TestBuilder_ChainingAndReuse(t *testing.T) {
	b := New[string]("a", "b")
	b.State("even").Initial().Final().On("a", "odd").Loop("b").
		State("odd").On("a", "even").Loop("b")

	first, err := b.Build()
	require.NoError(t, err)
	assert.True(t, first.IsDeterministic())
	assert.True(t, first.IsComplete())
	assert.True(t, first.Accepts([]string{"a", "b", "a"}))

	// Builds are independent snapshots.
	second, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, second.AddState("extra"))
	assert.Equal(t, 2, first.NumStates())
}

func TestBuilder_SameStateReturnsSameBuilder(t *testing.T) {
	b := New[int]("a")
	assert.Same(t, b.State(1), b.State(1))
	b.States(1, 2, 3)
	a, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, a.NumStates())
}

func TestBuilder_ReportsAllErrors(t *testing.T) {
	b := New[int]("a")
	b.State(0).Initial().On("a", 7).On("z", 0)

	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, fsa.ErrUnknownState)
	assert.ErrorIs(t, err, fsa.ErrUnknownSymbol)
}
