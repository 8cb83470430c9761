package fsa_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludes(t *testing.T) {
	tests := []struct {
		name string
		a, b *fsa.Automaton[int, string]
		want bool
	}{
		{"endsWithB in allWords", endsWithB(t), allWords(t), true},
		{"allWords in endsWithB", allWords(t), endsWithB(t), false},
		{"evenA in allWords", evenA(t), allWords(t), true},
		{"evenA in endsWithB", evenA(t), endsWithB(t), false},
		{"reflexive", evenA(t), evenA(t), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fsa.Includes(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIncludes_Preconditions(t *testing.T) {
	_, err := fsa.Includes(figureA(t), allWords(t))
	assert.ErrorIs(t, err, fsa.ErrPreconditionViolated)

	_, err = fsa.Includes(allWords(t), figureA(t))
	assert.ErrorIs(t, err, fsa.ErrPreconditionViolated)

	other, err := fsa.FromParts(fsa.NewSet("a"), fsa.NewSet(0), fsa.Delta[int, string]{
		0: {"a": fsa.NewSet(0)},
	}, fsa.NewSet(0), fsa.NewSet(0))
	require.NoError(t, err)
	_, err = fsa.Includes(allWords(t), other)
	assert.ErrorIs(t, err, fsa.ErrAlphabetMismatch)
}

func TestEquivalent(t *testing.T) {
	for name, a := range map[string]*fsa.Automaton[int, string]{
		"evenA":     evenA(t),
		"endsWithB": endsWithB(t),
		"allWords":  allWords(t),
	} {
		ok, err := fsa.Equivalent(a, a)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	ok, err := fsa.Equivalent(evenA(t), endsWithB(t))
	require.NoError(t, err)
	assert.False(t, ok)

	// Same language, different shape: a redundant copy of (a+b)*.
	twoState := mustBuild(t, []int{0, 1}, fsa.Delta[int, string]{
		0: row("a", []int{1}, "b", []int{1}),
		1: row("a", []int{0}, "b", []int{0}),
	}, []int{0}, []int{0, 1})
	ok, err = fsa.Equivalent(allWords(t), twoState)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = fsa.Equivalent(figureD(t), figureD(t))
	assert.ErrorIs(t, err, fsa.ErrPreconditionViolated)
}
