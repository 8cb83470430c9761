package fsa_test

import (
	"testing"

	"github.com/aretw0/automata/pkg/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDeterministic(t *testing.T) {
	twoInitials := figureA(t)
	require.NoError(t, twoInitials.SetInitial(1))

	noInitial := mustBuild(t, []int{0}, nil, nil, []int{0})

	tests := []struct {
		name string
		a    *fsa.Automaton[int, string]
		want fsa.ViolationKind
	}{
		{"two targets on (1, b)", figureA(t), fsa.MultipleTargets},
		{"two initial states", twoInitials, fsa.InitialCount},
		{"no initial state", noInitial, fsa.InitialCount},
		{"complete nfa", figureD(t), fsa.MultipleTargets},
		{"dfa", endsWithB(t), 0},
		{"partial dfa", mustBuild(t, []int{0, 1, 2}, fsa.Delta[int, string]{
			0: row("a", []int{1}),
			1: row("a", []int{1}, "b", []int{2}),
		}, []int{0}, []int{2}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.a.CheckDeterministic()
			if tt.want == 0 {
				assert.Nil(t, v)
				assert.True(t, tt.a.IsDeterministic())
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.want, v.Kind)
			assert.NotEmpty(t, v.Error())
			assert.False(t, tt.a.IsDeterministic())
		})
	}
}

func TestCheckDeterministic_ReportsOffendingPair(t *testing.T) {
	v := figureA(t).CheckDeterministic()
	require.NotNil(t, v)
	assert.Equal(t, "1", v.State)
	assert.Equal(t, "b", v.Symbol)
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, "2 transitions from 1 labelled by b", v.Error())
}

func TestCheckComplete(t *testing.T) {
	t.Run("missing symbol", func(t *testing.T) {
		v := figureA(t).CheckComplete()
		require.NotNil(t, v)
		assert.Equal(t, fsa.MissingTransition, v.Kind)
		assert.Equal(t, "0", v.State)
		assert.Equal(t, "b", v.Symbol)
	})

	t.Run("complete", func(t *testing.T) {
		assert.True(t, figureD(t).IsComplete())
		assert.True(t, allWords(t).IsComplete())
	})

	t.Run("state without outgoing transitions", func(t *testing.T) {
		// Every state with transitions is total, but 2 has none at all.
		a := mustBuild(t, []int{0, 1, 2}, fsa.Delta[int, string]{
			0: row("a", []int{1}, "b", []int{0}),
			1: row("a", []int{1}, "b", []int{0}),
		}, []int{0}, []int{1})
		v := a.CheckComplete()
		require.NotNil(t, v)
		assert.Equal(t, "2", v.State)
		assert.False(t, a.IsComplete())
	})

	t.Run("explicit empty target set", func(t *testing.T) {
		a := mustBuild(t, []int{0}, fsa.Delta[int, string]{
			0: {"a": fsa.NewSet(0), "b": fsa.NewSet[int]()},
		}, []int{0}, []int{0})
		assert.False(t, a.IsComplete())
	})

	t.Run("empty alphabet", func(t *testing.T) {
		a := fsa.New[int, string]()
		require.NoError(t, a.AddState(0))
		assert.True(t, a.IsComplete())
	})
}

func TestSingleStateLoop(t *testing.T) {
	a := allWords(t)
	assert.True(t, a.Accepts(w("")))
	assert.True(t, a.Accepts(w("ababab")))
	assert.True(t, a.IsComplete())
	assert.True(t, a.IsDeterministic())
}
