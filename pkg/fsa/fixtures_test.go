package fsa_test

import (
	"strings"
	"testing"

	"github.com/aretw0/automata/pkg/fsa"
	"github.com/stretchr/testify/require"
)

var ab = fsa.NewSet("a", "b")

func mustBuild(t *testing.T, states []int, delta fsa.Delta[int, string], initial, final []int) *fsa.Automaton[int, string] {
	t.Helper()
	a, err := fsa.FromParts(ab, fsa.NewSet(states...), delta, fsa.NewSet(initial...), fsa.NewSet(final...))
	require.NoError(t, err)
	return a
}

func row(pairs ...any) map[string]fsa.Set[int] {
	r := make(map[string]fsa.Set[int])
	for i := 0; i < len(pairs); i += 2 {
		r[pairs[i].(string)] = fsa.NewSet(pairs[i+1].([]int)...)
	}
	return r
}

// figureA: a·a*·b(b)* style NFA with two targets on (1, b).
func figureA(t *testing.T) *fsa.Automaton[int, string] {
	return mustBuild(t, []int{0, 1, 2}, fsa.Delta[int, string]{
		0: row("a", []int{1}),
		1: row("a", []int{1}, "b", []int{1, 2}),
	}, []int{0}, []int{2})
}

// figureD is complete but not deterministic.
func figureD(t *testing.T) *fsa.Automaton[int, string] {
	return mustBuild(t, []int{0, 1, 2}, fsa.Delta[int, string]{
		0: row("a", []int{1}, "b", []int{2}),
		1: row("a", []int{1}, "b", []int{2}),
		2: row("a", []int{1, 2}, "b", []int{0}),
	}, []int{0}, []int{2})
}

// allWords: (a+b)*
func allWords(t *testing.T) *fsa.Automaton[int, string] {
	return mustBuild(t, []int{0}, fsa.Delta[int, string]{
		0: row("a", []int{0}, "b", []int{0}),
	}, []int{0}, []int{0})
}

// evenA: |w|_a = 0 mod 2
func evenA(t *testing.T) *fsa.Automaton[int, string] {
	return mustBuild(t, []int{0, 1}, fsa.Delta[int, string]{
		0: row("a", []int{1}, "b", []int{0}),
		1: row("a", []int{0}, "b", []int{1}),
	}, []int{0}, []int{0})
}

// endsWithB: (a+b)*·b, deterministic and complete.
func endsWithB(t *testing.T) *fsa.Automaton[int, string] {
	return mustBuild(t, []int{0, 1}, fsa.Delta[int, string]{
		0: row("a", []int{0}, "b", []int{1}),
		1: row("a", []int{0}, "b", []int{1}),
	}, []int{0}, []int{1})
}

// endsWithBNFA: (a+b)*·b, guessing the last b.
func endsWithBNFA(t *testing.T) *fsa.Automaton[int, string] {
	return mustBuild(t, []int{0, 1}, fsa.Delta[int, string]{
		0: row("a", []int{0}, "b", []int{0, 1}),
	}, []int{0}, []int{1})
}

func w(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// wordsUpTo enumerates every word over {a, b} of length <= n.
func wordsUpTo(n int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, p := range layer {
			next = append(next, p+"a", p+"b")
		}
		out = append(out, next...)
		layer = next
	}
	return out
}
