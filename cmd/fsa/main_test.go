package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endsWithB = `name: ends-with-b
alphabet: [a, b]
states: [0, 1]
initial: [0]
final: [1]
delta:
  0: {a: [0], b: [1]}
  1: {a: [0], b: [1]}
`

const endsWithBNFA = `alphabet: [a, b]
states: [q0, q1]
initial: [q0]
final: [q1]
transitions:
  - {from: q0, label: a, to: q0}
  - {from: q0, label: b, to: q0}
  - {from: q0, label: b, to: q1}
`

const allWords = `{
  "alphabet": ["a", "b"],
  "states": ["s"],
  "initial": ["s"],
  "final": ["s"],
  "transitions": [{"from": "s", "label": "a", "to": "s"}, {"from": "s", "label": "b", "to": "s"}]
}`

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		"dfa.yaml": endsWithB,
		"nfa.yml":  endsWithBNFA,
		"all.json": allWords,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--store", "memory", "--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir := writeFixtures(t)

	out, err := run(t, "check", filepath.Join(dir, "dfa.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "deterministic: yes")
	assert.Contains(t, out, "useful:        {0, 1}")

	out, err = run(t, "check", filepath.Join(dir, "nfa.yml"))
	require.NoError(t, err)
	assert.Contains(t, out, "deterministic: no")
	assert.Contains(t, out, "2 transitions from q0 labelled by b")

	out, err = run(t, "check", "--json", filepath.Join(dir, "all.json"))
	require.NoError(t, err)
	assert.Contains(t, out, `"complete": true`)
}

func TestFileArgumentsWithFileStore(t *testing.T) {
	dir := writeFixtures(t)
	store := []string{"--store", "file", "--dir", t.TempDir()}

	out, err := run(t, append(store, "check", filepath.Join(dir, "dfa.yaml"))...)
	require.NoError(t, err)
	assert.Contains(t, out, "deterministic: yes")

	out, err = run(t, append(store, "accept", filepath.Join(dir, "nfa.yml"), "ab")...)
	require.NoError(t, err)
	assert.Contains(t, out, `"ab": accepted`)

	out, err = run(t, append(store, "ls")...)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAccept(t *testing.T) {
	dir := writeFixtures(t)

	out, err := run(t, "accept", filepath.Join(dir, "nfa.yml"), "ab", "ba", "")
	require.NoError(t, err)
	assert.Contains(t, out, `"ab": accepted`)
	assert.Contains(t, out, `"ba": rejected`)
	assert.Contains(t, out, `"": rejected`)

	out, err = run(t, "accept", "--trace", filepath.Join(dir, "nfa.yml"), "b")
	require.NoError(t, err)
	assert.Contains(t, out, "{q0, q1}")
}

func TestConstructions(t *testing.T) {
	dir := writeFixtures(t)
	dfa := filepath.Join(dir, "dfa.yaml")
	nfa := filepath.Join(dir, "nfa.yml")

	out, err := run(t, "union", dfa, nfa)
	require.NoError(t, err)
	assert.Contains(t, out, "(q1, 1)")

	out, err = run(t, "complement", "--format", "json", dfa)
	require.NoError(t, err)
	assert.Contains(t, out, `"final": [`)

	_, err = run(t, "complement", nfa)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not deterministic")

	out, err = run(t, "complete", "--sink", "dead", nfa)
	require.NoError(t, err)
	assert.Contains(t, out, "dead")
}

func TestCompare(t *testing.T) {
	dir := writeFixtures(t)
	dfa := filepath.Join(dir, "dfa.yaml")
	nfa := filepath.Join(dir, "nfa.yml")
	all := filepath.Join(dir, "all.json")

	out, err := run(t, "include", dfa, all)
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)

	out, err = run(t, "equiv", "--determinize", nfa, dfa)
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)

	out, err = run(t, "include", "--exit-code", all, dfa)
	assert.ErrorIs(t, err, errNegative)
	assert.Equal(t, "no\n", out)
}

func TestStoreCommands(t *testing.T) {
	dir := writeFixtures(t)
	storeDir := t.TempDir()
	store := []string{"--store", "file", "--dir", storeDir}

	_, err := run(t, append(store, "put", filepath.Join(dir, "dfa.yaml"), filepath.Join(dir, "all.json"))...)
	require.NoError(t, err)

	out, err := run(t, append(store, "ls")...)
	require.NoError(t, err)
	assert.Equal(t, "all\nends-with-b\n", out)

	_, err = run(t, append(store, "mirror", "--save", "starts-with-b", "ends-with-b")...)
	require.NoError(t, err)

	out, err = run(t, append(store, "accept", "starts-with-b", "ba")...)
	require.NoError(t, err)
	assert.Contains(t, out, `"ba": accepted`)

	out, err = run(t, append(store, "get", "starts-with-b")...)
	require.NoError(t, err)
	assert.Contains(t, out, "name: starts-with-b")

	_, err = run(t, append(store, "rm", "starts-with-b")...)
	require.NoError(t, err)
	_, err = run(t, append(store, "get", "starts-with-b")...)
	assert.Error(t, err)
}

func TestGraphAndDescribe(t *testing.T) {
	dir := writeFixtures(t)
	dfa := filepath.Join(dir, "dfa.yaml")

	out, err := run(t, "graph", "--format", "dot", dfa)
	require.NoError(t, err)
	assert.Contains(t, out, "doublecircle")

	out, err = run(t, "graph", "--word", "ab", dfa)
	require.NoError(t, err)
	assert.Contains(t, out, "class s1 current;")

	out, err = run(t, "describe", dfa)
	require.NoError(t, err)
	assert.Contains(t, out, "| Deterministic | yes |")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fsa version ")
}
