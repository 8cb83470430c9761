package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/automata/pkg/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedYAML = `
name: figure-a
alphabet: [a, b]
states: [0, 1, 2]
initial: 0
final: [2]
delta:
  0: {a: [1]}
  1: {a: [1], b: [1, 2]}
`

const flatJSON = `{
  "name": "figure-a",
  "alphabet": ["a", "b"],
  "states": [0, 1, 2],
  "initial": [0],
  "final": [2],
  "transitions": [
    {"from": 0, "label": "a", "to": 1},
    {"from": 1, "label": "a", "to": 1},
    {"from": 1, "label": "b", "to": 1},
    {"from": 1, "label": "b", "to": 2},
    {"from": 1, "label": "b", "to": 2}
  ]
}`

func TestParse_NestedYAMLAndFlatJSONAgree(t *testing.T) {
	y, err := Parse([]byte(nestedYAML), FormatYAML)
	require.NoError(t, err)
	j, err := Parse([]byte(flatJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, y, j)
	assert.Equal(t, []string{"0"}, y.Initial, "single value becomes a list")
	assert.Equal(t, []string{"0", "1", "2"}, y.States)
	assert.Len(t, y.Transitions, 4, "duplicates dropped")
	assert.Nil(t, y.Delta)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("states: [a"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte(""), FormatYAML)
	assert.Error(t, err)
}

func TestDefinition_Automaton(t *testing.T) {
	d, err := Parse([]byte(nestedYAML), FormatYAML)
	require.NoError(t, err)

	a, err := d.Automaton()
	require.NoError(t, err)
	assert.False(t, a.IsDeterministic())
	assert.True(t, a.Accepts(SplitWord("aab", "")))
	assert.False(t, a.Accepts(nil))
	assert.True(t, a.Reachable().Equal(fsa.NewSet("0", "1", "2")))
}

func TestValidate(t *testing.T) {
	d := &Definition{
		Alphabet: []string{"a", "a", ""},
		States:   []string{"p", "p", ""},
		Initial:  []string{"x"},
		Final:    []string{"y"},
		Transitions: []Transition{
			{From: "p", Label: "z", To: "q"},
		},
	}
	err := Validate(d)
	require.Error(t, err)

	errs := ValidationErrors(err)
	assert.Len(t, errs, 8)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, SectionAlphabet, verr.Section)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, "a", verr.Name)
	assert.EqualError(t, verr, `alphabet[1]: duplicate symbol "a"`)

	last := errs[len(errs)-1].(*ValidationError)
	assert.Equal(t, &ValidationError{Section: SectionTransitions, Index: 0, Reason: "unknown symbol", Name: "z"}, last)

	_, err = d.Automaton()
	assert.Error(t, err)
}

func TestValidate_Delta(t *testing.T) {
	d := &Definition{
		Alphabet: []string{"a"},
		States:   []string{"p"},
		Delta:    map[string]map[string][]string{"p": {"b": {"q"}}},
	}
	assert.Len(t, ValidationErrors(Validate(d)), 2)
}

func TestValidate_LeavesTransitionsUntouched(t *testing.T) {
	transitions := make([]Transition, 1, 4)
	transitions[0] = Transition{From: "p", Label: "a", To: "p"}
	d := &Definition{
		Alphabet:    []string{"a"},
		States:      []string{"p"},
		Transitions: transitions,
		Delta:       map[string]map[string][]string{"p": {"a": {"q"}}},
	}

	errs := ValidationErrors(Validate(d))
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].(*ValidationError).Index)

	assert.Len(t, d.Transitions, 1)
	assert.Equal(t, Transition{}, transitions[:2][1])
}

func TestFromAutomaton_RoundTrip(t *testing.T) {
	d, err := Parse([]byte(nestedYAML), FormatYAML)
	require.NoError(t, err)
	a, err := d.Automaton()
	require.NoError(t, err)

	back, err := FromAutomaton("figure-a", a)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestFromAutomaton_CompositeStates(t *testing.T) {
	d, err := Parse([]byte(nestedYAML), FormatYAML)
	require.NoError(t, err)
	a, err := d.Automaton()
	require.NoError(t, err)

	p, err := fsa.Intersection(a, a)
	require.NoError(t, err)
	pd, err := FromAutomaton("square", p)
	require.NoError(t, err)

	assert.Len(t, pd.States, 9)
	assert.Equal(t, []string{"(0, 0)"}, pd.Initial)
	assert.Equal(t, []string{"(2, 2)"}, pd.Final)

	again, err := pd.Automaton()
	require.NoError(t, err)
	assert.True(t, again.Accepts([]string{"a", "b"}))
}

func TestFromAutomaton_Collision(t *testing.T) {
	a := fsa.New[any]("a")
	require.NoError(t, a.AddState(1))
	require.NoError(t, a.AddState("1"))
	_, err := FromAutomaton("clash", a)
	assert.ErrorIs(t, err, fsa.ErrDuplicateState)
}

func TestMarshal_RoundTrip(t *testing.T) {
	d, err := Parse([]byte(nestedYAML), FormatYAML)
	require.NoError(t, err)

	for _, f := range []Format{FormatYAML, FormatJSON} {
		data, err := Marshal(d, f)
		require.NoError(t, err)
		back, err := Parse(data, f)
		require.NoError(t, err)
		assert.Equal(t, d, back, "format %s", f)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ends-with-b.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
alphabet: [a, b]
states: [q0, q1]
initial: [q0]
final: [q1]
delta:
  q0: {a: [q0], b: [q0, q1]}
`), 0644))

	d, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ends-with-b", d.Name)
	assert.Len(t, d.Transitions, 3)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("x/A.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("x/a.yml"))
	assert.True(t, IsDefinitionFile("a.yaml"))
	assert.False(t, IsDefinitionFile("a.md"))
}

func TestSplitWord(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "é"}, SplitWord("abé", ""))
	assert.Equal(t, []string{"if", "then"}, SplitWord("if then ", " "))
	assert.Empty(t, SplitWord("", ""))
	assert.Empty(t, SplitWord("", ","))
}
