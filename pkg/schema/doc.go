// Package schema defines the serializable form of an automaton.
//
// A Definition names states and symbols with plain strings so it can travel
// through YAML, JSON, Markdown front matter, Redis or HTTP. It is converted to an
// executable *fsa.Automaton[string, string] with (Definition).Automaton and built
// back from any automaton with FromAutomaton.
//
// Transitions may be written as a flat list or, as in most textbooks, as a nested
// map under "delta":
//
//	name: ends-with-b
//	alphabet: [a, b]
//	states: [0, 1]
//	initial: [0]
//	final: [1]
//	delta:
//	  0: {a: [0], b: [0, 1]}
//
// Loosely typed documents (numbers used as state names, single values where a
// list is expected) are normalized by Decode.
package schema
