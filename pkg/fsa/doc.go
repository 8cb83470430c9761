/*
Package fsa implements finite-state automata over arbitrary comparable state and
symbol types.

An Automaton owns an alphabet, a set of states, a non-deterministic transition
relation, and sets of initial and final states. The package provides the mutators
needed to build one incrementally, structural queries (determinism, completeness),
word simulation, reachability analysis, and the usual algebra: mirror, trim, union,
intersection (product construction), complement, inclusion and equivalence.

The package is pure: it performs no I/O and never logs. Queries that can explain
themselves (CheckDeterministic, CheckComplete) return a *Violation instead of
printing.

# Composite states

Union and Intersection change the state type so that identities stay exact:

  - Union tags every state with the operand it came from (Tagged).
  - Intersection pairs states of both operands (Pair).

Use Relabel to map composite states back to a flat type when needed.

# Concurrency

An Automaton is not safe for concurrent mutation. All queries and algebra
operations only read their operands and return fresh values, so independent
goroutines may query the same Automaton concurrently as long as nobody mutates it.
*/
package fsa
