/*
Package ports defines the driven ports (interfaces) of the automata workbench.

These interfaces decouple the facade from storage backends, so the same
operations run against automata kept in memory, in a directory, in Redis or in a
Loam document repository.

# Key Interfaces

  - Source: read-only access to named automaton definitions.
  - Store: a Source that can also save and delete definitions.
*/
package ports
