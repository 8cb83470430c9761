package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/automata/pkg/schema"
)

// Overlay contains run data to highlight on the graph.
type Overlay struct {
	// Visited are states active at some point of a run.
	Visited []string
	// Active are the states active once the run is over.
	Active []string
}

// edgeLabels groups the symbols of parallel transitions: from -> to -> labels.
func edgeLabels(def *schema.Definition) map[string]map[string][]string {
	n := def.Clone()
	n.Normalize()
	out := make(map[string]map[string][]string)
	for _, t := range n.Transitions {
		row, ok := out[t.From]
		if !ok {
			row = make(map[string][]string)
			out[t.From] = row
		}
		row[t.To] = append(row[t.To], t.Label)
	}
	return out
}

// nodeIDs assigns every state a diagram-safe identifier. State names of composite
// automata contain spaces, commas and brackets, so names are never used as IDs.
func nodeIDs(def *schema.Definition) map[string]string {
	ids := make(map[string]string, len(def.States))
	for i, s := range def.States {
		ids[s] = fmt.Sprintf("s%d", i)
	}
	return ids
}

func set(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// Shapes follow the usual conventions:
// - Final: (((Double circle)))
// - Initial: ((Circle)), with an entry arrow
// - Default: (Rounded)
// Parallel transitions share one arrow labelled with every symbol.
func GenerateMermaid(def *schema.Definition, overlay *Overlay) string {
	ids := nodeIDs(def)
	initial := set(def.Initial)
	final := set(def.Final)

	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	for _, s := range def.States {
		opener, closer := "(", ")"
		switch {
		case final[s]:
			opener, closer = "(((", ")))"
		case initial[s]:
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[s], opener, escapeMermaid(s), closer))
	}

	for i, s := range def.States {
		if initial[s] {
			sb.WriteString(fmt.Sprintf("    start%d[ ] --> %s\n", i, ids[s]))
			sb.WriteString(fmt.Sprintf("    style start%d fill:none,stroke:none\n", i))
		}
	}

	edges := edgeLabels(def)
	for _, from := range sortedKeys(edges) {
		row := edges[from]
		for _, to := range sortedKeys(row) {
			label := escapeMermaid(strings.Join(row[to], ", "))
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[from], label, ids[to]))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		active := set(overlay.Active)
		styled := make(map[string]bool)
		for _, s := range overlay.Visited {
			id, ok := ids[s]
			if !ok || styled[id] || active[s] {
				continue
			}
			styled[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
		}
		for _, s := range overlay.Active {
			if id, ok := ids[s]; ok {
				sb.WriteString(fmt.Sprintf("    class %s current;\n", id))
			}
		}
	}

	return sb.String()
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
