package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/automata/pkg/schema"
)

// GenerateDot produces a Graphviz digraph of the automaton. Final states are drawn
// as double circles and every initial state gets an arrow from an invisible point.
func GenerateDot(def *schema.Definition) string {
	ids := nodeIDs(def)
	initial := set(def.Initial)
	final := set(def.Final)

	var sb strings.Builder
	name := def.Name
	if name == "" {
		name = "automaton"
	}
	sb.WriteString(fmt.Sprintf("digraph %s {\n", strconv.Quote(name)))
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=circle];\n")

	for i, s := range def.States {
		shape := ""
		if final[s] {
			shape = ", shape=doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    %s [label=%s%s];\n", ids[s], strconv.Quote(s), shape))
		if initial[s] {
			sb.WriteString(fmt.Sprintf("    start%d [shape=point];\n", i))
			sb.WriteString(fmt.Sprintf("    start%d -> %s;\n", i, ids[s]))
		}
	}

	edges := edgeLabels(def)
	for _, from := range sortedKeys(edges) {
		row := edges[from]
		for _, to := range sortedKeys(row) {
			label := strings.Join(row[to], ", ")
			sb.WriteString(fmt.Sprintf("    %s -> %s [label=%s];\n", ids[from], ids[to], strconv.Quote(label)))
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
