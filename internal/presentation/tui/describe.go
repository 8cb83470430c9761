package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/schema"
)

// DescribeMarkdown builds the Markdown report printed by `fsa describe`.
func DescribeMarkdown(def *schema.Definition, r *automata.Report) string {
	var sb strings.Builder
	title := def.Name
	if title == "" {
		title = r.Name
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if def.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", def.Description)
	}

	sb.WriteString("| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Alphabet | %s |\n", braces(r.Alphabet))
	fmt.Fprintf(&sb, "| States | %d |\n", r.States)
	fmt.Fprintf(&sb, "| Transitions | %d |\n", r.Transitions)
	fmt.Fprintf(&sb, "| Initial | %s |\n", braces(def.Initial))
	fmt.Fprintf(&sb, "| Final | %s |\n", braces(def.Final))
	fmt.Fprintf(&sb, "| Deterministic | %s |\n", yesNo(r.Deterministic))
	fmt.Fprintf(&sb, "| Complete | %s |\n", yesNo(r.Complete))
	fmt.Fprintf(&sb, "| Empty language | %s |\n", yesNo(r.Empty))
	fmt.Fprintf(&sb, "| Useful states | %s |\n", braces(r.Useful))

	if len(r.Violations) > 0 {
		sb.WriteString("\n## Diagnostics\n\n")
		for _, v := range r.Violations {
			fmt.Fprintf(&sb, "- %s\n", v)
		}
	}

	if n := len(def.Transitions); n > 0 {
		sb.WriteString("\n## Transitions\n\n| From | Label | To |\n|---|---|---|\n")
		for _, t := range def.Transitions {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", cell(t.From), cell(t.Label), cell(t.To))
		}
	}
	return sb.String()
}

func braces(items []string) string {
	return cell("{" + strings.Join(items, ", ") + "}")
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
