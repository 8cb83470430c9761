package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/internal/presentation/tui"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <automaton>",
		Short: "Report determinism, completeness, emptiness and useful states",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			ctx := cmd.Context()
			name, err := e.resolve(ctx, args[0])
			if err != nil {
				return err
			}
			r, err := e.wb.Check(ctx, name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(out, r)
			}
			printReport(out, e.styler, r)
			return nil
		}),
	}
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	return cmd
}

func printReport(w io.Writer, s tui.Styler, r *automata.Report) {
	fmt.Fprintf(w, "%s: %d states, %d transitions over {%s}\n",
		s.Name(r.Name), r.States, r.Transitions, strings.Join(r.Alphabet, ", "))
	fmt.Fprintf(w, "  deterministic: %s\n", s.Verdict(r.Deterministic))
	fmt.Fprintf(w, "  complete:      %s\n", s.Verdict(r.Complete))
	fmt.Fprintf(w, "  empty:         %s\n", s.Verdict(r.Empty))
	fmt.Fprintf(w, "  reachable:     {%s}\n", strings.Join(r.Reachable, ", "))
	fmt.Fprintf(w, "  co-reachable:  {%s}\n", strings.Join(r.CoReachable, ", "))
	fmt.Fprintf(w, "  useful:        {%s}\n", strings.Join(r.Useful, ", "))
	for _, v := range r.Violations {
		fmt.Fprintf(w, "  %s\n", s.Warn(v))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <automaton> <word>...",
		Short: "Run words through an automaton",
		Long: `Runs every word through the automaton and prints whether it is accepted.
Each character is a symbol unless --sep is given. Use "" for the empty word.`,
		Args: cobra.MinimumNArgs(2),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			ctx := cmd.Context()
			name, err := e.resolve(ctx, args[0])
			if err != nil {
				return err
			}
			sep, _ := cmd.Flags().GetString("sep")
			trace, _ := cmd.Flags().GetBool("trace")

			words := make([][]string, len(args)-1)
			for i, w := range args[1:] {
				words[i] = schema.SplitWord(w, sep)
			}
			got, err := e.wb.Accepts(ctx, name, words...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, w := range args[1:] {
				fmt.Fprintf(out, "%q: %s\n", w, e.styler.Accepted(got[i]))
				if !trace {
					continue
				}
				steps, err := e.wb.Trace(ctx, name, words[i])
				if err != nil {
					return err
				}
				for j, active := range steps {
					label := "start"
					if j > 0 {
						label = words[i][j-1]
					}
					fmt.Fprintf(out, "  %-6s {%s}\n", label, strings.Join(active, ", "))
				}
			}
			return nil
		}),
	}
	cmd.Flags().String("sep", "", "Symbol separator (default: every character is a symbol)")
	cmd.Flags().Bool("trace", false, "Print the active states after each symbol")
	return cmd
}

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <automaton>",
		Short: "Export the automaton as a Mermaid or Graphviz diagram",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			ctx := cmd.Context()
			name, err := e.resolve(ctx, args[0])
			if err != nil {
				return err
			}
			def, err := e.wb.Get(ctx, name)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			out := cmd.OutOrStdout()
			switch format {
			case "mermaid":
				var overlay *graph.Overlay
				if cmd.Flags().Changed("word") {
					word, _ := cmd.Flags().GetString("word")
					sep, _ := cmd.Flags().GetString("sep")
					steps, err := e.wb.Trace(ctx, name, schema.SplitWord(word, sep))
					if err != nil {
						return err
					}
					overlay = &graph.Overlay{Active: steps[len(steps)-1]}
					for _, s := range steps {
						overlay.Visited = append(overlay.Visited, s...)
					}
				}
				fmt.Fprint(out, graph.GenerateMermaid(def, overlay))
			case "dot":
				fmt.Fprint(out, graph.GenerateDot(def))
			default:
				return fmt.Errorf("unknown graph format %q (want mermaid or dot)", format)
			}
			return nil
		}),
	}
	cmd.Flags().String("format", "mermaid", "Output format: mermaid or dot")
	cmd.Flags().String("word", "", "Highlight the states visited while reading this word (mermaid only)")
	cmd.Flags().String("sep", "", "Symbol separator for --word")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <automaton>",
		Short: "Print a Markdown report of the automaton",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			ctx := cmd.Context()
			name, err := e.resolve(ctx, args[0])
			if err != nil {
				return err
			}
			def, err := e.wb.Get(ctx, name)
			if err != nil {
				return err
			}
			r, err := e.wb.Check(ctx, name)
			if err != nil {
				return err
			}
			render := tui.NewRenderer(e.color)
			text, err := render(tui.DescribeMarkdown(def, r))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		}),
	}
}
