package main

import (
	"fmt"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/spf13/cobra"
)

func opOptions(cmd *cobra.Command) []automata.OpOption {
	var opts []automata.OpOption
	if det, _ := cmd.Flags().GetBool("determinize"); det {
		opts = append(opts, automata.Determinized())
	}
	if save, _ := cmd.Flags().GetString("save"); save != "" {
		opts = append(opts, automata.SaveAs(save))
	}
	if f := cmd.Flags().Lookup("sink"); f != nil && f.Changed {
		opts = append(opts, automata.WithSink(f.Value.String()))
	}
	return opts
}

// newOpCmd builds a command running a construction through Workbench.Do.
func newOpCmd(use, short, op string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(automata.Arity(op)),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			ctx := cmd.Context()
			inputs, err := e.resolveAll(ctx, args)
			if err != nil {
				return err
			}
			res, err := e.wb.Do(ctx, op, inputs, opOptions(cmd)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if save, _ := cmd.Flags().GetString("save"); save != "" {
				fmt.Fprintf(out, "saved %s (%d states)\n", e.styler.Name(save), len(res.Definition.States))
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			data, err := schema.Marshal(res.Definition, schema.Format(format))
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}),
	}
	cmd.Flags().String("save", "", "Store the result under this name instead of printing it")
	cmd.Flags().String("format", "yaml", "Output format: yaml or json")
	cmd.Flags().Bool("determinize", false, "Apply the subset construction to the inputs first")
	if op == automata.OpComplete {
		cmd.Flags().String("sink", automata.DefaultSink, "Name of the added sink state")
	}
	return cmd
}

// newCompareCmd builds a command printing the verdict of a comparison.
func newCompareCmd(use, short, op string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.
Both automata must be deterministic and complete unless --determinize is given.
The command exits with status 2 when the answer is no and --exit-code is set.`,
		Args: cobra.ExactArgs(2),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			ctx := cmd.Context()
			inputs, err := e.resolveAll(ctx, args)
			if err != nil {
				return err
			}
			res, err := e.wb.Do(ctx, op, inputs, opOptions(cmd)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.styler.Verdict(*res.Verdict))
			if exit, _ := cmd.Flags().GetBool("exit-code"); exit && !*res.Verdict {
				return errNegative
			}
			return nil
		}),
	}
	cmd.Flags().Bool("determinize", false, "Apply the subset construction to both inputs first")
	cmd.Flags().Bool("exit-code", false, "Exit with status 2 when the answer is no")
	return cmd
}
