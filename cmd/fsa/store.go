package main

import (
	"fmt"

	"github.com/aretw0/automata/pkg/schema"
	"github.com/spf13/cobra"
)

func newPutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <file>...",
		Short: "Validate definition files and store them",
		Long:  `Stores each file under the name it declares, or its file name without extension.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			rename, _ := cmd.Flags().GetString("name")
			if rename != "" && len(args) > 1 {
				return fmt.Errorf("--name needs exactly one file")
			}
			for _, path := range args {
				def, err := schema.ReadFile(path)
				if err != nil {
					return err
				}
				if rename != "" {
					def.Name = rename
				}
				if err := e.wb.Put(cmd.Context(), def); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", e.styler.Name(def.Name))
			}
			return nil
		}),
	}
	cmd.Flags().String("name", "", "Store the definition under this name")
	return cmd
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a stored definition",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			def, err := e.wb.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			data, err := schema.Marshal(def, schema.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}),
	}
	cmd.Flags().String("format", "yaml", "Output format: yaml or json")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored automata",
		Args:    cobra.NoArgs,
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			names, err := e.wb.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		}),
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>...",
		Aliases: []string{"delete"},
		Short:   "Delete stored automata",
		Args:    cobra.MinimumNArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, e *env, args []string) error {
			for _, n := range args {
				if err := e.wb.Delete(cmd.Context(), n); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
