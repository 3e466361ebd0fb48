package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/mapgen/compiler/gen"
)

func newExplainCmd(logger func() *slog.Logger) *cobra.Command {
	var (
		project string
		tables  []string
	)
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Print the resolved operations and identifiers of each table",
		Long: `Explain resolves the operations of every table of a project and prints each
operation with its state and identifier. Nothing is written.

Examples:
  mapgen explain                     # Explain every table of mapgen.yaml
  mapgen explain -t users -t orders  # Explain selected tables
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return explain(cmd.OutOrStdout(), project, tables, logger())
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", defaultProject, "Project file to explain")
	cmd.Flags().StringSliceVarP(&tables, "table", "t", nil, "Explain only the named tables")
	return cmd
}

func explain(w io.Writer, path string, only []string, log *slog.Logger) error {
	p, cfg, err := loadConfig(path, log)
	if err != nil {
		return err
	}
	var (
		bold     = color.New(color.Bold)
		enabled  = color.New(color.FgGreen)
		disabled = color.New(color.Faint)
	)
	for _, lt := range p.Tables {
		if len(only) > 0 && !slices.Contains(only, lt.Name) && !slices.Contains(only, lt.FullName()) {
			continue
		}
		t, err := gen.NewTable(lt, cfg)
		if err != nil {
			return err
		}
		ops := gen.Resolve(t)
		names, err := gen.ResolveNames(t, ops, cfg.Naming)
		if err != nil {
			return err
		}
		bold.Fprintf(w, "%s", t.FullName())
		fmt.Fprintf(w, " (%s runtime, %s client, %s naming)\n", cfg.Runtime, cfg.Client.Name, cfg.Naming)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, op := range gen.Operations() {
			if !ops.Has(op) {
				fmt.Fprintf(tw, "  %s\t%s\t\n", op, disabled.Sprint("off"))
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", op, enabled.Sprint("on"), names.Of(op))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
