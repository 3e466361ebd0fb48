package main

import (
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/mapgen/compiler/gen"
	"github.com/syssam/mapgen/compiler/load"
)

const defaultProject = "mapgen.yaml"

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	skipColor = color.New(color.FgYellow)
)

func okMark() string { return okColor.Sprint("✓") }
func failMark() string { return failColor.Sprint("✗") }
func skipMark() string { return skipColor.Sprint("-") }

// newRootCmd returns the mapgen command tree.
func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "mapgen",
		Short: "Generate data-access clients and mapping documents from table descriptions",
		Long: `mapgen decides which data-access statements apply to each described table,
names them, and writes a Go client interface, an optional SQL provider type and
a mapping document per table.

Examples:

  mapgen generate
  mapgen generate --project db/mapgen.yaml --watch
  mapgen explain --table users
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every generated table and artifact")
	logger := func() *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}
	cmd.AddCommand(
		newGenerateCmd(logger),
		newExplainCmd(logger),
	)
	return cmd
}

// loadConfig reads a project file and builds the generation config. A
// relative target directory is resolved against the project file.
func loadConfig(path string, log *slog.Logger) (*load.Project, *gen.Config, error) {
	p, err := load.LoadProject(path)
	if err != nil {
		return nil, nil, err
	}
	if !filepath.IsAbs(p.Target) {
		p.Target = filepath.Join(filepath.Dir(path), p.Target)
	}
	cfg, err := gen.NewConfig(gen.WithProject(p), gen.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}
