package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/mapgen/compiler/gen"
	"github.com/syssam/mapgen/compiler/gen/mapper"
)

// debounce coalesces the bursts of events editors produce on save.
const debounce = 200 * time.Millisecond

func newGenerateCmd(logger func() *slog.Logger) *cobra.Command {
	var (
		project string
		watch   bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the artifacts of every table of a project",
		Long: `Generate reads the project file, generates the client interface, SQL provider
and mapping document of every table, and writes them to the target directory.

A failing table is reported and does not stop the others. With --watch the
project is regenerated whenever the project file changes.

Examples:
  mapgen generate                         # Generate from mapgen.yaml
  mapgen generate -p db/mapgen.yaml       # Generate from a custom project file
  mapgen generate --watch                 # Regenerate on every change
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				ctx = cmd.Context()
				out = cmd.OutOrStdout()
				log = logger()
			)
			err := generate(ctx, out, project, log)
			if !watch {
				return err
			}
			if err != nil {
				fmt.Fprintln(out, failMark(), err)
			}
			return watchProject(ctx, out, project, func() {
				if err := generate(ctx, out, project, log); err != nil {
					fmt.Fprintln(out, failMark(), err)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", defaultProject, "Project file to generate from")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever the project file changes")
	return cmd
}

// generate runs one generation of the project and reports every table.
func generate(ctx context.Context, w io.Writer, path string, log *slog.Logger) error {
	p, cfg, err := loadConfig(path, log)
	if err != nil {
		return err
	}
	res, paths, err := mapper.Generate(ctx, cfg, p.Tables...)
	if err != nil {
		return err
	}
	failed := report(w, res)
	for _, f := range paths {
		fmt.Fprintln(w, "  wrote", f)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tables failed: %w", failed, len(res.Tables), res.Err())
	}
	return nil
}

// report prints the outcome of every table and returns the failure count.
func report(w io.Writer, res *gen.Result) int {
	var failed int
	for _, tr := range res.Tables {
		if tr.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", failMark(), tr.Name, tr.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s (%d operations, %d artifacts)\n", okMark(), tr.Name, len(tr.Operations.Enabled()), len(tr.Artifacts))
		for _, as := range tr.Discarded {
			fmt.Fprintf(w, "  %s %s %s: %s\n", skipMark(), as.Kind, as.Name, as.Reason)
		}
	}
	return failed
}

// watchProject calls run after every change of the project file until the
// context is done. The directory is watched so that editors replacing the
// file on save are seen.
func watchProject(ctx context.Context, w io.Writer, path string, run func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	fmt.Fprintln(w, "watching", abs)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) == abs && ev.Has(fsnotify.Write|fsnotify.Create) {
				pending = time.After(debounce)
			}
		case <-pending:
			pending = nil
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", abs, err)
		}
	}
}
