// mapgen generates data-access clients and mapping documents from table
// descriptions.
//
// Usage:
//
//	mapgen generate --project mapgen.yaml
//	mapgen generate --project mapgen.yaml --watch
//	mapgen explain --project mapgen.yaml
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
