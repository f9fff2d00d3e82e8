// Command tripctl administers the trip journal store: export and import the
// journal document, print expense totals, and seed packing lists.
//
// It reads the same environment as the API server, so it opens the same store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkordes/trip-journal/internal/app"
	"github.com/pkordes/trip-journal/internal/config"
	"github.com/pkordes/trip-journal/internal/logging"
)

func main() {
	open := func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return app.Open(ctx, cfg, logging.New(os.Stderr, "text", cfg.LogLevel))
	}

	if err := newRootCmd(open).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
