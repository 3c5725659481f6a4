package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"facility-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the versioned migrations in db/migrations against the configured
// database. Requires the atlas binary on PATH.
func main() {
	dir := flag.String("dir", "file://db/migrations", "migration directory URL")
	timeout := flag.Duration("timeout", 2*time.Minute, "migration timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("Failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
	)
}
