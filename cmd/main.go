package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/spotypod/internal/download"
	"github.com/desertthunder/spotypod/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var downloader download.Service
	if config.Downloader.Enabled {
		downloader = download.NewSpotdlService(download.SpotdlOpts{
			Command: config.Downloader.Command,
			Format:  config.Downloader.Format,
		})
	}

	opts := RunnerOpts{
		Config:     config,
		Downloader: downloader,
		Logger:     logger,
	}

	// Attach the run database when it has been set up already. Commands
	// that require it prompt for `setup` otherwise.
	if _, err := os.Stat(config.Database.Path); err == nil {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			opts.DB = db
			defer db.Close()
		} else {
			logger.Warn("failed to open run database", "error", err)
		}
	}

	runner := NewRunner(opts)

	app := &cli.Command{
		Name:     "spotypod",
		Usage:    "Turn streaming playlist exports into local M3U playlists",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
