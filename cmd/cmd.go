// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// processCommand handles playlist export processing.
func processCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "process",
		Aliases:   []string{"run"},
		Usage:     "Convert playlist exports into M3U playlists",
		ArgsUsage: "<export.csv> [export.csv...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory for audio files and playlists",
			},
			&cli.BoolFlag{
				Name:  "skip-download",
				Usage: "Reuse already-downloaded files instead of invoking the downloader",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent workers when processing multiple exports",
				Value: 2,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Playlist starts per second when processing multiple exports",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write a reconciliation report (csv, markdown, or txt)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output run summary as JSON",
			},
		},
		Action: r.Process,
	}
}

// setupCommand handles setup operations for configuration and the run database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// historyCommand handles inspection of past processing runs.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect past processing runs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "playlist",
						Usage: "Filter runs by playlist name",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to return",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.HistoryList,
			},
			{
				Name:  "show",
				Usage: "Show a run with its metadata corrections",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.HistoryShow,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist processing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for playlist processing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory to scan for playlist exports",
				Value:   ".",
			},
		},
		Action: r.TUI,
	}
}
