package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertthunder/spotypod/internal/formatter"
	"github.com/desertthunder/spotypod/internal/report"
	"github.com/desertthunder/spotypod/internal/shared"
	"github.com/desertthunder/spotypod/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Process converts one or more playlist exports into M3U playlists.
func (r *Runner) Process(ctx context.Context, cmd *cli.Command) error {
	exports := cmd.Args().Slice()
	if len(exports) == 0 {
		return fmt.Errorf("%w: at least one playlist export is required", shared.ErrMissingArgument)
	}

	opts := tasks.ProcessOpts{
		OutputDir:    r.config.Output.Dir,
		SkipDownload: cmd.Bool("skip-download") || r.downloader == nil,
	}
	if dir := cmd.String("output"); dir != "" {
		opts.OutputDir = dir
	}

	r.logger.Info("processing playlist exports", "count", len(exports), "output", opts.OutputDir)

	if len(exports) == 1 {
		return r.processOne(ctx, cmd, exports[0], opts)
	}
	return r.processBatch(ctx, cmd, exports, opts)
}

func (r *Runner) processOne(ctx context.Context, cmd *cli.Command, csvPath string, opts tasks.ProcessOpts) error {
	progressCh := make(chan tasks.ProgressUpdate, 50)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ParseSource:
				r.writePlain("📄 %s\n", update.Message)
			case tasks.DownloadTracks:
				r.writePlain("⬇  %s\n", update.Message)
			case tasks.ScanFiles:
				r.writePlain("🔍 %s\n", update.Message)
			case tasks.ClassifyTracks:
				r.writePlain("🔗 %s\n", update.Message)
			case tasks.EmitPlaylist:
				r.writePlain("📝 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Process(ctx, progressCh, csvPath, opts)
	close(progressCh)
	<-drained

	if err != nil {
		return err
	}

	if format := cmd.String("report"); format != "" {
		base := strings.TrimSuffix(result.OutputPath, filepath.Ext(result.OutputPath))
		path, err := formatter.WriteReport(result.Playlist, result.Results, format, base)
		if err != nil {
			return err
		}
		r.logger.Info("report written", "path", path)
	}

	if cmd.Bool("json") {
		return r.writeJSON(runSummary(result), true)
	}

	r.writePlain("\n")
	r.writePlainHeader("Playlist Written")
	r.writePlain("Output: %s\n\n", result.OutputPath)
	if err := report.Render(r.output, result.Playlist, result.Results); err != nil {
		return err
	}
	if result.Skipped > 0 {
		r.writePlain("Skipped %d export rows without a track name\n", result.Skipped)
	}
	if result.RunID != "" {
		r.writePlain("Recorded run: %s\n", result.RunID)
	}

	return nil
}

func (r *Runner) processBatch(ctx context.Context, cmd *cli.Command, exports []string, opts tasks.ProcessOpts) error {
	batchOpts := tasks.BatchOpts{
		ProcessOpts: opts,
		NumWorkers:  cmd.Int("workers"),
		RateLimit:   cmd.Float("rate"),
	}
	if batchOpts.RateLimit == 0 {
		batchOpts.RateLimit = r.config.Downloader.RateLimit
	}

	result, err := r.engine.ProcessBatch(ctx, nil, exports, batchOpts)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		summaries := make([]any, 0, len(result.Results))
		for _, res := range result.Results {
			if res.Error != nil {
				summaries = append(summaries, map[string]any{
					"source": res.SourcePath,
					"error":  res.Error.Error(),
				})
				continue
			}
			summaries = append(summaries, runSummary(res.Run))
		}
		return r.writeJSON(map[string]any{
			"total":     result.TotalPlaylists,
			"succeeded": result.Succeeded,
			"failed":    result.Failed,
			"runs":      summaries,
		}, true)
	}

	r.writePlainHeader("Batch Complete")
	r.writePlain("Processed: %d playlists (%d succeeded, %d failed)\n\n", result.TotalPlaylists, result.Succeeded, result.Failed)

	for _, res := range result.Results {
		if res.Error != nil {
			r.writePlain("✗ %s: %v\n", res.SourcePath, res.Error)
			continue
		}
		if err := report.Render(r.output, res.Run.Playlist, res.Run.Results); err != nil {
			return err
		}
	}

	return nil
}

// runSummary shapes a RunResult for JSON output.
func runSummary(result *tasks.RunResult) map[string]any {
	return map[string]any{
		"playlist":  result.Playlist,
		"source":    result.SourcePath,
		"output":    result.OutputPath,
		"run_id":    result.RunID,
		"matched":   result.Summary.Matched,
		"corrected": result.Summary.Corrected,
		"missing":   result.Summary.Missing,
		"total":     result.Summary.Total,
		"skipped":   result.Skipped,
	}
}
