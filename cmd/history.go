package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/repositories"
	"github.com/desertthunder/spotypod/internal/shared"
	"github.com/urfave/cli/v3"
)

// HistoryList lists recorded processing runs, newest first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		return fmt.Errorf("%w: run database not initialized, run `spotypod setup database` first", shared.ErrMissingConfig)
	}

	criteria := map[string]any{}
	if playlist := cmd.String("playlist"); playlist != "" {
		criteria["playlist"] = playlist
	}
	if limit := cmd.Int("limit"); limit > 0 {
		criteria["limit"] = limit
	}

	runs, err := repositories.NewRunRepository(r.db).List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if cmd.Bool("json") {
		summaries := make([]map[string]any, len(runs))
		for i, run := range runs {
			summaries[i] = runRow(run)
		}
		return r.writeJSON(summaries, true)
	}

	if len(runs) == 0 {
		r.writePlain("No recorded runs\n")
		return nil
	}

	r.writePlainHeader("Processing Runs")
	for _, run := range runs {
		summary := run.Summary()
		r.writePlain("%s  %s\n", run.CreatedAt().Format("2006-01-02 15:04"), run.Playlist())
		r.writePlain("  id: %s\n", run.ID())
		r.writePlain("  %d matched, %d corrected, %d missing (%d total)\n", summary.Matched, summary.Corrected, summary.Missing, summary.Total)
		r.writePlain("  output: %s\n\n", run.OutputPath())
	}

	return nil
}

// HistoryShow displays a single run with its metadata corrections.
func (r *Runner) HistoryShow(ctx context.Context, cmd *cli.Command) error {
	if r.db == nil {
		return fmt.Errorf("%w: run database not initialized, run `spotypod setup database` first", shared.ErrMissingConfig)
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: run id is required", shared.ErrMissingArgument)
	}

	run, err := repositories.NewRunRepository(r.db).Get(id)
	if err != nil {
		return err
	}

	corrections, err := repositories.NewCorrectionRepository(r.db).ListByRun(id)
	if err != nil {
		return fmt.Errorf("failed to list corrections: %w", err)
	}

	if cmd.Bool("json") {
		row := runRow(run)
		row["corrections"] = corrections
		return r.writeJSON(row, true)
	}

	summary := run.Summary()
	r.writePlainHeader(run.Playlist())
	r.writePlain("id: %s\n", run.ID())
	r.writePlain("source: %s\n", run.SourcePath())
	r.writePlain("output: %s\n", run.OutputPath())
	r.writePlain("created: %s\n", run.CreatedAt().Format("2006-01-02 15:04:05"))
	r.writePlain("%d matched, %d corrected, %d missing (%d total)\n", summary.Matched, summary.Corrected, summary.Missing, summary.Total)

	if len(corrections) > 0 {
		r.writePlainln("Corrections:")
		for _, c := range corrections {
			r.writePlain("  ~ %s - %s => %s - %s\n", c.ExpectedArtist, c.ExpectedTitle, c.EffectiveArtist, c.EffectiveTitle)
		}
	}

	return nil
}

// runRow shapes a run entity for JSON output.
func runRow(run *models.Run) map[string]any {
	summary := run.Summary()
	return map[string]any{
		"id":        run.ID(),
		"playlist":  run.Playlist(),
		"source":    run.SourcePath(),
		"output":    run.OutputPath(),
		"matched":   summary.Matched,
		"corrected": summary.Corrected,
		"missing":   summary.Missing,
		"total":     summary.Total,
		"created":   run.CreatedAt(),
	}
}
