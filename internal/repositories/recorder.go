package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/report"
)

// RunRecorderAdapter implements tasks.RunRecorder over the run and
// correction repositories.
//
// Recording is best-effort history: callers are expected to log failures
// rather than abort a completed run over them.
type RunRecorderAdapter struct {
	runs        *RunRepository
	corrections *CorrectionRepository
}

// NewRunRecorderAdapter creates a RunRecorderAdapter over db.
func NewRunRecorderAdapter(db *sql.DB) *RunRecorderAdapter {
	return &RunRecorderAdapter{
		runs:        NewRunRepository(db),
		corrections: NewCorrectionRepository(db),
	}
}

// RecordRun persists a completed run and one audit row per corrected track.
// Returns the stored run ID.
func (a *RunRecorderAdapter) RecordRun(playlist, sourcePath, outputPath string, results []models.MatchResult) (string, error) {
	run := models.NewRun(playlist, sourcePath, outputPath, report.Summarize(results))

	if err := a.runs.Create(run); err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}

	for _, r := range report.Corrections(results) {
		c := models.NewCorrection(run.ID(), r)
		if err := a.corrections.Create(&c); err != nil {
			return run.ID(), fmt.Errorf("failed to record correction: %w", err)
		}
	}

	return run.ID(), nil
}
