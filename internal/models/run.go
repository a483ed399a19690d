package models

import (
	"fmt"
	"time"
)

// Run is the persisted record of one reconciliation pipeline execution:
// which export was processed, where the playlist was written, and the
// resulting match counts.
type Run struct {
	id         string
	sequence   int
	playlist   string
	sourcePath string
	outputPath string
	summary    Summary
	createdAt  time.Time
	updatedAt  time.Time
	deletedAt  *time.Time
}

// NewRun creates a Run for a completed pipeline execution.
// The ID is assigned by the repository on Create.
func NewRun(playlist, sourcePath, outputPath string, summary Summary) *Run {
	now := time.Now()
	return &Run{
		playlist:   playlist,
		sourcePath: sourcePath,
		outputPath: outputPath,
		summary:    summary,
		createdAt:  now,
		updatedAt:  now,
	}
}

func (r *Run) ID() string            { return r.id }
func (r *Run) Sequence() int         { return r.sequence }
func (r *Run) Playlist() string      { return r.playlist }
func (r *Run) SourcePath() string    { return r.sourcePath }
func (r *Run) OutputPath() string    { return r.outputPath }
func (r *Run) Summary() Summary      { return r.summary }
func (r *Run) CreatedAt() time.Time  { return r.createdAt }
func (r *Run) UpdatedAt() time.Time  { return r.updatedAt }
func (r *Run) DeletedAt() *time.Time { return r.deletedAt }

func (r *Run) SetID(id string)            { r.id = id }
func (r *Run) SetSequence(seq int)        { r.sequence = seq }
func (r *Run) SetCreatedAt(t time.Time)   { r.createdAt = t }
func (r *Run) SetUpdatedAt(t time.Time)   { r.updatedAt = t }
func (r *Run) SetDeletedAt(t *time.Time)  { r.deletedAt = t }
func (r *Run) SetSummary(summary Summary) { r.summary = summary }
func (r *Run) SetOutputPath(path string)  { r.outputPath = path }

// Validate checks the run's data before persistence.
func (r *Run) Validate() error {
	if r.id == "" {
		return fmt.Errorf("run id is required")
	}
	if r.playlist == "" {
		return fmt.Errorf("run playlist name is required")
	}
	if r.sourcePath == "" {
		return fmt.Errorf("run source path is required")
	}
	s := r.summary
	if s.Matched+s.Corrected+s.Missing != s.Total {
		return fmt.Errorf("run summary counts are inconsistent: %d+%d+%d != %d",
			s.Matched, s.Corrected, s.Missing, s.Total)
	}
	return nil
}

// Correction is the persisted audit row for a single corrected track in a
// run: the metadata the export promised against what the file carried.
type Correction struct {
	ID              string
	RunID           string
	Position        int
	ExpectedTitle   string
	ExpectedArtist  string
	EffectiveTitle  string
	EffectiveArtist string
}

// NewCorrection builds a Correction from a corrected match result.
func NewCorrection(runID string, result MatchResult) Correction {
	return Correction{
		RunID:           runID,
		Position:        result.Expected.Position,
		ExpectedTitle:   result.Expected.Title,
		ExpectedArtist:  result.Expected.Artist,
		EffectiveTitle:  result.EffectiveTitle,
		EffectiveArtist: result.EffectiveArtist,
	}
}
