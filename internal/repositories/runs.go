package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/shared"
)

// RunRepository implements models.Repository[*models.Run] for run history.
//
// Runs are soft-deleted and carry sequence numbers for stable, human-readable
// ordering independent of UUIDs.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new [models.Run] into the database with generated ID and sequence
func (r *RunRepository) Create(run *models.Run) error {
	sequence, err := NextSequence(r.db, "runs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	run.SetID(id)
	run.SetSequence(sequence)

	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	summary := run.Summary()
	query := `
		INSERT INTO runs (id, sequence, playlist, source_path, output_path, matched, corrected, missing, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		run.Playlist(),
		run.SourcePath(),
		run.OutputPath(),
		summary.Matched,
		summary.Corrected,
		summary.Missing,
		summary.Total,
		run.CreatedAt(),
		run.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// Get retrieves a run by ID, excluding soft-deleted runs
func (r *RunRepository) Get(id string) (*models.Run, error) {
	query := `
		SELECT id, sequence, playlist, source_path, output_path, matched, corrected, missing, total, created_at, updated_at, deleted_at
		FROM runs
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing run in the database
func (r *RunRepository) Update(run *models.Run) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	run.SetUpdatedAt(now)

	summary := run.Summary()
	query := `
		UPDATE runs
		SET output_path = ?, matched = ?, corrected = ?, missing = ?, total = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		run.OutputPath(),
		summary.Matched,
		summary.Corrected,
		summary.Missing,
		summary.Total,
		now,
		run.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrRunNotFound, run.ID())
	}

	return nil
}

// Delete soft-deletes a run by setting deleted_at
func (r *RunRepository) Delete(id string) error {
	query := `UPDATE runs SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrRunNotFound, id)
	}

	return nil
}

// List retrieves runs matching the given criteria, newest first.
// Supported criteria: "playlist" (string), "limit" (int).
func (r *RunRepository) List(criteria map[string]any) ([]*models.Run, error) {
	query := `
		SELECT id, sequence, playlist, source_path, output_path, matched, corrected, missing, total, created_at, updated_at, deleted_at
		FROM runs
		WHERE deleted_at IS NULL
	`
	args := []any{}

	if playlist, ok := criteria["playlist"].(string); ok && playlist != "" {
		query += " AND playlist = ?"
		args = append(args, playlist)
	}

	query += " ORDER BY created_at DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *RunRepository) scanOne(row *sql.Row) (*models.Run, error) {
	run, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, shared.ErrRunNotFound
	}
	return run, err
}

func (r *RunRepository) scanRow(row scannable) (*models.Run, error) {
	var (
		id, playlistName, sourcePath, outputPath string
		sequence                                 int
		summary                                  models.Summary
		createdAt, updatedAt                     time.Time
		deletedAt                                sql.NullTime
	)

	err := row.Scan(&id, &sequence, &playlistName, &sourcePath, &outputPath,
		&summary.Matched, &summary.Corrected, &summary.Missing, &summary.Total,
		&createdAt, &updatedAt, &deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	run := models.NewRun(playlistName, sourcePath, outputPath, summary)
	run.SetID(id)
	run.SetSequence(sequence)
	run.SetCreatedAt(createdAt)
	run.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		t := deletedAt.Time
		run.SetDeletedAt(&t)
	}

	return run, nil
}
