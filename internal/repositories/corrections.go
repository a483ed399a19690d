package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/shared"
)

// CorrectionRepository persists the audit trail of metadata substitutions
// made during a run.
type CorrectionRepository struct {
	db *sql.DB
}

// NewCorrectionRepository creates a new CorrectionRepository with the given database connection
func NewCorrectionRepository(db *sql.DB) *CorrectionRepository {
	return &CorrectionRepository{db: db}
}

// Create inserts a correction row with a generated ID.
func (r *CorrectionRepository) Create(c *models.Correction) error {
	if c.RunID == "" {
		return fmt.Errorf("correction run id is required")
	}

	c.ID = shared.GenerateID()

	query := `
		INSERT INTO corrections (id, run_id, position, expected_title, expected_artist, effective_title, effective_artist)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		c.ID,
		c.RunID,
		c.Position,
		c.ExpectedTitle,
		c.ExpectedArtist,
		c.EffectiveTitle,
		c.EffectiveArtist,
	)
	if err != nil {
		return fmt.Errorf("failed to insert correction: %w", err)
	}

	return nil
}

// ListByRun returns all corrections for a run ordered by source position.
func (r *CorrectionRepository) ListByRun(runID string) ([]models.Correction, error) {
	query := `
		SELECT id, run_id, position, expected_title, expected_artist, effective_title, effective_artist
		FROM corrections
		WHERE run_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	defer rows.Close()

	var corrections []models.Correction
	for rows.Next() {
		var c models.Correction
		if err := rows.Scan(&c.ID, &c.RunID, &c.Position,
			&c.ExpectedTitle, &c.ExpectedArtist,
			&c.EffectiveTitle, &c.EffectiveArtist); err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		corrections = append(corrections, c)
	}

	return corrections, rows.Err()
}
