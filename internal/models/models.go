// package models defines the data model for playlist reconciliation
package models

import (
	"fmt"
	"time"
)

// Model defines the base interface for all persistent models.
// Implementations include Run.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// ExpectedTrack is a single row from the playlist export: the metadata the
// user intended, in source order. Immutable once parsed.
type ExpectedTrack struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	Position int    `json:"position"`
}

// String renders the track the way download queries and audit output do.
func (t ExpectedTrack) String() string {
	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}

// DownloadedFile is a read-only view over an audio file discovered in a
// playlist's download directory. Tag fields are empty when the file carries
// no usable metadata.
type DownloadedFile struct {
	Path   string `json:"path"`
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	Album  string `json:"album,omitempty"`
}

// Pairing associates an expected track with the downloaded file believed to
// correspond to it. File is nil when no file was produced.
type Pairing struct {
	Expected ExpectedTrack
	File     *DownloadedFile
}

// MatchStatus classifies a single reconciled pairing.
type MatchStatus int

const (
	StatusMatched MatchStatus = iota
	StatusCorrected
	StatusMissing
)

func (s MatchStatus) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusCorrected:
		return "corrected"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its string form.
func (s MatchStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// MatchResult is the reconciliation outcome for one expected track.
// Exactly one exists per ExpectedTrack, in source order. Effective fields
// are empty for missing tracks.
type MatchResult struct {
	Expected        ExpectedTrack   `json:"expected"`
	File            *DownloadedFile `json:"file,omitempty"`
	Status          MatchStatus     `json:"status"`
	EffectiveTitle  string          `json:"effective_title,omitempty"`
	EffectiveArtist string          `json:"effective_artist,omitempty"`
}

// Summary aggregates match outcomes for user-facing reporting.
// Invariant: Matched + Corrected + Missing == Total.
type Summary struct {
	Matched   int `json:"matched"`
	Corrected int `json:"corrected"`
	Missing   int `json:"missing"`
	Total     int `json:"total"`
}
