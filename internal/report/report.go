package report

import (
	"fmt"
	"io"

	"github.com/desertthunder/spotypod/internal/models"
)

// Summarize aggregates match results into counts.
func Summarize(results []models.MatchResult) models.Summary {
	summary := models.Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case models.StatusMatched:
			summary.Matched++
		case models.StatusCorrected:
			summary.Corrected++
		case models.StatusMissing:
			summary.Missing++
		}
	}
	return summary
}

// Corrections filters the results down to corrected entries, preserving
// source order.
func Corrections(results []models.MatchResult) []models.MatchResult {
	var corrected []models.MatchResult
	for _, r := range results {
		if r.Status == models.StatusCorrected {
			corrected = append(corrected, r)
		}
	}
	return corrected
}

// Missing filters the results down to tracks no file was produced for.
func Missing(results []models.MatchResult) []models.MatchResult {
	var missing []models.MatchResult
	for _, r := range results {
		if r.Status == models.StatusMissing {
			missing = append(missing, r)
		}
	}
	return missing
}

// Render writes a plain-text report for one playlist: the count line, an
// audit line per corrected entry, and the tracks that never arrived.
func Render(w io.Writer, name string, results []models.MatchResult) error {
	summary := Summarize(results)

	if _, err := fmt.Fprintf(w, "%s: %d matched, %d corrected, %d missing (%d total)\n",
		name, summary.Matched, summary.Corrected, summary.Missing, summary.Total); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for _, r := range Corrections(results) {
		if _, err := fmt.Fprintf(w, "  ~ %s - %s => %s - %s\n",
			r.Expected.Artist, r.Expected.Title, r.EffectiveArtist, r.EffectiveTitle); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	for _, r := range Missing(results) {
		if _, err := fmt.Fprintf(w, "  ✗ %s (not downloaded)\n", r.Expected); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}
