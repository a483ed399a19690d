package match

import (
	"strings"

	"github.com/desertthunder/spotypod/internal/models"
)

// Normalize prepares a tag value for comparison: leading/trailing whitespace
// is stripped and case is folded. No fuzzy distance is applied; anything
// short of normalized equality is a mismatch.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// fieldMatches reports whether a file tag value agrees with the expected
// value. An absent tag cannot disagree: the expected value is authoritative.
func fieldMatches(expected, actual string) bool {
	if actual == "" {
		return true
	}
	return Normalize(expected) == Normalize(actual)
}

// effective picks the value carried into the emitted playlist: the file's
// tag when present, the expected value otherwise.
func effective(expected, actual string) string {
	if actual != "" {
		return actual
	}
	return expected
}

// Classify turns one pairing into a MatchResult. Pure and deterministic:
// the same pairing always yields the same result.
func Classify(p models.Pairing) models.MatchResult {
	result := models.MatchResult{Expected: p.Expected, File: p.File}

	if p.File == nil {
		result.Status = models.StatusMissing
		return result
	}

	result.EffectiveTitle = effective(p.Expected.Title, p.File.Title)
	result.EffectiveArtist = effective(p.Expected.Artist, p.File.Artist)

	if fieldMatches(p.Expected.Title, p.File.Title) && fieldMatches(p.Expected.Artist, p.File.Artist) {
		result.Status = models.StatusMatched
	} else {
		result.Status = models.StatusCorrected
	}

	return result
}

// Reconcile classifies every pairing, preserving source order. The output
// always has exactly one entry per pairing.
func Reconcile(pairings []models.Pairing) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(pairings))
	for _, p := range pairings {
		results = append(results, Classify(p))
	}
	return results
}
