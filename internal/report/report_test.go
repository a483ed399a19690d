package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/desertthunder/spotypod/internal/models"
)

func threeTrackResults() []models.MatchResult {
	return []models.MatchResult{
		{
			Expected:        models.ExpectedTrack{Title: "One", Artist: "A", Position: 0},
			File:            &models.DownloadedFile{Path: "1.mp3"},
			Status:          models.StatusMatched,
			EffectiveTitle:  "One",
			EffectiveArtist: "A",
		},
		{
			Expected:        models.ExpectedTrack{Title: "Two", Artist: "B", Position: 1},
			File:            &models.DownloadedFile{Path: "2.mp3"},
			Status:          models.StatusMatched,
			EffectiveTitle:  "Two",
			EffectiveArtist: "B",
		},
		{
			Expected:        models.ExpectedTrack{Title: "Three", Artist: "C", Position: 2},
			File:            &models.DownloadedFile{Path: "3.mp3", Title: "Three (Live)", Artist: "C"},
			Status:          models.StatusCorrected,
			EffectiveTitle:  "Three (Live)",
			EffectiveArtist: "C",
		},
	}
}

func TestSummarize(t *testing.T) {
	t.Run("two matched one corrected", func(t *testing.T) {
		summary := Summarize(threeTrackResults())

		if summary.Matched != 2 || summary.Corrected != 1 || summary.Missing != 0 || summary.Total != 3 {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("counts always add up", func(t *testing.T) {
		results := append(threeTrackResults(), models.MatchResult{
			Expected: models.ExpectedTrack{Title: "Four", Artist: "D", Position: 3},
			Status:   models.StatusMissing,
		})

		summary := Summarize(results)
		if summary.Matched+summary.Corrected+summary.Missing != summary.Total {
			t.Errorf("summary counts inconsistent: %+v", summary)
		}
		if summary.Total != len(results) {
			t.Errorf("total %d != result count %d", summary.Total, len(results))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		summary := Summarize(nil)
		if summary.Total != 0 {
			t.Errorf("expected zero total, got %d", summary.Total)
		}
	})
}

func TestCorrectionsAndMissing(t *testing.T) {
	results := append(threeTrackResults(), models.MatchResult{
		Expected: models.ExpectedTrack{Title: "Four", Artist: "D", Position: 3},
		Status:   models.StatusMissing,
	})

	corrected := Corrections(results)
	if len(corrected) != 1 || corrected[0].Expected.Title != "Three" {
		t.Errorf("unexpected corrections: %+v", corrected)
	}

	missing := Missing(results)
	if len(missing) != 1 || missing[0].Expected.Title != "Four" {
		t.Errorf("unexpected missing: %+v", missing)
	}
}

func TestRender(t *testing.T) {
	results := append(threeTrackResults(), models.MatchResult{
		Expected: models.ExpectedTrack{Title: "Imagine", Artist: "John Lennon", Position: 3},
		Status:   models.StatusMissing,
	})

	var buf bytes.Buffer
	if err := Render(&buf, "Road Trip", results); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "Road Trip: 2 matched, 1 corrected, 1 missing (4 total)") {
		t.Errorf("missing count line in output:\n%s", out)
	}
	if !strings.Contains(out, "C - Three => C - Three (Live)") {
		t.Errorf("missing correction audit line in output:\n%s", out)
	}
	if !strings.Contains(out, "John Lennon - Imagine (not downloaded)") {
		t.Errorf("missing track line absent from output:\n%s", out)
	}
}
