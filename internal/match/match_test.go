package match

import (
	"reflect"
	"testing"

	"github.com/desertthunder/spotypod/internal/models"
)

func TestNormalize(t *testing.T) {
	tc := []struct {
		in   string
		want string
	}{
		{"  Bohemian Rhapsody  ", "bohemian rhapsody"},
		{"QUEEN", "queen"},
		{"", ""},
		{"\tImagine\n", "imagine"},
	}

	for _, tt := range tc {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	expected := models.ExpectedTrack{Title: "Bohemian Rhapsody", Artist: "Queen", Position: 0}

	tests := []struct {
		name       string
		pairing    models.Pairing
		wantStatus models.MatchStatus
		wantTitle  string
		wantArtist string
	}{
		{
			name:       "no file is missing",
			pairing:    models.Pairing{Expected: models.ExpectedTrack{Title: "Imagine", Artist: "John Lennon"}},
			wantStatus: models.StatusMissing,
			wantTitle:  "",
			wantArtist: "",
		},
		{
			name: "exact tags match",
			pairing: models.Pairing{
				Expected: expected,
				File:     &models.DownloadedFile{Path: "a.mp3", Title: "Bohemian Rhapsody", Artist: "Queen"},
			},
			wantStatus: models.StatusMatched,
			wantTitle:  "Bohemian Rhapsody",
			wantArtist: "Queen",
		},
		{
			name: "case and whitespace differences still match",
			pairing: models.Pairing{
				Expected: expected,
				File:     &models.DownloadedFile{Path: "a.mp3", Title: "  bohemian rhapsody ", Artist: "QUEEN"},
			},
			wantStatus: models.StatusMatched,
			wantTitle:  "  bohemian rhapsody ",
			wantArtist: "QUEEN",
		},
		{
			name: "absent tags count as matching with expected values",
			pairing: models.Pairing{
				Expected: expected,
				File:     &models.DownloadedFile{Path: "a.mp3"},
			},
			wantStatus: models.StatusMatched,
			wantTitle:  "Bohemian Rhapsody",
			wantArtist: "Queen",
		},
		{
			// a remaster suffix in the file tag wins
			name: "differing title is corrected with file metadata",
			pairing: models.Pairing{
				Expected: expected,
				File:     &models.DownloadedFile{Path: "a.mp3", Title: "Bohemian Rhapsody (Remastered 2011)", Artist: "Queen"},
			},
			wantStatus: models.StatusCorrected,
			wantTitle:  "Bohemian Rhapsody (Remastered 2011)",
			wantArtist: "Queen",
		},
		{
			name: "differing artist is corrected",
			pairing: models.Pairing{
				Expected: expected,
				File:     &models.DownloadedFile{Path: "a.mp3", Title: "Bohemian Rhapsody", Artist: "Queen & David Bowie"},
			},
			wantStatus: models.StatusCorrected,
			wantTitle:  "Bohemian Rhapsody",
			wantArtist: "Queen & David Bowie",
		},
		{
			name: "corrected title with absent artist falls back to expected artist",
			pairing: models.Pairing{
				Expected: expected,
				File:     &models.DownloadedFile{Path: "a.mp3", Title: "Bohemian Rhapsody (Live)"},
			},
			wantStatus: models.StatusCorrected,
			wantTitle:  "Bohemian Rhapsody (Live)",
			wantArtist: "Queen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.pairing)

			if result.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", result.Status, tt.wantStatus)
			}
			if result.EffectiveTitle != tt.wantTitle {
				t.Errorf("effective title = %q, want %q", result.EffectiveTitle, tt.wantTitle)
			}
			if result.EffectiveArtist != tt.wantArtist {
				t.Errorf("effective artist = %q, want %q", result.EffectiveArtist, tt.wantArtist)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	pairing := models.Pairing{
		Expected: models.ExpectedTrack{Title: "Karma Police", Artist: "Radiohead", Position: 2},
		File:     &models.DownloadedFile{Path: "k.mp3", Title: "Karma Police (Remastered)", Artist: "Radiohead"},
	}

	first := Classify(pairing)
	for i := 0; i < 5; i++ {
		if got := Classify(pairing); !reflect.DeepEqual(got, first) {
			t.Fatalf("classification not idempotent: %+v != %+v", got, first)
		}
	}
}

func TestReconcile(t *testing.T) {
	expected := []models.ExpectedTrack{
		{Title: "One", Artist: "A", Position: 0},
		{Title: "Two", Artist: "B", Position: 1},
		{Title: "Three", Artist: "C", Position: 2},
	}

	pairings := []models.Pairing{
		{Expected: expected[0], File: &models.DownloadedFile{Path: "1.mp3", Title: "One", Artist: "A"}},
		{Expected: expected[1]},
		{Expected: expected[2], File: &models.DownloadedFile{Path: "3.mp3", Title: "Three (Live)", Artist: "C"}},
	}

	results := Reconcile(pairings)

	if len(results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(results))
	}

	for i, r := range results {
		if r.Expected.Position != i {
			t.Errorf("result %d out of source order (position %d)", i, r.Expected.Position)
		}
	}

	if results[0].Status != models.StatusMatched {
		t.Errorf("expected first result matched, got %v", results[0].Status)
	}
	if results[1].Status != models.StatusMissing {
		t.Errorf("expected second result missing, got %v", results[1].Status)
	}
	if results[2].Status != models.StatusCorrected {
		t.Errorf("expected third result corrected, got %v", results[2].Status)
	}
}
