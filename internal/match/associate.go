package match

import (
	"path/filepath"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/desertthunder/spotypod/internal/models"
)

// Options controls file-to-track association.
type Options struct {
	// SimilarityThreshold enables a Jaro-Winkler fallback for tracks the
	// filename/tag convention could not place. Zero disables the fallback;
	// a convention miss then stays unassociated.
	SimilarityThreshold float64
}

// Associate pairs each expected track with the downloaded file believed to
// correspond to it, in source order. Each file is consumed at most once.
//
// The primary strategy reproduces the download tool's convention: the
// expected title and artist appear as substrings of the file's tags, or
// both appear in the filename stem. When that fails and a similarity
// threshold is configured, the closest file by Jaro-Winkler distance over
// normalized "artist title" strings is accepted at or above the threshold.
func Associate(expected []models.ExpectedTrack, files []models.DownloadedFile, opts Options) []models.Pairing {
	pairings := make([]models.Pairing, len(expected))
	claimed := make([]bool, len(files))

	for i, track := range expected {
		pairings[i] = models.Pairing{Expected: track}

		for j := range files {
			if claimed[j] {
				continue
			}
			if conventionMatch(track, files[j]) {
				pairings[i].File = &files[j]
				claimed[j] = true
				break
			}
		}
	}

	if opts.SimilarityThreshold <= 0 {
		return pairings
	}

	jw := metrics.NewJaroWinkler()
	for i := range pairings {
		if pairings[i].File != nil {
			continue
		}

		query := Normalize(pairings[i].Expected.Artist + " " + pairings[i].Expected.Title)
		bestScore := 0.0
		bestIdx := -1

		for j := range files {
			if claimed[j] {
				continue
			}
			score := strutil.Similarity(query, candidateKey(files[j]), jw)
			if score > bestScore && score >= opts.SimilarityThreshold {
				bestScore = score
				bestIdx = j
			}
		}

		if bestIdx >= 0 {
			pairings[i].File = &files[bestIdx]
			claimed[bestIdx] = true
		}
	}

	return pairings
}

// conventionMatch applies the substring convention: expected and file tag
// contain one another (both title and artist), or the filename stem carries
// the expected title and artist.
func conventionMatch(track models.ExpectedTrack, file models.DownloadedFile) bool {
	titleMatch := containsEither(track.Title, file.Title)
	artistMatch := containsEither(track.Artist, file.Artist)
	if titleMatch && artistMatch {
		return true
	}

	stem := Normalize(strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path)))
	if !strings.Contains(stem, Normalize(track.Title)) {
		return false
	}
	return track.Artist == "" || strings.Contains(stem, Normalize(track.Artist))
}

// containsEither reports whether either normalized string contains the
// other. Empty values never match; an untagged file must be placed by
// filename or similarity instead.
func containsEither(expected, actual string) bool {
	e, a := Normalize(expected), Normalize(actual)
	if e == "" || a == "" {
		return false
	}
	return strings.Contains(e, a) || strings.Contains(a, e)
}

// candidateKey builds the comparison string for a file: its tags when
// present, its filename stem otherwise.
func candidateKey(file models.DownloadedFile) string {
	if file.Title != "" || file.Artist != "" {
		return Normalize(strings.TrimSpace(file.Artist + " " + file.Title))
	}
	return Normalize(strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path)))
}
