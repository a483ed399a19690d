package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/shared"
)

// canonical header mapping
var headerAliases = map[string]string{
	"track name": "title",
	"track_name": "title",
	"track":      "title",
	"title":      "title",
	"name":       "title",

	"artist name(s)": "artist",
	"artist_name":    "artist",
	"artist":         "artist",
	"performer":      "artist",

	"album name": "album",
	"album_name": "album",
	"album":      "album",
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Result holds the parsed track sequence plus row accounting for reporting.
type Result struct {
	Tracks  []models.ExpectedTrack
	Skipped int // rows without a title
}

// ParsePlaylist reads the playlist export at path and returns the playlist
// name (the file stem) alongside the parse result. A missing file or an
// export without a recognizable title column wraps shared.ErrMalformedInput.
func ParsePlaylist(path string) (string, *Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: cannot open %s: %v", shared.ErrMalformedInput, path, err)
	}
	defer f.Close()

	result, err := Parse(f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", shared.ErrMalformedInput, path, err)
	}

	return shared.PlaylistName(path), result, nil
}

// Parse reads CSV rows from r into ExpectedTrack records, preserving source
// order. Positions are assigned after skipping, so the sequence is dense.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rawHeaders, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columnMap := make(map[int]string)
	for i, h := range rawHeaders {
		if canonical, ok := headerAliases[normalizeHeader(h)]; ok {
			// First alias wins when an export repeats a column
			if !hasColumn(columnMap, canonical) {
				columnMap[i] = canonical
			}
		}
	}

	if !hasColumn(columnMap, "title") {
		return nil, fmt.Errorf("no title column found in header %v", rawHeaders)
	}

	result := &Result{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		var title, artist, album string
		for i, v := range record {
			field, ok := columnMap[i]
			if !ok {
				continue
			}

			val := strings.TrimSpace(v)
			switch field {
			case "title":
				title = val
			case "artist":
				artist = val
			case "album":
				album = val
			}
		}

		if title == "" {
			result.Skipped++
			continue
		}

		result.Tracks = append(result.Tracks, models.ExpectedTrack{
			Title:    title,
			Artist:   artist,
			Album:    album,
			Position: len(result.Tracks),
		})
	}

	return result, nil
}

func hasColumn(columnMap map[int]string, canonical string) bool {
	for _, c := range columnMap {
		if c == canonical {
			return true
		}
	}
	return false
}
