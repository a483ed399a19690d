package playlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/shared"
)

const header = "#EXTM3U"

// unknownDuration is the EXTINF sentinel for tracks whose play time is not
// known at emission time.
const unknownDuration = -1

// Write serializes the results as an extended M3U playlist. Entries keep
// source order; missing results are omitted. File paths are emitted as
// absolute paths so the playlist stays valid regardless of where the
// importing player runs from.
func Write(w io.Writer, results []models.MatchResult) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}

	for _, r := range results {
		if r.Status == models.StatusMissing {
			continue
		}

		absPath, err := filepath.Abs(r.File.Path)
		if err != nil {
			absPath = r.File.Path
		}

		if _, err := fmt.Fprintf(bw, "#EXTINF:%d,%s - %s\n", unknownDuration, r.EffectiveArtist, r.EffectiveTitle); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
		}
		if _, err := fmt.Fprintln(bw, absPath); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteFailed, err)
	}

	return nil
}

// WriteFile emits the playlist to path, creating parent directories as
// needed. Creation or write failures wrap shared.ErrWriteFailed.
func WriteFile(path string, results []models.MatchResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", shared.ErrWriteFailed, filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", shared.ErrWriteFailed, path, err)
	}
	defer f.Close()

	return Write(f, results)
}

// EntryCount returns the number of playlist entries the results produce:
// everything except missing tracks.
func EntryCount(results []models.MatchResult) int {
	count := 0
	for _, r := range results {
		if r.Status != models.StatusMissing {
			count++
		}
	}
	return count
}
