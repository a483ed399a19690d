package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ParseSource Phase = iota
	DownloadTracks
	ScanFiles
	ClassifyTracks
	EmitPlaylist
)

func (p Phase) String() string {
	switch p {
	case ParseSource:
		return "parse_source"
	case DownloadTracks:
		return "download_tracks"
	case ScanFiles:
		return "scan_files"
	case ClassifyTracks:
		return "classify_tracks"
	case EmitPlaylist:
		return "emit_playlist"
	default:
		return ""
	}
}

func parseSourceUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ParseSource,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading playlist export: %s", path),
	}
}

func parsedSourceUpdate(name string, tracks, skipped int) ProgressUpdate {
	msg := fmt.Sprintf("Found playlist: %s (%d tracks)", name, tracks)
	if skipped > 0 {
		msg = fmt.Sprintf("Found playlist: %s (%d tracks, %d rows skipped)", name, tracks, skipped)
	}
	return ProgressUpdate{
		Phase:   ParseSource,
		Step:    1,
		Total:   1,
		Message: msg,
	}
}

func downloadTracksUpdate(downloader string, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DownloadTracks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Downloading %d tracks with %s...", total, downloader),
	}
}

func scanFilesUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ScanFiles,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading tags from %d files...", count),
	}
}

func classifyTracksUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ClassifyTracks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Matching %d tracks against downloaded files...", total),
	}
}

func emitPlaylistUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EmitPlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing playlist: %s", path),
	}
}

func batchItemUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ParseSource,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Processing: %s...", step, total, name),
	}
}

func batchCompletedUpdate(step, total int, name string, result *RunResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EmitPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d matched, %d missing)", step, total, name, result.Summary.Matched+result.Summary.Corrected, result.Summary.Missing),
		Data:    result,
	}
}

func batchFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EmitPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}
