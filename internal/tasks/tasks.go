// package tasks implements the playlist reconciliation pipeline.
//
// The core abstraction is Engine, which orchestrates parsing an exported
// playlist, downloading its tracks, reading file tags, matching files to
// expected tracks, and emitting an M3U playlist. Operations emit progress
// updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/desertthunder/spotypod/internal/download"
	"github.com/desertthunder/spotypod/internal/match"
	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/parser"
	"github.com/desertthunder/spotypod/internal/playlist"
	"github.com/desertthunder/spotypod/internal/report"
	"github.com/desertthunder/spotypod/internal/shared"
	"github.com/desertthunder/spotypod/internal/tags"
)

// RunResult contains all data from processing a single playlist export.
type RunResult struct {
	Playlist   string               // Playlist name derived from the export filename
	SourcePath string               // Path to the source CSV export
	OutputPath string               // Path to the written M3U playlist
	RunID      string               // Persisted run ID, empty when no recorder is configured
	Results    []models.MatchResult // Per-track match results in source order
	Summary    models.Summary       // Aggregate match counts
	Skipped    int                  // Export rows skipped during parsing
}

// ProcessOpts contains configuration for processing a single playlist.
type ProcessOpts struct {
	OutputDir    string // Base output directory for audio files and the playlist
	SkipDownload bool   // Reuse already-downloaded files instead of invoking the downloader
}

// Engine defines operations for converting playlist exports into local playlists.
type Engine interface {
	// Process converts a single playlist export by parsing the CSV, downloading
	// tracks, reading file tags, matching, and writing an M3U playlist.
	Process(ctx context.Context, progress chan<- ProgressUpdate, csvPath string, opts ProcessOpts) (*RunResult, error)

	// ProcessBatch converts multiple playlist exports with per-playlist failure
	// isolation so one malformed export does not abort the rest.
	ProcessBatch(ctx context.Context, progress chan<- ProgressUpdate, csvPaths []string, opts BatchOpts) (*BatchResult, error)
}

// RunRecorder persists the outcome of a processing run.
// Implemented by repositories.RunRecorderAdapter.
type RunRecorder interface {
	RecordRun(playlist, sourcePath, outputPath string, results []models.MatchResult) (string, error)
}

// PlaylistEngine implements Engine for playlist reconciliation.
// Contains dependencies on the downloader, tag reader, and run recorder.
type PlaylistEngine struct {
	downloader download.Service
	reader     tags.Reader
	recorder   RunRecorder
	matching   match.Options
}

// NewPlaylistEngine creates a new PlaylistEngine with the provided dependencies.
// The recorder may be nil, in which case runs are not persisted.
func NewPlaylistEngine(downloader download.Service, reader tags.Reader, recorder RunRecorder, matching match.Options) *PlaylistEngine {
	return &PlaylistEngine{
		downloader: downloader,
		reader:     reader,
		recorder:   recorder,
		matching:   matching,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *PlaylistEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Process converts a single playlist export into an M3U playlist.
func (e *PlaylistEngine) Process(ctx context.Context, progress chan<- ProgressUpdate, csvPath string, opts ProcessOpts) (*RunResult, error) {
	if e.reader == nil {
		return nil, fmt.Errorf("%w: tag reader not initialized", shared.ErrMissingConfig)
	}

	e.sendProgress(progress, parseSourceUpdate(csvPath))

	name, parsed, err := parser.ParsePlaylist(csvPath)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, parsedSourceUpdate(name, len(parsed.Tracks), parsed.Skipped))

	dir := filepath.Join(opts.OutputDir, name)

	// An export whose rows were all skipped has nothing to download or
	// scan but still yields a header-only playlist.
	var files []models.DownloadedFile
	if len(parsed.Tracks) > 0 {
		if !opts.SkipDownload {
			if e.downloader == nil {
				return nil, fmt.Errorf("%w: no downloader configured", shared.ErrDownloaderUnavailable)
			}

			e.sendProgress(progress, downloadTracksUpdate(e.downloader.Name(), len(parsed.Tracks)))
			if err := e.downloader.Fetch(ctx, dir, parsed.Tracks); err != nil {
				return nil, fmt.Errorf("failed to download tracks for %s: %w", name, err)
			}
		}

		paths, err := download.Discover(dir)
		if err != nil {
			return nil, err
		}

		e.sendProgress(progress, scanFilesUpdate(len(paths)))
		files = tags.ReadAll(e.reader, paths)
	}

	e.sendProgress(progress, classifyTracksUpdate(len(parsed.Tracks)))
	results := match.Reconcile(match.Associate(parsed.Tracks, files, e.matching))

	outputPath := filepath.Join(opts.OutputDir, name+".m3u")
	e.sendProgress(progress, emitPlaylistUpdate(outputPath))

	if err := playlist.WriteFile(outputPath, results); err != nil {
		return nil, err
	}

	result := &RunResult{
		Playlist:   name,
		SourcePath: csvPath,
		OutputPath: outputPath,
		Results:    results,
		Summary:    report.Summarize(results),
		Skipped:    parsed.Skipped,
	}

	if e.recorder != nil {
		runID, err := e.recorder.RecordRun(name, csvPath, outputPath, results)
		if err != nil {
			return result, fmt.Errorf("playlist written but failed to record run: %w", err)
		}
		result.RunID = runID
	}

	return result, nil
}
