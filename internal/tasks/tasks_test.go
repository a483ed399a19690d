package tasks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/desertthunder/spotypod/internal/match"
	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/shared"
)

type mockDownloader struct {
	mu         sync.Mutex
	files      []string // File names to create in the target directory
	fetchErr   error
	fetchCalls int
	lastDir    string
}

func (m *mockDownloader) Name() string {
	return "mockdl"
}

func (m *mockDownloader) Fetch(ctx context.Context, dir string, tracks []models.ExpectedTrack) error {
	m.mu.Lock()
	m.fetchCalls++
	m.lastDir = dir
	m.mu.Unlock()
	if m.fetchErr != nil {
		return m.fetchErr
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, name := range m.files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("audio"), 0644); err != nil {
			return err
		}
	}
	return nil
}

// stubReader returns canned tags keyed by file base name.
type stubReader struct {
	files map[string]models.DownloadedFile
}

func (r *stubReader) ReadFile(path string) models.DownloadedFile {
	file := r.files[filepath.Base(path)]
	file.Path = path
	return file
}

type mockRecorder struct {
	runID     string
	recordErr error
	calls     int
	playlist  string
	results   []models.MatchResult
}

func (m *mockRecorder) RecordRun(playlist, sourcePath, outputPath string, results []models.MatchResult) (string, error) {
	m.calls++
	m.playlist = playlist
	m.results = results
	if m.recordErr != nil {
		return "", m.recordErr
	}
	return m.runID, nil
}

func writeExport(t *testing.T, dir, name string, rows []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	return path
}

func defaultExportRows() []string {
	return []string{
		"Track Name,Artist Name(s),Album Name",
		"One,A,First",
		"Two,B,Second",
		"Three,C,Third",
	}
}

func defaultReader() *stubReader {
	return &stubReader{files: map[string]models.DownloadedFile{
		"A - One.mp3": {Title: "One", Artist: "A", Album: "First"},
		"B - Two.mp3": {Title: "Two (Remastered)", Artist: "B", Album: "Second"},
	}}
}

func TestPlaylistEngine_Process(t *testing.T) {
	t.Run("full pipeline", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Road Trip.csv", defaultExportRows())

		downloader := &mockDownloader{files: []string{"A - One.mp3", "B - Two.mp3"}}
		recorder := &mockRecorder{runID: "run-1"}
		engine := NewPlaylistEngine(downloader, defaultReader(), recorder, match.Options{})

		progress := make(chan ProgressUpdate, 32)
		result, err := engine.Process(context.Background(), progress, csvPath, ProcessOpts{OutputDir: dir})
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}

		if result.Playlist != "Road Trip" {
			t.Errorf("expected playlist Road Trip, got %s", result.Playlist)
		}
		want := models.Summary{Matched: 1, Corrected: 1, Missing: 1, Total: 3}
		if result.Summary != want {
			t.Errorf("summary = %+v, want %+v", result.Summary, want)
		}
		if result.RunID != "run-1" {
			t.Errorf("expected recorded run ID, got %q", result.RunID)
		}
		if downloader.fetchCalls != 1 {
			t.Errorf("expected 1 fetch call, got %d", downloader.fetchCalls)
		}
		if downloader.lastDir != filepath.Join(dir, "Road Trip") {
			t.Errorf("downloader used wrong directory: %s", downloader.lastDir)
		}
		if recorder.calls != 1 || recorder.playlist != "Road Trip" {
			t.Errorf("recorder not invoked correctly: calls=%d playlist=%s", recorder.calls, recorder.playlist)
		}

		data, err := os.ReadFile(result.OutputPath)
		if err != nil {
			t.Fatalf("failed to read playlist: %v", err)
		}
		content := string(data)
		if !strings.HasPrefix(content, "#EXTM3U\n") {
			t.Error("playlist missing #EXTM3U header")
		}
		if !strings.Contains(content, "#EXTINF:-1,B - Two (Remastered)") {
			t.Errorf("playlist should carry corrected file metadata:\n%s", content)
		}
		if strings.Contains(content, "Three") {
			t.Errorf("missing track should not appear in playlist:\n%s", content)
		}

		phases := map[Phase]bool{}
		close(progress)
		for update := range progress {
			phases[update.Phase] = true
		}
		for _, phase := range []Phase{ParseSource, DownloadTracks, ScanFiles, ClassifyTracks, EmitPlaylist} {
			if !phases[phase] {
				t.Errorf("no progress update for phase %s", phase)
			}
		}
	})

	t.Run("skip download reuses existing files", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Road Trip.csv", defaultExportRows())

		trackDir := filepath.Join(dir, "Road Trip")
		if err := os.MkdirAll(trackDir, 0755); err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{"A - One.mp3", "B - Two.mp3"} {
			if err := os.WriteFile(filepath.Join(trackDir, name), []byte("audio"), 0644); err != nil {
				t.Fatal(err)
			}
		}

		engine := NewPlaylistEngine(nil, defaultReader(), nil, match.Options{})
		result, err := engine.Process(context.Background(), nil, csvPath, ProcessOpts{OutputDir: dir, SkipDownload: true})
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		if result.Summary.Matched != 1 || result.Summary.Corrected != 1 {
			t.Errorf("unexpected summary: %+v", result.Summary)
		}
		if result.RunID != "" {
			t.Errorf("run ID should be empty without a recorder, got %q", result.RunID)
		}
	})

	t.Run("all rows skipped yields a header-only playlist", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Empty.csv", []string{
			"Track Name,Artist Name(s),Album Name",
			",Queen,A Night at the Opera",
			"   ,Radiohead,OK Computer",
		})

		downloader := &mockDownloader{}
		engine := NewPlaylistEngine(downloader, defaultReader(), nil, match.Options{})

		result, err := engine.Process(context.Background(), nil, csvPath, ProcessOpts{OutputDir: dir})
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}

		want := models.Summary{}
		if result.Summary != want {
			t.Errorf("summary = %+v, want all-zero counts", result.Summary)
		}
		if result.Skipped != 2 {
			t.Errorf("expected 2 skipped rows, got %d", result.Skipped)
		}
		if downloader.fetchCalls != 0 {
			t.Errorf("downloader should not run without tracks, got %d calls", downloader.fetchCalls)
		}

		data, err := os.ReadFile(result.OutputPath)
		if err != nil {
			t.Fatalf("failed to read playlist: %v", err)
		}
		if strings.TrimSpace(string(data)) != "#EXTM3U" {
			t.Errorf("expected header-only playlist, got:\n%s", data)
		}
	})

	t.Run("malformed export", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Bad.csv", []string{"Album Name", "First"})

		engine := NewPlaylistEngine(&mockDownloader{}, defaultReader(), nil, match.Options{})
		_, err := engine.Process(context.Background(), nil, csvPath, ProcessOpts{OutputDir: dir})
		if !errors.Is(err, shared.ErrMalformedInput) {
			t.Errorf("expected ErrMalformedInput, got %v", err)
		}
	})

	t.Run("no downloader", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Road Trip.csv", defaultExportRows())

		engine := NewPlaylistEngine(nil, defaultReader(), nil, match.Options{})
		_, err := engine.Process(context.Background(), nil, csvPath, ProcessOpts{OutputDir: dir})
		if !errors.Is(err, shared.ErrDownloaderUnavailable) {
			t.Errorf("expected ErrDownloaderUnavailable, got %v", err)
		}
	})

	t.Run("missing track directory", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Road Trip.csv", defaultExportRows())

		engine := NewPlaylistEngine(nil, defaultReader(), nil, match.Options{})
		_, err := engine.Process(context.Background(), nil, csvPath, ProcessOpts{OutputDir: dir, SkipDownload: true})
		if !errors.Is(err, shared.ErrPlaylistDirNotFound) {
			t.Errorf("expected ErrPlaylistDirNotFound, got %v", err)
		}
	})

	t.Run("download failure", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Road Trip.csv", defaultExportRows())

		downloader := &mockDownloader{fetchErr: fmt.Errorf("network down")}
		engine := NewPlaylistEngine(downloader, defaultReader(), nil, match.Options{})
		_, err := engine.Process(context.Background(), nil, csvPath, ProcessOpts{OutputDir: dir})
		if err == nil || !strings.Contains(err.Error(), "network down") {
			t.Errorf("expected download error, got %v", err)
		}
	})

	t.Run("recorder failure keeps playlist", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := writeExport(t, dir, "Road Trip.csv", defaultExportRows())

		downloader := &mockDownloader{files: []string{"A - One.mp3", "B - Two.mp3"}}
		recorder := &mockRecorder{recordErr: fmt.Errorf("database locked")}
		engine := NewPlaylistEngine(downloader, defaultReader(), recorder, match.Options{})

		result, err := engine.Process(context.Background(), nil, csvPath, ProcessOpts{OutputDir: dir})
		if err == nil {
			t.Fatal("expected error from recorder failure")
		}
		if result == nil {
			t.Fatal("result should survive a recorder failure")
		}
		if _, statErr := os.Stat(result.OutputPath); statErr != nil {
			t.Errorf("playlist should exist despite recorder failure: %v", statErr)
		}
	})
}

func TestPlaylistEngine_ProcessBatch(t *testing.T) {
	t.Run("isolates failures", func(t *testing.T) {
		dir := t.TempDir()
		good := writeExport(t, dir, "Road Trip.csv", defaultExportRows())
		bad := writeExport(t, dir, "Bad.csv", []string{"Album Name", "First"})

		downloader := &mockDownloader{files: []string{"A - One.mp3", "B - Two.mp3"}}
		engine := NewPlaylistEngine(downloader, defaultReader(), nil, match.Options{})

		result, err := engine.ProcessBatch(context.Background(), nil, []string{good, bad}, BatchOpts{
			ProcessOpts: ProcessOpts{OutputDir: dir},
			RateLimit:   100,
		})
		if err != nil {
			t.Fatalf("ProcessBatch() error = %v", err)
		}

		if result.TotalPlaylists != 2 || result.Succeeded != 1 || result.Failed != 1 {
			t.Errorf("unexpected batch counts: %+v", result)
		}
		if result.Results[0].Error != nil {
			t.Errorf("first export should succeed: %v", result.Results[0].Error)
		}
		if !errors.Is(result.Results[1].Error, shared.ErrMalformedInput) {
			t.Errorf("second export should fail parsing, got %v", result.Results[1].Error)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		engine := NewPlaylistEngine(&mockDownloader{}, defaultReader(), nil, match.Options{})
		_, err := engine.ProcessBatch(context.Background(), nil, nil, BatchOpts{})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("results keep input order", func(t *testing.T) {
		dir := t.TempDir()
		paths := make([]string, 3)
		for i := range paths {
			paths[i] = writeExport(t, dir, fmt.Sprintf("List %d.csv", i), defaultExportRows())
		}

		downloader := &mockDownloader{files: []string{"A - One.mp3"}}
		engine := NewPlaylistEngine(downloader, defaultReader(), nil, match.Options{})

		result, err := engine.ProcessBatch(context.Background(), nil, paths, BatchOpts{
			ProcessOpts: ProcessOpts{OutputDir: dir},
			NumWorkers:  3,
			RateLimit:   100,
		})
		if err != nil {
			t.Fatalf("ProcessBatch() error = %v", err)
		}
		for i, res := range result.Results {
			if res.SourcePath != paths[i] {
				t.Errorf("result %d out of order: %s", i, res.SourcePath)
			}
		}
	})
}

func TestSendProgressNeverBlocks(t *testing.T) {
	engine := NewPlaylistEngine(nil, defaultReader(), nil, match.Options{})

	engine.sendProgress(nil, parseSourceUpdate("x.csv"))

	full := make(chan ProgressUpdate, 1)
	full <- parseSourceUpdate("x.csv")
	engine.sendProgress(full, parseSourceUpdate("y.csv"))
	if len(full) != 1 {
		t.Error("full channel should drop the update")
	}
}
