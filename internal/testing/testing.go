// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/spotypod/internal/models"
)

// MockDownloader is a test double for [download.Service] that creates the
// configured file names in the target directory instead of downloading.
type MockDownloader struct {
	Files    []string
	FetchErr error
	Calls    int
	LastDir  string
}

func (m *MockDownloader) Name() string { return "mock" }

func (m *MockDownloader) Fetch(ctx context.Context, dir string, tracks []models.ExpectedTrack) error {
	m.Calls++
	m.LastDir = dir
	if m.FetchErr != nil {
		return m.FetchErr
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, name := range m.Files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("audio"), 0644); err != nil {
			return err
		}
	}
	return nil
}

// StubTagReader is a test double for [tags.Reader] returning canned tags
// keyed by file base name.
type StubTagReader struct {
	Files map[string]models.DownloadedFile
}

func (r *StubTagReader) ReadFile(path string) models.DownloadedFile {
	file := r.Files[filepath.Base(path)]
	file.Path = path
	return file
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
