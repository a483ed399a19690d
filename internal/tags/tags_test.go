package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/desertthunder/spotypod/internal/models"
)

// writeTaggedFile creates an MP3-shaped file with an ID3v2 tag followed by
// dummy audio bytes.
func writeTaggedFile(t *testing.T, path, title, artist, album string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	tag := id3v2.NewEmptyTag()
	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}
	if album != "" {
		tag.SetAlbum(album)
	}

	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("failed to write tag: %v", err)
	}
	if _, err := f.Write([]byte("not really audio")); err != nil {
		t.Fatalf("failed to write audio bytes: %v", err)
	}
}

func TestID3ReaderReadFile(t *testing.T) {
	reader := NewID3Reader()

	t.Run("reads title artist album", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "song.mp3")
		writeTaggedFile(t, path, "Bohemian Rhapsody", "Queen", "A Night at the Opera")

		file := reader.ReadFile(path)

		if file.Path != path {
			t.Errorf("expected path %s, got %s", path, file.Path)
		}
		if file.Title != "Bohemian Rhapsody" {
			t.Errorf("expected title Bohemian Rhapsody, got %q", file.Title)
		}
		if file.Artist != "Queen" {
			t.Errorf("expected artist Queen, got %q", file.Artist)
		}
		if file.Album != "A Night at the Opera" {
			t.Errorf("expected album, got %q", file.Album)
		}
	})

	t.Run("partial tags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "partial.mp3")
		writeTaggedFile(t, path, "Imagine", "", "")

		file := reader.ReadFile(path)
		if file.Title != "Imagine" {
			t.Errorf("expected title Imagine, got %q", file.Title)
		}
		if file.Artist != "" {
			t.Errorf("expected empty artist, got %q", file.Artist)
		}
	})

	t.Run("untagged file yields empty fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "raw.mp3")
		if err := os.WriteFile(path, []byte("no id3 header here"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		file := reader.ReadFile(path)
		if file.Title != "" || file.Artist != "" || file.Album != "" {
			t.Errorf("expected all tag fields empty, got %+v", file)
		}
		if file.Path != path {
			t.Errorf("path should be preserved, got %s", file.Path)
		}
	})

	t.Run("missing file yields empty fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gone.mp3")
		file := reader.ReadFile(path)
		if file.Title != "" || file.Artist != "" || file.Album != "" {
			t.Errorf("expected all tag fields empty, got %+v", file)
		}
	})
}

type stubReader struct {
	files map[string]models.DownloadedFile
}

func (s *stubReader) ReadFile(path string) models.DownloadedFile {
	if f, ok := s.files[path]; ok {
		return f
	}
	return models.DownloadedFile{Path: path}
}

func TestReadAll(t *testing.T) {
	reader := &stubReader{files: map[string]models.DownloadedFile{
		"a.mp3": {Path: "a.mp3", Title: "A"},
		"b.mp3": {Path: "b.mp3", Title: "B"},
	}}

	files := ReadAll(reader, []string{"b.mp3", "a.mp3", "c.mp3"})

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	if files[0].Title != "B" || files[1].Title != "A" {
		t.Error("ReadAll should preserve input order")
	}
	if files[2].Title != "" {
		t.Errorf("unknown path should yield empty tags, got %q", files[2].Title)
	}
}
