package tags

import (
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/desertthunder/spotypod/internal/models"
)

// Reader extracts embedded metadata from an audio file.
type Reader interface {
	// ReadFile returns a DownloadedFile for the given path. Tag fields are
	// empty when the file has no readable metadata; this is never an error.
	ReadFile(path string) models.DownloadedFile
}

// ID3Reader reads ID3v2 frames from MP3 files.
type ID3Reader struct{}

// NewID3Reader creates a Reader backed by ID3v2 tag parsing.
func NewID3Reader() *ID3Reader {
	return &ID3Reader{}
}

// ReadFile extracts the title, artist, and album frames from the file at
// path. Files without an ID3 header, or files that cannot be opened at all,
// yield a DownloadedFile with empty tag fields.
func (r *ID3Reader) ReadFile(path string) models.DownloadedFile {
	file := models.DownloadedFile{Path: path}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return file
	}
	defer tag.Close()

	file.Title = strings.TrimSpace(tag.Title())
	file.Artist = strings.TrimSpace(tag.Artist())
	file.Album = strings.TrimSpace(tag.Album())

	return file
}

// ReadAll reads metadata for every path, preserving input order.
func ReadAll(r Reader, paths []string) []models.DownloadedFile {
	files := make([]models.DownloadedFile, 0, len(paths))
	for _, path := range paths {
		files = append(files, r.ReadFile(path))
	}
	return files
}
