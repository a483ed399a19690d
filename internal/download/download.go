package download

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/desertthunder/spotypod/internal/models"
	"github.com/desertthunder/spotypod/internal/shared"
)

// Service defines the contract with the external downloading collaborator:
// drop files believed to correspond to the requested tracks into dir.
type Service interface {
	// Name identifies the download tool for logs and reports.
	Name() string

	// Fetch asks the tool to download the given tracks into dir. A tool
	// that cannot run at all returns an error wrapping
	// shared.ErrDownloaderUnavailable; partial downloads are not errors.
	Fetch(ctx context.Context, dir string, tracks []models.ExpectedTrack) error
}

// queriesFile is the temporary search-query list handed to the tool.
const queriesFile = "queries.txt"

// SpotdlService invokes the spotdl CLI.
type SpotdlService struct {
	command string
	format  string
}

// SpotdlOpts configures the spotdl invocation.
type SpotdlOpts struct {
	Command string // binary name or path, defaults to "spotdl"
	Format  string // audio format flag, defaults to "mp3"
}

// NewSpotdlService creates a Service that shells out to spotdl.
func NewSpotdlService(opts SpotdlOpts) *SpotdlService {
	if opts.Command == "" {
		opts.Command = "spotdl"
	}
	if opts.Format == "" {
		opts.Format = "mp3"
	}
	return &SpotdlService{command: opts.Command, format: opts.Format}
}

func (s *SpotdlService) Name() string { return s.command }

// Fetch writes an "Artist - Title" query per track to a temporary file in
// dir and runs `<command> download <file> --output <dir> --format <fmt>`.
// The query file is removed afterwards regardless of outcome.
func (s *SpotdlService) Fetch(ctx context.Context, dir string, tracks []models.ExpectedTrack) error {
	if len(tracks) == 0 {
		return nil
	}

	if _, err := exec.LookPath(s.command); err != nil {
		return fmt.Errorf("%w: %s not found in PATH", shared.ErrDownloaderUnavailable, s.command)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	queriesPath := filepath.Join(dir, queriesFile)

	var queries strings.Builder
	for _, track := range tracks {
		queries.WriteString(track.String())
		queries.WriteString("\n")
	}

	if err := os.WriteFile(queriesPath, []byte(queries.String()), 0644); err != nil {
		return fmt.Errorf("failed to write queries file: %w", err)
	}
	defer os.Remove(queriesPath)

	cmd := exec.CommandContext(ctx, s.command, "download", queriesPath, "--output", dir, "--format", s.format)
	output, err := cmd.CombinedOutput()
	if err != nil {
		// spotdl exits zero even when individual tracks fail, so a
		// non-zero exit means the tool itself could not run.
		return fmt.Errorf("%s exited with error: %w\n%s", s.command, err, output)
	}

	return nil
}

// Discover lists the audio files present in a playlist's download
// directory, sorted by name. A directory that does not exist wraps
// shared.ErrPlaylistDirNotFound.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistDirNotFound, dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.mp3"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}
