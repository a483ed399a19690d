package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input errors
	ErrMalformedInput      = fmt.Errorf("malformed playlist export")
	ErrPlaylistDirNotFound = fmt.Errorf("playlist directory not found")

	// Output errors
	ErrWriteFailed = fmt.Errorf("failed to write playlist")

	// Downloader errors
	ErrDownloaderUnavailable = fmt.Errorf("downloader not available")

	// Persistence errors
	ErrRunNotFound = fmt.Errorf("run not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
