package ui

import (
	"github.com/desertthunder/spotypod/internal/tasks"
)

// exportsScannedMsg carries the playlist exports discovered in the source directory.
type exportsScannedMsg struct {
	items []exportItem
	err   error
}

// tracksParsedMsg carries the parsed tracks of a selected export for preview.
type tracksParsedMsg struct {
	item   exportItem
	tracks []trackItem
	err    error
}

// progressUpdateMsg wraps an engine [tasks.ProgressUpdate] for the Update loop.
type progressUpdateMsg tasks.ProgressUpdate

// processCompleteMsg signals that the pipeline finished, successfully or not.
type processCompleteMsg struct {
	result *tasks.RunResult
	err    error
}
