package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/spotypod/internal/models"
)

var (
	_ list.Item = exportItem{}
	_ list.Item = trackItem{}
)

// exportItem wraps a playlist export file to implement [list.Item].
type exportItem struct {
	name   string // playlist name (file stem)
	path   string // absolute path to the CSV
	tracks int    // expected track count, -1 when the export could not be parsed
}

func (i exportItem) FilterValue() string { return i.name }
func (i exportItem) Title() string       { return i.name }
func (i exportItem) Description() string {
	if i.tracks < 0 {
		return fmt.Sprintf("%s • unreadable", i.path)
	}
	return fmt.Sprintf("%d tracks • %s", i.tracks, i.path)
}

// trackItem wraps [models.ExpectedTrack] to implement [list.Item].
type trackItem struct {
	track models.ExpectedTrack
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string {
	desc := i.track.Artist
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	return desc
}
