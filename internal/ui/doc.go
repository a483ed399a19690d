// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for playlist reconciliation:
//  1. [ExportListView] : Browse playlist exports found in the source directory
//  2. [TrackPreviewView] : Preview expected tracks before downloading
//  3. [ConfirmView] : Confirm the download and build operation
//  4. [ProcessingView] : Monitor real-time pipeline progress
//  5. [ResultView] : Display match counts, corrections, and missing tracks
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the PlaylistEngine, providing non-blocking status reporting during processing.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
