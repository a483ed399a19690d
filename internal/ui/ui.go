package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/spotypod/internal/parser"
	"github.com/desertthunder/spotypod/internal/report"
	"github.com/desertthunder/spotypod/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ExportListView ViewState = iota
	TrackPreviewView
	ConfirmView
	ProcessingView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	engine       *tasks.PlaylistEngine
	sourceDir    string
	opts         tasks.ProcessOpts
	width        int
	height       int
	exportList   list.Model
	trackList    list.Model
	selected     exportItem
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.RunResult
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
// Exports are discovered by scanning sourceDir for CSV files.
func NewModel(ctx context.Context, engine *tasks.PlaylistEngine, sourceDir string, opts tasks.ProcessOpts) *Model {
	return &Model{
		ctx:       ctx,
		view:      ExportListView,
		engine:    engine,
		sourceDir: sourceDir,
		opts:      opts,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init initializes the TUI by scanning the source directory for exports.
func (m *Model) Init() tea.Cmd {
	return m.scanExports()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.exportList.Width() == 0 {
			m.exportList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.trackList.Width() == 0 {
			m.trackList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ExportListView:
			return m.handleExportListKeys(msg)
		case TrackPreviewView:
			return m.handleTrackPreviewKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case exportsScannedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			items[i] = item
		}
		m.exportList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.exportList.Title = "Playlist Exports"
		m.exportList.SetSize(m.width-4, m.height-8)
		return m, nil

	case tracksParsedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = ExportListView
			return m, nil
		}
		m.selected = msg.item
		items := make([]list.Item, len(msg.tracks))
		for i, track := range msg.tracks {
			items[i] = track
		}
		m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.trackList.Title = fmt.Sprintf("Tracks in '%s'", msg.item.name)
		m.trackList.SetSize(m.width-4, m.height-8)
		m.view = TrackPreviewView
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case processCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		if m.progressChan != nil {
			m.progressChan = nil
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case ExportListView:
		return m.renderExportList()
	case TrackPreviewView:
		return m.renderTrackPreview()
	case ConfirmView:
		return m.renderConfirm()
	case ProcessingView:
		return m.renderProcessing()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleExportListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.exportList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(exportItem); ok {
				return m, m.parseTracks(item)
			}
		}
	}

	var cmd tea.Cmd
	m.exportList, cmd = m.exportList.Update(msg)
	return m, cmd
}

func (m *Model) handleTrackPreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ExportListView
		return m, nil
	case "enter":
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n":
		m.view = TrackPreviewView
		return m, nil
	case "y":
		m.view = ProcessingView
		return m, m.startProcess()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = ExportListView
		m.result = nil
		m.err = nil
		return m, m.scanExports()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ExportListView:
		m.exportList, cmd = m.exportList.Update(msg)
	case TrackPreviewView:
		m.trackList, cmd = m.trackList.Update(msg)
	}
	return m, cmd
}

func (m *Model) scanExports() tea.Cmd {
	return func() tea.Msg {
		paths, err := filepath.Glob(filepath.Join(m.sourceDir, "*.csv"))
		if err != nil {
			return exportsScannedMsg{err: err}
		}
		sort.Strings(paths)

		items := make([]exportItem, 0, len(paths))
		for _, path := range paths {
			name, parsed, err := parser.ParsePlaylist(path)
			if err != nil {
				items = append(items, exportItem{name: filepath.Base(path), path: path, tracks: -1})
				continue
			}
			items = append(items, exportItem{name: name, path: path, tracks: len(parsed.Tracks)})
		}
		return exportsScannedMsg{items: items}
	}
}

func (m *Model) parseTracks(item exportItem) tea.Cmd {
	return func() tea.Msg {
		_, parsed, err := parser.ParsePlaylist(item.path)
		if err != nil {
			return tracksParsedMsg{err: err}
		}
		tracks := make([]trackItem, len(parsed.Tracks))
		for i, track := range parsed.Tracks {
			tracks[i] = trackItem{track: track}
		}
		return tracksParsedMsg{item: item, tracks: tracks}
	}
}

func (m *Model) startProcess() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	progressChan := m.progressChan

	go func() {
		result, err := m.engine.Process(m.ctx, progressChan, m.selected.path, m.opts)
		m.result = result
		m.err = err
		close(progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return processCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return processCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderExportList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.exportList.View(), helpView)
}

func (m *Model) renderTrackPreview() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Download and build playlist '%s'?", m.selected.name))
	info := fmt.Sprintf("\nSource: %s\nTracks: %d\nOutput: %s\n", m.selected.path, m.selected.tracks, m.opts.OutputDir)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderProcessing() string {
	title := styles.title.Render("Processing Playlist")

	var phase string
	switch m.progress.Phase {
	case tasks.ParseSource:
		phase = "Reading playlist export..."
	case tasks.DownloadTracks:
		phase = "Downloading tracks..."
	case tasks.ScanFiles:
		phase = "Reading file tags..."
	case tasks.ClassifyTracks:
		phase = "Matching tracks against files..."
	case tasks.EmitPlaylist:
		phase = "Writing playlist..."
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Processing failed: %v\n\nPress r to retry, q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress r to retry, q to quit")
	}

	title := styles.ok.Render("✓ Playlist Written")
	info := fmt.Sprintf(
		"\nPlaylist: %s\nOutput: %s\nMatched: %d  Corrected: %d  Missing: %d  (of %d)",
		m.result.Playlist,
		m.result.OutputPath,
		m.result.Summary.Matched,
		m.result.Summary.Corrected,
		m.result.Summary.Missing,
		m.result.Summary.Total,
	)

	var detail string
	if corrections := report.Corrections(m.result.Results); len(corrections) > 0 {
		detail += fmt.Sprintf("\n\n%s", styles.warn.Render(fmt.Sprintf("Corrected %d tracks:", len(corrections))))
		for _, c := range corrections {
			detail += fmt.Sprintf("\n  ~ %s - %s => %s - %s", c.Expected.Artist, c.Expected.Title, c.EffectiveArtist, c.EffectiveTitle)
		}
	}
	if missing := report.Missing(m.result.Results); len(missing) > 0 {
		detail += fmt.Sprintf("\n\n%s", styles.warn.Render(fmt.Sprintf("Missing %d tracks:", len(missing))))
		for _, miss := range missing {
			detail += fmt.Sprintf("\n  ✗ %s - %s", miss.Expected.Artist, miss.Expected.Title)
		}
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, detail, helpView)
}
