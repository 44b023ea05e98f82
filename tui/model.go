// Package tui is an interactive browser for the archived run history: a
// table of past runs with a per-run cycle breakdown.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// HistoryStore is the read-only archive access the TUI needs.
type HistoryStore interface {
	ListRuns(limit int) ([]*domain.RunRecord, error)
	ListCycles(runID string) ([]*domain.CycleRecord, error)
}

// viewMode determines which screen is showing
type viewMode int

const (
	viewRuns viewMode = iota
	viewRunDetail
)

// Model is the TUI application model
type Model struct {
	store HistoryStore

	// Data
	runs   []*domain.RunRecord
	cycles []*domain.CycleRecord
	err    error

	// UI state
	width       int
	height      int
	mode        viewMode
	selectedRow int
	scroll      int
}

// runsLoadedMsg carries a refreshed run list
type runsLoadedMsg struct {
	runs []*domain.RunRecord
	err  error
}

// cyclesLoadedMsg carries one run's cycles
type cyclesLoadedMsg struct {
	cycles []*domain.CycleRecord
	err    error
}

// New creates the history browser model
func New(store HistoryStore) Model {
	return Model{store: store}
}

// Init loads the initial run list
func (m Model) Init() tea.Cmd {
	return m.loadRuns()
}

func (m Model) loadRuns() tea.Cmd {
	return func() tea.Msg {
		runs, err := m.store.ListRuns(200)
		return runsLoadedMsg{runs: runs, err: err}
	}
}

func (m Model) loadCycles(runID string) tea.Cmd {
	return func() tea.Msg {
		cycles, err := m.store.ListCycles(runID)
		return cyclesLoadedMsg{cycles: cycles, err: err}
	}
}

// selectedRun returns the highlighted run, if any
func (m Model) selectedRun() *domain.RunRecord {
	if m.selectedRow < 0 || m.selectedRow >= len(m.runs) {
		return nil
	}
	return m.runs[m.selectedRow]
}
