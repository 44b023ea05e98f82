package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "r":
			if m.mode == viewRuns {
				return m, m.loadRuns()
			}

		case "j", "down":
			if m.mode == viewRuns && m.selectedRow < len(m.runs)-1 {
				m.selectedRow++
				if m.selectedRow >= m.scroll+m.visibleRows() {
					m.scroll = m.selectedRow - m.visibleRows() + 1
				}
			}

		case "k", "up":
			if m.mode == viewRuns && m.selectedRow > 0 {
				m.selectedRow--
				if m.selectedRow < m.scroll {
					m.scroll = m.selectedRow
				}
			}

		case "enter":
			if m.mode == viewRuns {
				if run := m.selectedRun(); run != nil {
					m.mode = viewRunDetail
					m.cycles = nil
					return m, m.loadCycles(run.ID)
				}
			}

		case "esc":
			if m.mode == viewRunDetail {
				m.mode = viewRuns
				m.cycles = nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case runsLoadedMsg:
		m.runs = msg.runs
		m.err = msg.err
		if m.selectedRow >= len(m.runs) {
			m.selectedRow = 0
			m.scroll = 0
		}

	case cyclesLoadedMsg:
		m.cycles = msg.cycles
		m.err = msg.err
	}

	return m, nil
}

// visibleRows is how many run rows fit above the status bar
func (m Model) visibleRows() int {
	rows := m.height - 6
	if rows < 1 {
		return 10
	}
	return rows
}
