package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	averageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("255"))
)

// View renders the current screen
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cpustress history") + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}

	switch m.mode {
	case viewRunDetail:
		b.WriteString(m.renderRunDetail())
	default:
		b.WriteString(m.renderRuns())
	}

	b.WriteString("\n" + m.renderStatusBar())
	return b.String()
}

func (m Model) renderRuns() string {
	if len(m.runs) == 0 {
		return dimStyle.Render("no archived runs yet; finish a run with `cpustress run`") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-19s  %-12s  %6s  %15s  %15s", "STARTED", "STRATEGY", "CYCLES", "SUM", "AVG OPS/SEC")) + "\n")

	end := m.scroll + m.visibleRows()
	if end > len(m.runs) {
		end = len(m.runs)
	}

	for i := m.scroll; i < end; i++ {
		run := m.runs[i]
		line := fmt.Sprintf("%-19s  %-12s  %6d  %15s  %15s",
			domain.Timestamp(run.StartedAt),
			run.Strategy,
			run.Cycles,
			humanize.Comma(int64(run.Sum)),
			humanize.Comma(int64(run.Average)),
		)
		if i == m.selectedRow {
			b.WriteString(selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func (m Model) renderRunDetail() string {
	run := m.selectedRun()
	if run == nil {
		return dimStyle.Render("no run selected") + "\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Run %s\n", run.ID))
	b.WriteString(fmt.Sprintf("Started %s ... Ended %s\n", domain.Timestamp(run.StartedAt), domain.Timestamp(run.EndedAt)))
	b.WriteString(averageStyle.Render(fmt.Sprintf("Average %s operations per second", humanize.Comma(int64(run.Average)))) + "\n\n")

	if len(m.cycles) == 0 {
		b.WriteString(dimStyle.Render("loading cycles ...") + "\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%5s  %15s  %-19s  %-19s", "CYCLE", "ITERATIONS", "STARTED", "ENDED")) + "\n")
	for _, c := range m.cycles {
		b.WriteString(fmt.Sprintf("%5d  %15s  %-19s  %-19s\n",
			c.Index,
			humanize.Comma(int64(c.Iterations)),
			domain.Timestamp(c.StartedAt),
			domain.Timestamp(c.EndedAt),
		))
	}

	return b.String()
}

func (m Model) renderStatusBar() string {
	var help string
	switch m.mode {
	case viewRunDetail:
		help = " esc: back  q: quit "
	default:
		help = " j/k: move  enter: detail  r: refresh  q: quit "
	}
	return statusBarStyle.Render(help)
}
