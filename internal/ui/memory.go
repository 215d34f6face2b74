package ui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// memoryState holds the memory-usage tab widget.
type memoryState struct {
	table table.Model
}

// initMemoryTable builds the memory-usage table once the window size is
// known.
func (m *Model) initMemoryTable() {
	columns := []table.Column{
		{Title: "Time Elapsed", Width: 14},
		{Title: "Memory usage at that stage", Width: 28},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(lipgloss.Color(m.theme.Accent)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		BorderBottom(true)
	s.Cell = s.Cell.Foreground(lipgloss.Color(m.theme.Text))
	s.Selected = s.Selected.
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Bold(false)
	tbl.SetStyles(s)

	m.memory = memoryState{table: tbl}
}

// updateMemoryTable refreshes the rows from the current snapshot. Rows are
// sorted by elapsed-time label, which for HH:MM:SS equals chronological
// order.
func (m *Model) updateMemoryTable() {
	timeline := m.snapshot.Report.Memory
	rows := make([]table.Row, 0, timeline.Len())
	for _, elapsed := range timeline.SortedTimes() {
		usage, ok := timeline.Lookup(elapsed)
		if !ok {
			continue
		}
		rows = append(rows, table.Row{elapsed, usage})
	}

	m.memory.table.SetRows(rows)
	m.memory.table.SetHeight(clamp(m.contentHeight()-1, 1, len(rows)+2))
	m.memory.table.SetWidth(m.contentWidth())
}

// handleMemoryKey forwards navigation to the table widget.
func (m Model) handleMemoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.memory.table, cmd = m.memory.table.Update(msg)
	return m, cmd
}

// renderMemory renders the memory-usage tab.
func (m Model) renderMemory() string {
	return m.renderBox(m.tabLabel(ViewMemory), m.memory.table.View(), true)
}
