package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// problemsState holds the warnings and errors tab widgets. Two viewports so
// switching tabs keeps each scroll position.
type problemsState struct {
	warnings viewport.Model
	errors   viewport.Model
}

func (m *Model) initProblemViewports() {
	m.problems.warnings = viewport.New(m.contentWidth(), m.contentHeight())
	m.problems.errors = viewport.New(m.contentWidth(), m.contentHeight())
}

// updateProblemViewports refreshes both lists from the current snapshot.
func (m *Model) updateProblemViewports() {
	m.problems.warnings.Width = m.contentWidth()
	m.problems.warnings.Height = m.contentHeight()
	m.problems.errors.Width = m.contentWidth()
	m.problems.errors.Height = m.contentHeight()

	styles := m.theme.Styles()
	m.problems.warnings.SetContent(renderProblemList(
		m.snapshot.Report.Warnings, styles.WarningText, styles, m.contentWidth()))
	m.problems.errors.SetContent(renderProblemList(
		m.snapshot.Report.Errors, styles.DangerText, styles, m.contentWidth()))
}

// renderProblemList lays out one entry per row, numbered, in file order.
func renderProblemList(entries []string, entryStyle lipgloss.Style, styles Styles, width int) string {
	if len(entries) == 0 {
		return styles.MutedText.Render("Nothing recorded.")
	}

	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%4d │ ", i+1)))
		b.WriteString(entryStyle.Render(truncate(entry, width-7)))
	}
	return b.String()
}

// handleProblemsKey scrolls whichever list is active.
func (m Model) handleProblemsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.problems.warnings
	if m.currentView == ViewErrors {
		vp = &m.problems.errors
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		vp.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		vp.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	case key.Matches(msg, m.keys.PageDown):
		vp.ViewDown()
	case key.Matches(msg, m.keys.PageUp):
		vp.ViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfViewUp()
	}
	return m, nil
}

// renderWarnings renders the warnings tab.
func (m Model) renderWarnings() string {
	return m.renderBox(m.tabLabel(ViewWarnings), m.problems.warnings.View(), true)
}

// renderErrors renders the errors tab.
func (m Model) renderErrors() string {
	return m.renderBox(m.tabLabel(ViewErrors), m.problems.errors.View(), true)
}
