package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rawState holds the raw-log tab state: the scrollback viewport plus
// vim-style search.
type rawState struct {
	viewport viewport.Model
	follow   bool

	searchActive bool
	searchInput  textinput.Model
	query        string
	regex        *regexp.Regexp
	matches      []int // line indices that match
	matchIdx     int
}

func (m *Model) initRawState() {
	ti := textinput.New()
	ti.Placeholder = "Search log..."
	ti.CharLimit = 100

	m.raw = rawState{
		viewport:    viewport.New(m.contentWidth(), m.contentHeight()-1),
		follow:      true,
		searchInput: ti,
	}
}

// updateRawViewport refreshes the raw log content from the snapshot.
func (m *Model) updateRawViewport() {
	m.raw.viewport.Width = m.contentWidth()
	m.raw.viewport.Height = m.contentHeight() - 1 // status line below

	m.findRawMatches()
	m.raw.viewport.SetContent(m.renderRawContent())
	if m.raw.follow {
		m.raw.viewport.GotoBottom()
	}
}

// renderRawContent renders numbered log lines with search highlighting.
func (m *Model) renderRawContent() string {
	styles := m.theme.Styles()
	width := m.raw.viewport.Width

	if len(m.snapshot.Lines) == 0 {
		return styles.MutedText.Render("Log is empty.")
	}

	matchSet := make(map[int]bool, len(m.raw.matches))
	for _, idx := range m.raw.matches {
		matchSet[idx] = true
	}
	activeMatchLine := -1
	if len(m.raw.matches) > 0 && m.raw.matchIdx < len(m.raw.matches) {
		activeMatchLine = m.raw.matches[m.raw.matchIdx]
	}

	var b strings.Builder
	for i, line := range m.snapshot.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		gutter := fmt.Sprintf("%4d │ ", i+1)
		text := truncate(line, width-len(gutter))

		switch {
		case i == activeMatchLine:
			highlight := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.Warning)).
				Foreground(lipgloss.Color(m.theme.Background))
			b.WriteString(highlight.Render(gutter + text))
		case matchSet[i]:
			b.WriteString(styles.AccentText.Render(gutter) + styles.AccentText.Render(text))
		default:
			b.WriteString(styles.FaintText.Render(gutter) + m.styleRawLine(text, styles))
		}
	}
	return b.String()
}

// styleRawLine colors warning and error lines in place so the raw view
// reads like the classified tabs.
func (m *Model) styleRawLine(line string, styles Styles) string {
	switch {
	case strings.Contains(line, "ERROR"):
		return styles.DangerText.Render(line)
	case strings.Contains(line, "WARNING"):
		return styles.WarningText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

// renderRaw renders the raw log tab with its status line.
func (m Model) renderRaw() string {
	styles := m.theme.Styles()

	var status string
	switch {
	case m.raw.searchActive:
		status = styles.AccentText.Render("/" + m.raw.searchInput.Value())
	case m.raw.regex != nil && len(m.raw.matches) > 0:
		status = styles.AccentText.Render("/"+m.raw.query) +
			styles.FaintText.Render(" – ") +
			styles.WarningText.Render(fmt.Sprintf("%d/%d", m.raw.matchIdx+1, len(m.raw.matches))) +
			styles.FaintText.Render(" – n/N to move, esc to clear")
	case m.raw.regex != nil:
		status = styles.DangerText.Render("Pattern not found: " + m.raw.query)
	default:
		follow := "off"
		if m.raw.follow {
			follow = "on"
		}
		status = styles.FaintText.Render(
			fmt.Sprintf("%d lines – follow %s – / to search", len(m.snapshot.Lines), follow))
	}

	return m.renderBox(m.tabLabel(ViewRaw), m.raw.viewport.View()+"\n"+status, true)
}

// handleRawKey processes keyboard input for the raw log tab.
func (m Model) handleRawKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.raw.searchActive = true
		m.raw.searchInput.SetValue("")
		m.raw.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.NextMatch):
		m.stepRawMatch(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMatch):
		m.stepRawMatch(-1)
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.raw.follow = !m.raw.follow
		if m.raw.follow {
			m.raw.viewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.raw.viewport.GotoTop()
		m.raw.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.raw.viewport.GotoBottom()
		m.raw.follow = true
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.raw.viewport.LineDown(1)
		m.raw.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.raw.viewport.LineUp(1)
		m.raw.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.raw.viewport.ViewDown()
		m.raw.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.raw.viewport.ViewUp()
		m.raw.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.raw.viewport.HalfViewDown()
		m.raw.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.raw.viewport.HalfViewUp()
		m.raw.follow = false
		return m, nil
	}

	return m, nil
}

// handleRawSearchInput handles keys while the search prompt is open.
func (m Model) handleRawSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := m.raw.searchInput.Value()
		m.raw.searchActive = false
		m.raw.searchInput.Blur()
		if query == "" {
			return m, nil
		}

		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			// Invalid pattern; treat it as no match rather than failing.
			m.raw.regex = nil
			m.raw.query = query
			m.raw.matches = nil
			m.updateRawViewport()
			return m, nil
		}

		m.raw.regex = re
		m.raw.query = query
		m.findRawMatches()
		if len(m.raw.matches) > 0 {
			m.raw.matchIdx = 0
			m.scrollToRawMatch()
		}
		m.raw.viewport.SetContent(m.renderRawContent())
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.raw.searchActive = false
		m.raw.searchInput.Blur()
		m.raw.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.raw.searchInput, cmd = m.raw.searchInput.Update(msg)
	return m, cmd
}

// findRawMatches recomputes the matching line indices.
func (m *Model) findRawMatches() {
	m.raw.matches = nil
	if m.raw.regex == nil {
		return
	}
	for i, line := range m.snapshot.Lines {
		if m.raw.regex.MatchString(line) {
			m.raw.matches = append(m.raw.matches, i)
		}
	}
	if m.raw.matchIdx >= len(m.raw.matches) {
		m.raw.matchIdx = 0
	}
}

// stepRawMatch moves to the next or previous match, wrapping around.
func (m *Model) stepRawMatch(step int) {
	if len(m.raw.matches) == 0 {
		return
	}
	m.raw.matchIdx = (m.raw.matchIdx + step + len(m.raw.matches)) % len(m.raw.matches)
	m.scrollToRawMatch()
	m.raw.viewport.SetContent(m.renderRawContent())
}

// scrollToRawMatch centers the viewport on the active match.
func (m *Model) scrollToRawMatch() {
	if len(m.raw.matches) == 0 {
		return
	}
	m.raw.follow = false
	line := m.raw.matches[m.raw.matchIdx]
	offset := clamp(line-m.raw.viewport.Height/2, 0, len(m.snapshot.Lines))
	m.raw.viewport.SetYOffset(offset)
}

// clearRawSearch drops the active search.
func (m *Model) clearRawSearch() {
	m.raw.regex = nil
	m.raw.query = ""
	m.raw.matches = nil
	m.raw.matchIdx = 0
}
