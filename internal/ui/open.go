package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// openState holds the open-file prompt: a path input plus the recent-files
// picker. This replaces the desktop viewer's browse button and path field;
// its red-on-invalid behavior carries over as the errText line.
type openState struct {
	active    bool
	input     textinput.Model
	errText   string
	recentIdx int // -1 when typing a fresh path
}

func (m *Model) initOpenState() {
	ti := textinput.New()
	ti.Placeholder = "/path/to/render.log"
	ti.CharLimit = 512
	ti.Width = 60

	m.open = openState{input: ti, recentIdx: -1}
}

// startOpen shows the prompt, prefilled with the current file.
func (m *Model) startOpen() {
	m.open.active = true
	m.open.errText = ""
	m.open.recentIdx = -1
	m.open.input.SetValue(m.snapshot.Path)
	m.open.input.CursorEnd()
	m.open.input.Focus()
}

// finishOpen closes the prompt after a successful load.
func (m *Model) finishOpen() {
	m.open.active = false
	m.open.errText = ""
	m.open.input.Blur()
}

// handleOpenKey processes keys while the open prompt is showing.
func (m Model) handleOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.open.active = false
		m.open.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.open.input.Value())
		// Validate before touching the parsing core: must be an
		// existing regular file with a recognized extension.
		if err := m.config.AllowedPath(path); err != nil {
			m.open.errText = err.Error()
			return m, nil
		}
		return m, openFileCmd(m.files, path)

	case msg.String() == "up":
		m.cycleRecent(-1)
		return m, nil

	case msg.String() == "down":
		m.cycleRecent(1)
		return m, nil

	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.open.input, cmd = m.open.input.Update(msg)
	m.open.recentIdx = -1
	return m, cmd
}

// cycleRecent fills the input from the recent-files list.
func (m *Model) cycleRecent(step int) {
	if len(m.prefs.Recent) == 0 {
		return
	}
	m.open.recentIdx = clamp(m.open.recentIdx+step, 0, len(m.prefs.Recent)-1)
	m.open.input.SetValue(m.prefs.Recent[m.open.recentIdx])
	m.open.input.CursorEnd()
}

// renderOpen renders the open-file prompt as a centered modal.
func (m Model) renderOpen() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Open Render Log"))
	b.WriteString("\n\n")
	b.WriteString(m.open.input.View())
	b.WriteString("\n")

	if m.open.errText != "" {
		b.WriteString(styles.DangerText.Render(truncate(m.open.errText, 70)))
		b.WriteString("\n")
	}

	if len(m.prefs.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Recent (↑/↓ to pick):"))
		for i, path := range m.prefs.Recent {
			b.WriteString("\n")
			label := truncateMiddle(path, 64)
			if i == m.open.recentIdx {
				b.WriteString(styles.Selected.Render(" " + label + " "))
			} else {
				b.WriteString(styles.FaintText.Render("  " + label))
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter open – esc cancel"))

	borderColor := m.theme.BorderFocus
	if m.open.errText != "" {
		borderColor = m.theme.Danger
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
