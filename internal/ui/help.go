package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{
			title: "Tabs",
			keys: [][2]string{
				{"tab / shift+tab", "Next / previous tab"},
				{"1", "Overview"},
				{"2", "Memory usage"},
				{"3", "Warnings"},
				{"4", "Errors"},
				{"5", "Raw log"},
				{"esc", "Back to overview"},
			},
		},
		{
			title: "File",
			keys: [][2]string{
				{"o", "Open log file"},
				{"r", "Reload current file"},
				{"w", "Toggle file watch"},
			},
		},
		{
			title: "Raw log",
			keys: [][2]string{
				{"/", "Search (regex, case-insensitive)"},
				{"n / N", "Next / previous match"},
				{"space", "Follow tail"},
				{"j/k g/G", "Scroll / jump"},
			},
		},
		{
			title: "Misc",
			keys: [][2]string{
				{"T", "Cycle theme (" + m.theme.Name + ")"},
				{"h / ?", "This help"},
				{"q", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("renlog – render log browser"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Bold(true).Render(section.title))
		for _, kv := range section.keys {
			b.WriteString(fmt.Sprintf("\n  %s %s",
				styles.AccentText.Render(fmt.Sprintf("%-16s", kv[0])),
				styles.Text.Render(kv[1])))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
