package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the one-line status bar at the top of the screen.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string
	parts = append(parts, bg.Render("renlog", styles.Logo))

	snap := m.snapshot
	if snap.Path == "" {
		parts = append(parts, bg.Render("No log loaded", styles.MutedText))
		parts = append(parts, bg.Render("press o to open a render log", styles.FaintText))
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	compact := m.width < 100
	pathLimit := 60
	if compact {
		pathLimit = 30
	}
	parts = append(parts, bg.Render(truncateMiddle(snap.Path, pathLimit), styles.Text))

	if snap.HasReport {
		report := snap.Report
		if report.RenderTime != "" {
			parts = append(parts,
				bg.Render("Render:", styles.MutedText)+bg.Space()+
					bg.Render(report.RenderTime, styles.SuccessText))
		}

		warnStyle := styles.MutedText
		if len(report.Warnings) > 0 {
			warnStyle = styles.WarningText
		}
		errStyle := styles.MutedText
		if len(report.Errors) > 0 {
			errStyle = styles.DangerText
		}
		if compact {
			parts = append(parts, bg.Render(fmt.Sprintf("W:%d", len(report.Warnings)), warnStyle)+
				sep+bg.Render(fmt.Sprintf("E:%d", len(report.Errors)), errStyle))
		} else {
			parts = append(parts,
				bg.Render(fmt.Sprintf("Warnings: %d", len(report.Warnings)), warnStyle)+
					sep+bg.Render("•", styles.FaintText)+sep+
					bg.Render(fmt.Sprintf("Errors: %d", len(report.Errors)), errStyle))
		}
	}

	if ts := relativeTime(snap.LoadedAt); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	if m.files != nil && m.files.Paused() {
		parts = append(parts, bg.Render("watch off", styles.WarningText))
	}

	if snap.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(fmt.Sprintf("%v", snap.LastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// Join joins non-empty parts with a styled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	out := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, sep)
}

// tabLabel returns the display label for a tab, with counts where the
// desktop viewer showed them in tab titles.
func (m Model) tabLabel(v View) string {
	switch v {
	case ViewMemory:
		return fmt.Sprintf("Memory (%d)", m.snapshot.Report.Memory.Len())
	case ViewWarnings:
		return fmt.Sprintf("Warnings (%d)", len(m.snapshot.Report.Warnings))
	case ViewErrors:
		return fmt.Sprintf("Errors (%d)", len(m.snapshot.Report.Errors))
	case ViewRaw:
		return fmt.Sprintf("Raw (%d)", len(m.snapshot.Lines))
	default:
		return "Overview"
	}
}

// renderTabBar renders the tab strip under the header. Only tabs with
// content appear; the warnings and errors titles keep their alert colors.
func (m Model) renderTabBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	order := []View{ViewOverview, ViewMemory, ViewWarnings, ViewErrors, ViewRaw}
	var segments []string
	for i, v := range order {
		if !m.viewAvailable(v) {
			continue
		}

		labelStyle := styles.MutedText
		switch v {
		case ViewWarnings:
			labelStyle = styles.WarningText
		case ViewErrors:
			labelStyle = styles.DangerText
		}

		label := m.tabLabel(v)
		segment := bg.Render(fmt.Sprintf("%d", i+1), styles.AccentText) +
			bg.Render(":", styles.FaintText) +
			bg.Render(label, labelStyle)
		if v == m.currentView {
			selected := m.theme.Styles().Selected
			segment = selected.Render(fmt.Sprintf(" %d:%s ", i+1, label))
		}
		segments = append(segments, segment)
	}

	bar := bg.Join(segments, bg.Spaces(2))
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(bar)
}

// renderBox draws a bordered panel with a title line, sized to fill the
// content area below the header and tab bar.
func (m Model) renderBox(title, content string, focused bool) string {
	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}

	titleLine := m.theme.Styles().AccentText.Bold(true).Render(title)
	inner := titleLine + "\n" + content

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(m.width - 2).
		Height(m.height - 4).
		Render(inner)
}

// contentHeight returns the inner height available to a tab's scrollable
// body: screen minus header, tab bar, borders, and the box title line.
func (m Model) contentHeight() int {
	h := m.height - 5
	if h < 1 {
		return 1
	}
	return h
}

// contentWidth returns the inner width available inside a content box.
func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 10 {
		return 10
	}
	return w
}
