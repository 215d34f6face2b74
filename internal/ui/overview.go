package ui

import (
	"fmt"
	"strings"
)

// renderOverview renders the summary tab: file identity plus the render
// time line the desktop viewer showed in its first tab.
func (m Model) renderOverview() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var b strings.Builder

	if snap.Path == "" {
		b.WriteString(styles.MutedText.Render("No render log loaded."))
		b.WriteString("\n\n")
		b.WriteString(styles.Text.Render("Press ") +
			styles.AccentText.Render("o") +
			styles.Text.Render(" to open a log file."))
		if len(m.prefs.Recent) > 0 {
			b.WriteString("\n\n")
			b.WriteString(styles.MutedText.Render("Recent files:"))
			for _, path := range m.prefs.Recent {
				b.WriteString("\n  " + styles.FaintText.Render(truncateMiddle(path, m.contentWidth()-2)))
			}
		}
		return m.renderBox("Overview", b.String(), true)
	}

	b.WriteString(styles.MutedText.Render("File: ") +
		styles.Text.Render(truncateMiddle(snap.Path, m.contentWidth()-8)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Loaded: ") +
		styles.Text.Render(relativeTime(snap.LoadedAt)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Lines: ") +
		styles.Text.Render(fmt.Sprintf("%d", len(snap.Lines))))
	b.WriteString("\n\n")

	if snap.Report.RenderTime != "" {
		b.WriteString(styles.Text.Render("Render done in: ") +
			styles.SuccessText.Render(snap.Report.RenderTime))
	} else {
		b.WriteString(styles.MutedText.Render("No render time recorded."))
	}
	b.WriteString("\n\n")

	report := snap.Report
	b.WriteString(styles.MutedText.Render("Memory samples: ") +
		styles.Text.Render(fmt.Sprintf("%d", report.Memory.Len())))
	b.WriteString("\n")

	warnStyle := styles.MutedText
	if len(report.Warnings) > 0 {
		warnStyle = styles.WarningText
	}
	b.WriteString(styles.MutedText.Render("Warnings: ") +
		warnStyle.Render(fmt.Sprintf("%d", len(report.Warnings))))
	b.WriteString("\n")

	errStyle := styles.MutedText
	if len(report.Errors) > 0 {
		errStyle = styles.DangerText
	}
	b.WriteString(styles.MutedText.Render("Errors: ") +
		errStyle.Render(fmt.Sprintf("%d", len(report.Errors))))

	if snap.LastError != nil {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(truncate(snap.LastError.Error(), m.contentWidth())))
	}

	return m.renderBox("Overview", b.String(), true)
}
