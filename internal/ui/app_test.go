package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"renlog/internal/config"
	"renlog/internal/renderlog"
	"renlog/internal/state"
)

func modelWithReport(t *testing.T, lines []string) Model {
	t.Helper()

	m := New(Options{})
	m.snapshot = state.Snapshot{
		Path:      "/renders/shot.log",
		Lines:     lines,
		Report:    renderlog.Parse(lines),
		HasReport: true,
	}
	return m
}

func TestViewAvailable(t *testing.T) {
	lines := []string{
		"[render] 00:00:05   120MB   | generating rays",
		"WARNING: texture not found",
	}
	m := modelWithReport(t, lines)

	if !m.viewAvailable(ViewOverview) {
		t.Error("overview should always be available")
	}
	if !m.viewAvailable(ViewMemory) {
		t.Error("memory tab should be available with samples present")
	}
	if !m.viewAvailable(ViewWarnings) {
		t.Error("warnings tab should be available")
	}
	if m.viewAvailable(ViewErrors) {
		t.Error("errors tab should be hidden with no errors")
	}
	if !m.viewAvailable(ViewRaw) {
		t.Error("raw tab should be available with lines present")
	}
}

func TestViewAvailable_EmptySnapshot(t *testing.T) {
	m := New(Options{})

	if !m.viewAvailable(ViewOverview) {
		t.Error("overview should be available before any file is loaded")
	}
	for _, v := range []View{ViewMemory, ViewWarnings, ViewErrors, ViewRaw} {
		if m.viewAvailable(v) {
			t.Errorf("view %d should be hidden before any file is loaded", v)
		}
	}
}

func TestNextViewSkipsEmptyTabs(t *testing.T) {
	lines := []string{
		"ERROR: out of memory",
		"tail line",
	}
	m := modelWithReport(t, lines)

	// No memory samples and no warnings, so tab order is
	// Overview -> Errors -> Raw.
	if got := m.nextView(ViewOverview, 1); got != ViewErrors {
		t.Errorf("nextView(Overview, 1) = %d, want ViewErrors", got)
	}
	if got := m.nextView(ViewErrors, 1); got != ViewRaw {
		t.Errorf("nextView(Errors, 1) = %d, want ViewRaw", got)
	}
	if got := m.nextView(ViewRaw, 1); got != ViewOverview {
		t.Errorf("nextView(Raw, 1) = %d, want ViewOverview (wrap)", got)
	}
	if got := m.nextView(ViewOverview, -1); got != ViewRaw {
		t.Errorf("nextView(Overview, -1) = %d, want ViewRaw", got)
	}
}

func TestNextView_OnlyOverview(t *testing.T) {
	m := New(Options{})
	if got := m.nextView(ViewOverview, 1); got != ViewOverview {
		t.Errorf("nextView with no content = %d, want ViewOverview", got)
	}
}

func TestTabLabelCounts(t *testing.T) {
	lines := []string{
		"00:00:01   50MB   | start",
		"00:00:02   75MB   | shading",
		"WARNING: a",
		"ERROR: b",
		"ERROR: c",
	}
	m := modelWithReport(t, lines)

	tests := []struct {
		view View
		want string
	}{
		{ViewOverview, "Overview"},
		{ViewMemory, "Memory (2)"},
		{ViewWarnings, "Warnings (1)"},
		{ViewErrors, "Errors (2)"},
		{ViewRaw, "Raw (5)"},
	}
	for _, tt := range tests {
		if got := m.tabLabel(tt.view); got != tt.want {
			t.Errorf("tabLabel(%d) = %q, want %q", tt.view, got, tt.want)
		}
	}
}

func TestRenderProblemList(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	if got := renderProblemList(nil, styles.WarningText, styles, 80); !strings.Contains(got, "Nothing recorded.") {
		t.Errorf("empty list = %q, want placeholder", got)
	}

	entries := []string{"WARNING: first", "WARNING: second"}
	got := renderProblemList(entries, styles.WarningText, styles, 80)
	if !strings.Contains(got, "1 │") || !strings.Contains(got, "2 │") {
		t.Errorf("rendered list missing row numbers:\n%s", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("rendered list missing entries:\n%s", got)
	}
}

func TestOpenPromptRejectsInvalidPath(t *testing.T) {
	m := New(Options{Config: config.Config{LogExtensions: []string{".log"}}})
	m.initOpenState()
	m.startOpen()
	m.open.input.SetValue("/nonexistent/render.log")

	updated, cmd := m.handleOpenKey(tea.KeyMsg{Type: tea.KeyEnter})
	next := updated.(Model)

	if cmd != nil {
		t.Fatal("invalid path should not produce an open command")
	}
	if next.open.errText == "" {
		t.Fatal("invalid path should set the error text")
	}
	if !next.open.active {
		t.Fatal("prompt should stay open after a rejected path")
	}
}

func TestOpenPromptEscapeCancels(t *testing.T) {
	m := New(Options{})
	m.initOpenState()
	m.startOpen()

	updated, _ := m.handleOpenKey(tea.KeyMsg{Type: tea.KeyEscape})
	next := updated.(Model)
	if next.open.active {
		t.Fatal("escape should close the prompt")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := New(Options{})
	m.showHelp = true

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	next := updated.(Model)
	if next.showHelp {
		t.Fatal("any key should close the help overlay")
	}
}
