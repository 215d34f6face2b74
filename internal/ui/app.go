package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"renlog/internal/config"
	"renlog/internal/loader"
	"renlog/internal/prefs"
	"renlog/internal/state"
)

// View represents the current active tab.
type View int

const (
	ViewOverview View = iota
	ViewMemory
	ViewWarnings
	ViewErrors
	ViewRaw
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    *loader.Loader
	Store     *state.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	WatchTick time.Duration
	ThemeName string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	files     *loader.Loader
	store     *state.Store
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	watchTick time.Duration

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Tab widgets
	memory   memoryState
	problems problemsState
	raw      rawState

	// Overlays
	open     openState
	showHelp bool
}

// New creates the root Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	watchTick := opts.WatchTick
	if watchTick <= 0 {
		watchTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		files:       opts.Loader,
		store:       opts.Store,
		config:      opts.Config,
		prefs:       opts.Prefs,
		prefsPath:   prefsPath,
		watchTick:   watchTick,
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		currentView: ViewOverview,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.watchTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initMemoryTable()
			m.initProblemViewports()
			m.initRawState()
			m.initOpenState()
		}
		m.ready = true
		m.refreshWidgets()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.watchTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		next := state.Snapshot(msg)
		changed := next.LoadedAt != m.snapshot.LoadedAt || next.Path != m.snapshot.Path
		m.snapshot = next
		m.lastUpdated = time.Now()
		if changed && m.ready {
			m.refreshWidgets()
			if !m.viewAvailable(m.currentView) {
				m.currentView = ViewOverview
			}
		}
		return m, nil

	case openedMsg:
		return m.handleOpened(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.open.active {
		return m.renderOpen()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.open.active {
		return m.handleOpenKey(msg)
	}

	if m.currentView == ViewRaw && m.raw.searchActive {
		return m.handleRawSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		_ = prefs.Save(m.prefsPath, m.prefs)
		m.refreshWidgets()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.startOpen()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.files == nil || m.files.Path() == "" {
			return m, nil
		}
		return m, reloadCmd(m.files, m.store)

	case key.Matches(msg, m.keys.ToggleWatch):
		if m.files != nil {
			m.files.SetPaused(!m.files.Paused())
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.currentView = m.nextView(m.currentView, 1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.currentView = m.nextView(m.currentView, -1)
		return m, nil

	case key.Matches(msg, m.keys.ViewOverview):
		m.currentView = ViewOverview
		return m, nil

	case key.Matches(msg, m.keys.ViewMemory):
		if m.viewAvailable(ViewMemory) {
			m.currentView = ViewMemory
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewWarnings):
		if m.viewAvailable(ViewWarnings) {
			m.currentView = ViewWarnings
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewErrors):
		if m.viewAvailable(ViewErrors) {
			m.currentView = ViewErrors
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewRaw):
		if m.viewAvailable(ViewRaw) {
			m.currentView = ViewRaw
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewRaw && m.raw.regex != nil {
			m.clearRawSearch()
			m.updateRawViewport()
			return m, nil
		}
		m.currentView = ViewOverview
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewMemory:
		return m.handleMemoryKey(msg)
	case ViewWarnings, ViewErrors:
		return m.handleProblemsKey(msg)
	case ViewRaw:
		return m.handleRawKey(msg)
	}

	return m, nil
}

// viewAvailable reports whether a tab has content to show. Tabs with
// nothing behind them are hidden, matching the desktop viewer's behavior
// of only creating tabs for facts that were found.
func (m Model) viewAvailable(v View) bool {
	switch v {
	case ViewOverview:
		return true
	case ViewMemory:
		return m.snapshot.Report.Memory.Len() > 0
	case ViewWarnings:
		return len(m.snapshot.Report.Warnings) > 0
	case ViewErrors:
		return len(m.snapshot.Report.Errors) > 0
	case ViewRaw:
		return len(m.snapshot.Lines) > 0
	}
	return false
}

// nextView steps through the available tabs in display order.
func (m Model) nextView(current View, step int) View {
	order := []View{ViewOverview, ViewMemory, ViewWarnings, ViewErrors, ViewRaw}
	idx := 0
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}
	for range order {
		idx = (idx + step + len(order)) % len(order)
		if m.viewAvailable(order[idx]) {
			return order[idx]
		}
	}
	return ViewOverview
}

// refreshWidgets rebuilds widget contents from the current snapshot.
func (m *Model) refreshWidgets() {
	if !m.ready {
		return
	}
	m.updateMemoryTable()
	m.updateProblemViewports()
	m.updateRawViewport()
}

// renderMain renders the normal (non-overlay) screen.
func (m Model) renderMain() string {
	return m.renderHeader() + "\n" +
		m.renderTabBar() + "\n" +
		m.renderContent()
}

// renderContent renders the active tab.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewMemory:
		return m.renderMemory()
	case ViewWarnings:
		return m.renderWarnings()
	case ViewErrors:
		return m.renderErrors()
	case ViewRaw:
		return m.renderRaw()
	default:
		return m.renderOverview()
	}
}

func (m Model) handleOpened(msg openedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.open.errText = msg.err.Error()
		return m, fetchSnapshotCmd(m.store)
	}

	if m.open.active {
		m.finishOpen()
	}
	if msg.path != "" {
		m.prefs.Remember(msg.path)
		_ = prefs.Save(m.prefsPath, m.prefs)
	}
	m.currentView = ViewOverview
	return m, fetchSnapshotCmd(m.store)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// openedMsg reports the outcome of an open or reload request.
type openedMsg struct {
	path string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func openFileCmd(files *loader.Loader, path string) tea.Cmd {
	return func() tea.Msg {
		err := files.Open(path)
		return openedMsg{path: path, err: err}
	}
}

func reloadCmd(files *loader.Loader, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		err := files.Reload()
		return openedMsg{path: files.Path(), err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Signal-driven shutdown is a clean exit.
		return nil
	}
	return err
}
