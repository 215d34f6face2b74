// Package ui provides the terminal user interface for renlog.
//
// # Architecture Overview
//
// The UI is a Bubble Tea application. The root Model holds all state and
// implements Init/Update/View; per-concern files keep the package
// navigable:
//
//   - app.go: root Model, message/command plumbing, key dispatch, Run
//   - keys.go: key bindings via bubbles/key
//   - theme.go: named color themes and Lipgloss style sets
//   - header.go: status bar, tab strip, and the shared content box
//   - overview.go, memory.go, problems.go, raw.go: one file per tab
//   - open.go: the open-file prompt with recent-files picker
//   - help.go: full-screen help overlay
//
// # View Types
//
// Tabs mirror the sections of the parsed report and only exist when there
// is something to show, the way the original viewer created tabs per fact:
//
//   - Overview: file identity, render time, and section counts
//   - Memory: (elapsed time, usage) table sorted chronologically
//   - Warnings / Errors: one row per matched line, counts in the titles
//   - Raw: full scrollback with vim-style regex search
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alt screen
//  2. A tick at the watch interval fetches a fresh store snapshot
//  3. Snapshot changes rebuild the tab widgets
//  4. The open prompt validates paths, then asks the loader to open them;
//     results come back as messages so the UI never blocks on I/O
//
// # External Dependencies
//
//   - state.Store: snapshots of the latest parsed log
//   - loader.Loader: opens and reloads files on request
//   - config: open-prompt path validation
//   - prefs: theme and recent-files persistence
package ui
