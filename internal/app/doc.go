// Package app provides the orchestration layer for renlog.
//
// Run is the composition root: it loads configuration and preferences,
// performs the initial log load when a path was given on the command line,
// starts the file watcher, and hands everything to the UI.
//
// Data flows one way. The loader reads and parses log files into the shared
// state.Store; the watcher goroutine triggers reloads when the file on disk
// changes; the UI reads snapshots from the store on its refresh tick and
// asks the loader to open new files from the open prompt.
//
// Fatal errors (unreadable config, invalid command-line path) are returned
// from Run before the UI starts. Everything after that is recoverable and
// surfaces inside the UI instead.
package app
