// Package state provides thread-safe sharing of the latest parsed log
// between the file watcher and the UI.
//
// The Store follows a single-writer, multiple-reader pattern: the loader
// calls Update whenever a file is opened or re-read, and the UI calls
// Snapshot on its refresh tick. Both sides work on defensive copies, so a
// snapshot handed to the renderer is never mutated by a concurrent reload.
//
// Update keeps the last good lines and report when a reload fails, which
// lets the UI display stale-but-valid data next to the error instead of
// going blank.
package state
