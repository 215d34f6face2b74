// Package loader feeds the shared store from log files on disk.
package loader

import (
	"os"
	"sync"
	"time"

	"renlog/internal/renderlog"
	"renlog/internal/state"
)

// Loader reads and parses render logs into a state.Store, and remembers
// enough about the current file to detect growth between checks. Safe for
// concurrent use; the watcher and the UI share one instance.
type Loader struct {
	store *state.Store

	mu     sync.Mutex
	path   string
	size   int64
	mtime  time.Time
	paused bool
}

// New returns a Loader writing into store.
func New(store *state.Store) *Loader {
	return &Loader{store: store}
}

// Open reads and parses the file at path, making it the current file.
// Read failures are recorded in the store and returned; the parse itself
// never fails.
func (l *Loader) Open(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(path)
}

// Reload re-reads the current file. It is a no-op when nothing is open.
func (l *Loader) Reload() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.path == "" {
		return nil
	}
	return l.load(l.path)
}

// Path returns the current file path, empty when nothing is open.
func (l *Loader) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// SetPaused suspends or resumes change detection. While paused,
// CheckChanged is a no-op; explicit Open and Reload still work.
func (l *Loader) SetPaused(paused bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = paused
}

// Paused reports whether change detection is suspended.
func (l *Loader) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// CheckChanged stats the current file and reloads it when its size or
// modification time differ from the last load. Returns true when a reload
// happened. A render still in progress appends to its log, so this is what
// keeps the report current.
func (l *Loader) CheckChanged() (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.path == "" || l.paused {
		return false, nil
	}

	info, err := os.Stat(l.path)
	if err != nil {
		err = &renderlog.FileAccessError{Path: l.path, Err: err}
		l.store.Update(l.path, nil, renderlog.Report{}, err)
		return false, err
	}
	if info.Size() == l.size && info.ModTime().Equal(l.mtime) {
		return false, nil
	}

	if err := l.load(l.path); err != nil {
		return false, err
	}
	return true, nil
}

// load must be called with l.mu held.
func (l *Loader) load(path string) error {
	lines, err := renderlog.ReadLines(path)
	if err != nil {
		l.store.Update(path, nil, renderlog.Report{}, err)
		return err
	}

	l.store.Update(path, lines, renderlog.Parse(lines), nil)
	l.path = path
	if info, err := os.Stat(path); err == nil {
		l.size = info.Size()
		l.mtime = info.ModTime()
	}
	return nil
}
