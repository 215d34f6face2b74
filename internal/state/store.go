package state

import (
	"sync"
	"time"

	"renlog/internal/renderlog"
)

// Snapshot is an immutable view of the most recent load.
type Snapshot struct {
	// Path is the log file the snapshot describes; empty until the first
	// load is attempted.
	Path string

	// Lines is the raw log content, Report the parsed facts. Both are
	// defensive copies.
	Lines  []string
	Report renderlog.Report

	// HasReport is true once a load has succeeded for Path.
	HasReport bool

	// LoadedAt is the time of the last load attempt; LastError is its
	// failure, nil on success.
	LoadedAt  time.Time
	LastError error
}

// Store is a thread-safe container for the latest parsed log. The loader
// writes under the write lock; the UI reads snapshots on its own schedule.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. On error the previous lines and
// report are kept so the UI can keep showing the last good data alongside
// the failure.
func (s *Store) Update(path string, lines []string, report renderlog.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Path = path
	s.snapshot.LoadedAt = time.Now()
	s.snapshot.LastError = err
	if err != nil {
		return
	}

	s.snapshot.Lines = append([]string(nil), lines...)
	s.snapshot.Report = report.Clone()
	s.snapshot.HasReport = true
}

// Snapshot returns a copy of the current state safe for concurrent use.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.snapshot
	out.Lines = append([]string(nil), s.snapshot.Lines...)
	out.Report = s.snapshot.Report.Clone()
	return out
}
