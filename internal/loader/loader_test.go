package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"renlog/internal/renderlog"
	"renlog/internal/state"
)

func writeLog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestOpen_PopulatesStore(t *testing.T) {
	store := &state.Store{}
	l := New(store)

	path := filepath.Join(t.TempDir(), "render.log")
	writeLog(t, path, "render done in 12s\nWARNING: low memory\n")

	if err := l.Open(path); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if l.Path() != path {
		t.Errorf("Path() = %q, want %q", l.Path(), path)
	}

	snap := store.Snapshot()
	if !snap.HasReport {
		t.Fatalf("store has no report after Open")
	}
	if snap.Report.RenderTime != "12s" {
		t.Errorf("RenderTime = %q, want 12s", snap.Report.RenderTime)
	}
	if len(snap.Report.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one entry", snap.Report.Warnings)
	}
}

func TestOpen_MissingFileRecordsError(t *testing.T) {
	store := &state.Store{}
	l := New(store)

	err := l.Open(filepath.Join(t.TempDir(), "gone.log"))
	if err == nil {
		t.Fatalf("Open returned nil error for missing file")
	}
	var accessErr *renderlog.FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("error %v is not a *FileAccessError", err)
	}

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Errorf("store.LastError = nil, want the open failure")
	}
	if snap.HasReport {
		t.Errorf("HasReport = true, want false; parse must not run on failed read")
	}
	// A failed Open does not make the bad path current.
	if l.Path() != "" {
		t.Errorf("Path() = %q, want empty", l.Path())
	}
}

func TestCheckChanged(t *testing.T) {
	store := &state.Store{}
	l := New(store)

	path := filepath.Join(t.TempDir(), "render.log")
	writeLog(t, path, "00:00:05  100MB |\n")
	if err := l.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Unchanged file: no reload.
	changed, err := l.CheckChanged()
	if err != nil {
		t.Fatalf("CheckChanged: %v", err)
	}
	if changed {
		t.Errorf("CheckChanged = true for unchanged file")
	}

	// Append a sample; the size change triggers a reload.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("00:00:10  150MB |\nrender done in 9s\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Some filesystems have coarse mtime resolution; size differs anyway.
	_ = os.Chtimes(path, time.Now(), time.Now())

	changed, err = l.CheckChanged()
	if err != nil {
		t.Fatalf("CheckChanged after append: %v", err)
	}
	if !changed {
		t.Fatalf("CheckChanged = false after append")
	}

	snap := store.Snapshot()
	if snap.Report.Memory.Len() != 2 {
		t.Errorf("Memory.Len() = %d, want 2", snap.Report.Memory.Len())
	}
	if snap.Report.RenderTime != "9s" {
		t.Errorf("RenderTime = %q, want 9s", snap.Report.RenderTime)
	}
}

func TestCheckChanged_Paused(t *testing.T) {
	store := &state.Store{}
	l := New(store)

	path := filepath.Join(t.TempDir(), "render.log")
	writeLog(t, path, "00:00:05  100MB |\n")
	if err := l.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	l.SetPaused(true)
	writeLog(t, path, "00:00:05  100MB |\nrender done in 4s\n")

	changed, err := l.CheckChanged()
	if err != nil || changed {
		t.Fatalf("CheckChanged while paused = %v, %v; want false, nil", changed, err)
	}

	l.SetPaused(false)
	changed, err = l.CheckChanged()
	if err != nil {
		t.Fatalf("CheckChanged after resume: %v", err)
	}
	if !changed {
		t.Fatalf("CheckChanged = false after resume, want reload")
	}
}

func TestCheckChanged_NothingOpen(t *testing.T) {
	l := New(&state.Store{})
	changed, err := l.CheckChanged()
	if err != nil || changed {
		t.Fatalf("CheckChanged = %v, %v; want false, nil", changed, err)
	}
}

func TestCheckChanged_FileRemoved(t *testing.T) {
	store := &state.Store{}
	l := New(store)

	path := filepath.Join(t.TempDir(), "render.log")
	writeLog(t, path, "render done in 3s\n")
	if err := l.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if _, err := l.CheckChanged(); err == nil {
		t.Fatalf("CheckChanged returned nil error for removed file")
	}

	// Last good report survives the failure.
	snap := store.Snapshot()
	if !snap.HasReport || snap.Report.RenderTime != "3s" {
		t.Errorf("previous report lost: %+v", snap.Report)
	}
	if snap.LastError == nil {
		t.Errorf("LastError = nil, want stat failure")
	}
}
