package state

import (
	"errors"
	"sync"
	"testing"

	"renlog/internal/renderlog"
)

func TestStore_ZeroValueSnapshot(t *testing.T) {
	var store Store
	snap := store.Snapshot()
	if snap.HasReport || snap.Path != "" || snap.LastError != nil {
		t.Fatalf("zero store snapshot = %+v, want empty", snap)
	}
}

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var store Store
	lines := []string{"render done in 5s", "WARNING: x"}
	report := renderlog.Parse(lines)

	store.Update("/renders/a.log", lines, report, nil)

	snap := store.Snapshot()
	if !snap.HasReport {
		t.Fatalf("HasReport = false after successful update")
	}
	if snap.Path != "/renders/a.log" {
		t.Errorf("Path = %q", snap.Path)
	}
	if snap.Report.RenderTime != "5s" {
		t.Errorf("RenderTime = %q, want 5s", snap.Report.RenderTime)
	}
	if snap.LoadedAt.IsZero() {
		t.Errorf("LoadedAt not set")
	}

	// Mutating the snapshot must not leak back into the store.
	snap.Lines[0] = "mutated"
	snap.Report.Warnings[0] = "mutated"
	again := store.Snapshot()
	if again.Lines[0] != "render done in 5s" || again.Report.Warnings[0] != "WARNING: x" {
		t.Errorf("snapshot mutation leaked into store: %+v", again)
	}
}

func TestStore_ErrorKeepsPreviousData(t *testing.T) {
	var store Store
	lines := []string{"render done in 5s"}
	store.Update("/renders/a.log", lines, renderlog.Parse(lines), nil)

	loadErr := errors.New("disk detached")
	store.Update("/renders/a.log", nil, renderlog.Report{}, loadErr)

	snap := store.Snapshot()
	if !errors.Is(snap.LastError, loadErr) {
		t.Errorf("LastError = %v, want %v", snap.LastError, loadErr)
	}
	if !snap.HasReport || snap.Report.RenderTime != "5s" {
		t.Errorf("previous report lost on error: %+v", snap.Report)
	}
	if len(snap.Lines) != 1 {
		t.Errorf("previous lines lost on error: %v", snap.Lines)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var store Store
	lines := []string{"00:00:05  100MB |"}
	report := renderlog.Parse(lines)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Update("/renders/a.log", lines, report, nil)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := store.Snapshot(); got.Report.Memory.Len() != 1 {
		t.Fatalf("Memory.Len() = %d, want 1", got.Report.Memory.Len())
	}
}
