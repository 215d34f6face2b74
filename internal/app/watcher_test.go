package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"renlog/internal/loader"
	"renlog/internal/state"
)

func TestStartWatcher_PicksUpAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.log")
	if err := os.WriteFile(path, []byte("00:00:05  100MB |\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store := &state.Store{}
	files := loader.New(store)
	if err := files.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartWatcher(ctx, files, 10*time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("render done in 7s\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		if store.Snapshot().Report.RenderTime == "7s" {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("watcher never picked up appended render time")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStartWatcher_StopsOnCancel(t *testing.T) {
	store := &state.Store{}
	files := loader.New(store)

	ctx, cancel := context.WithCancel(context.Background())
	StartWatcher(ctx, files, time.Millisecond)
	cancel()

	// Nothing observable to assert beyond not hanging or panicking.
	time.Sleep(20 * time.Millisecond)
}
