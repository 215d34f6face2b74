package app

import (
	"context"
	"time"

	"renlog/internal/loader"
)

const defaultWatchInterval = 2 * time.Second

// StartWatcher launches a background goroutine that re-reads the current
// log file whenever it changes on disk. It returns immediately. Render
// tools append to their session log while a render runs, so this keeps the
// report current without any user action.
func StartWatcher(ctx context.Context, files *loader.Loader, interval time.Duration) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			// Failures are recorded in the store for the UI to
			// surface; the watcher itself keeps going.
			_, _ = files.CheckChanged()
		}
	}()
}
