package app

import (
	"context"
	"fmt"
	"time"

	"renlog/internal/config"
	"renlog/internal/loader"
	"renlog/internal/prefs"
	"renlog/internal/state"
	"renlog/internal/ui"
)

// Options configure the renlog application.
type Options struct {
	LogPath      string // log file to open at startup (optional)
	ConfigPath   string // empty uses default ~/.config/renlog/config.toml
	PrefsPath    string // empty uses default ~/.config/renlog/prefs.toml
	WatchSeconds int    // seconds between file checks; zero uses config/default
}

// Run boots the renlog TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	files := loader.New(store)

	// An explicit command-line path must be valid up front; the in-app
	// open prompt handles bad paths interactively instead.
	if opts.LogPath != "" {
		if err := cfg.AllowedPath(opts.LogPath); err != nil {
			return err
		}
		if err := files.Open(opts.LogPath); err != nil {
			return err
		}
		userPrefs.Remember(opts.LogPath)
		_ = prefs.Save(opts.PrefsPath, userPrefs)
	}

	interval := cfg.WatchInterval
	if opts.WatchSeconds > 0 {
		interval = time.Duration(opts.WatchSeconds) * time.Second
	}

	StartWatcher(ctx, files, interval)

	themeName := userPrefs.Theme
	if themeName == "" {
		themeName = cfg.Theme
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Loader:    files,
		Store:     store,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		WatchTick: interval,
		ThemeName: themeName,
	}
	return ui.Run(uiOpts)
}
