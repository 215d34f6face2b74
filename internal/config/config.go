package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings renlog reads at startup.
type Config struct {
	// LogExtensions lists the file extensions the open prompt accepts.
	LogExtensions []string
	// WatchInterval is how often the loaded file is checked for growth.
	WatchInterval time.Duration
	// Theme names the fallback color theme when prefs carry none.
	Theme string
}

const (
	defaultConfigPath    = "~/.config/renlog/config.toml"
	defaultWatchInterval = 2 * time.Second
)

var defaultLogExtensions = []string{".log"}

// Load locates and parses the renlog config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogExtensions: append([]string(nil), defaultLogExtensions...),
		WatchInterval: defaultWatchInterval,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogExtensions        []string `toml:"log_extensions"`
		WatchIntervalSeconds int      `toml:"watch_interval_seconds"`
		Theme                string   `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if exts := normalizeExtensions(raw.LogExtensions); len(exts) > 0 {
		cfg.LogExtensions = exts
	}
	if raw.WatchIntervalSeconds > 0 {
		cfg.WatchInterval = time.Duration(raw.WatchIntervalSeconds) * time.Second
	}
	cfg.Theme = strings.TrimSpace(raw.Theme)

	return cfg, nil
}

// AllowedPath reports whether path names an existing regular file with a
// recognized log extension. This validation sits in front of the parsing
// core; the core itself assumes a readable path.
func (c Config) AllowedPath(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return fmt.Errorf("no file selected")
	}

	ext := strings.ToLower(filepath.Ext(trimmed))
	if !c.allowedExtension(ext) {
		return fmt.Errorf("not a %s file: %s", strings.Join(c.LogExtensions, "/"), trimmed)
	}

	info, err := os.Stat(trimmed)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no such file: %s", trimmed)
		}
		return fmt.Errorf("stat %s: %w", trimmed, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", trimmed)
	}
	return nil
}

func (c Config) allowedExtension(ext string) bool {
	for _, allowed := range c.LogExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
