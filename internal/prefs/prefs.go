// Package prefs handles renlog user preferences persistence.
// Preferences are stored in ~/.config/renlog/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for renlog.
type Prefs struct {
	Theme  string   `toml:"theme"`
	Recent []string `toml:"recent"`
}

const (
	defaultPrefsPath = "~/.config/renlog/prefs.toml"
	maxRecent        = 10
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Preferences are best-effort:
// any failure falls back to the zero value rather than blocking startup.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Prefs{}
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Prefs{}
	}

	var prefs Prefs
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{}
	}

	prefs.Theme = strings.TrimSpace(prefs.Theme)
	prefs.Recent = cleanRecent(prefs.Recent)
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// Remember puts path at the front of the recent-files list, dropping any
// earlier occurrence and capping the list length.
func (p *Prefs) Remember(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}

	recent := make([]string, 0, len(p.Recent)+1)
	recent = append(recent, path)
	for _, existing := range p.Recent {
		if existing == path {
			continue
		}
		recent = append(recent, existing)
	}
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}
	p.Recent = recent
}

func cleanRecent(recent []string) []string {
	out := make([]string, 0, len(recent))
	seen := make(map[string]struct{}, len(recent))
	for _, path := range recent {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
		if len(out) == maxRecent {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
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
