// Package config loads renlog's TOML configuration.
//
// The config file lives at ~/.config/renlog/config.toml by default and is
// entirely optional; a missing file yields built-in defaults. It controls
// which file extensions the open prompt accepts, the file-watch cadence,
// and the fallback theme name.
package config
