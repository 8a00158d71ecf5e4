package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/warden-sh/warden/internal/pathutil"
)

// Dir returns the warden configuration directory path.
// By default, this is ~/.config/warden. If the XDG_CONFIG_HOME environment
// variable is set, it uses $XDG_CONFIG_HOME/warden instead.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return filepath.Join(pathutil.ExpandHome(base), "warden")
}

// EnsureDir creates the warden configuration directory if it doesn't exist.
// It uses 0700 permissions (user-only access).
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// Path returns the full path to the configuration file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}
