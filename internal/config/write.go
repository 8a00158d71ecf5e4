package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigTemplate is the commented YAML written by WriteDefaultConfig.
// Its values must stay in sync with DefaultConfig (pinned by a test).
const defaultConfigTemplate = `# warden configuration
#
# Execution bound (seconds) applied when the caller does not supply one.
default_timeout: 30

# Capacity of the command existence cache. The function existence cache
# shares this bound unless function_cache_capacity is set.
cache_capacity: 100

# Skip danger scanning on the evaluate path. Blocked metacharacters and the
# run path are unaffected.
performance_mode: false

# POSIX-compatible shell used to execute vetted command lines.
# Must accept '-o pipefail -c'.
shell: bash

log:
  # Log file path. Defaults to ~/.local/state/warden/warden.log;
  # set to none to disable file logging.
  # file: none
  # One of: debug, info, warn, error.
  level: info
`

// WriteDefaultConfig creates the default configuration file with helpful
// comments. If the file already exists, it returns nil without overwriting.
// The config directory is created if it doesn't exist; the file is written
// with 0600 permissions.
func WriteDefaultConfig() error {
	path := Path()

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML, for `warden config show` and tests.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// ParseTemplate parses YAML bytes into a Config without applying defaults.
// Used to verify the written template round-trips.
func ParseTemplate(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// DefaultTemplate returns the commented YAML template bytes.
func DefaultTemplate() []byte {
	return []byte(defaultConfigTemplate)
}
