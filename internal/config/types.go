// Package config provides configuration for the warden engine and CLI.
// Settings are read from a YAML file at $XDG_CONFIG_HOME/warden/config.yaml
// with WARDEN_* environment variable overrides.
package config

// Config is the top-level warden configuration.
type Config struct {
	// DefaultTimeout is the execution bound in seconds applied when a caller
	// does not supply one. Must be positive.
	DefaultTimeout int `mapstructure:"default_timeout" yaml:"default_timeout"`

	// CacheCapacity bounds the command existence cache. Must be positive.
	CacheCapacity int `mapstructure:"cache_capacity" yaml:"cache_capacity"`

	// FunctionCacheCapacity bounds the shell-function existence cache.
	// Zero means "use CacheCapacity".
	FunctionCacheCapacity int `mapstructure:"function_cache_capacity" yaml:"function_cache_capacity,omitempty"`

	// PerformanceMode disables danger scanning on the evaluate path.
	PerformanceMode bool `mapstructure:"performance_mode" yaml:"performance_mode"`

	// Shell is the POSIX-compatible shell used to execute vetted command
	// lines. It must accept `-o pipefail -c`.
	Shell string `mapstructure:"shell" yaml:"shell"`

	// Log contains logging settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File is the log file path. Empty selects the default under the XDG
	// state directory; the sentinel "none" disables file logging.
	File string `mapstructure:"file" yaml:"file,omitempty"`

	// Level is one of: debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
}
