package config

import "fmt"

// validLogLevels defines the allowed log level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that all fields of cfg contain usable values.
// Returns nil if the config is valid, or an error naming the bad field.
func Validate(cfg *Config) error {
	if cfg.DefaultTimeout <= 0 {
		return fmt.Errorf("default_timeout: must be positive, got %d", cfg.DefaultTimeout)
	}
	if cfg.CacheCapacity <= 0 {
		return fmt.Errorf("cache_capacity: must be positive, got %d", cfg.CacheCapacity)
	}
	if cfg.FunctionCacheCapacity < 0 {
		return fmt.Errorf("function_cache_capacity: must be non-negative, got %d", cfg.FunctionCacheCapacity)
	}
	if cfg.Shell == "" {
		return fmt.Errorf("shell: must not be empty")
	}
	if cfg.Log.Level != "" && !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level: must be one of debug, info, warn, error; got %q", cfg.Log.Level)
	}
	return nil
}
