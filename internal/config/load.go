package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from path, falling back to Path() when path is
// empty. A missing file is not an error: defaults apply, still subject to
// WARDEN_* environment overrides (e.g. WARDEN_DEFAULT_TIMEOUT,
// WARDEN_LOG_LEVEL). A file that exists but cannot be parsed or validated is
// an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("WARDEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// setDefaults registers the default for every key so that viper's env
// override mechanism sees them all.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("default_timeout", def.DefaultTimeout)
	v.SetDefault("cache_capacity", def.CacheCapacity)
	v.SetDefault("function_cache_capacity", def.FunctionCacheCapacity)
	v.SetDefault("performance_mode", def.PerformanceMode)
	v.SetDefault("shell", def.Shell)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
}
