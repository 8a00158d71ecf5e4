package config

// Default values applied when the config file or a key is absent.
const (
	DefaultTimeoutSeconds = 30
	DefaultCacheCapacity  = 100
	DefaultShell          = "bash"
	DefaultLogLevel       = "info"
)

// DefaultConfig returns a Config with all defaults populated.
func DefaultConfig() *Config {
	return &Config{
		DefaultTimeout:  DefaultTimeoutSeconds,
		CacheCapacity:   DefaultCacheCapacity,
		PerformanceMode: false,
		Shell:           DefaultShell,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
