package config

import "github.com/bnema/favicache/internal/infrastructure/favicon"

// Default configuration constants
const (
	defaultTimeoutSeconds = 10
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	defaultMaxLogSizeMB   = 10
	defaultMaxLogBackups  = 3
	defaultMaxLogAgeDays  = 7 // days
)

// DefaultConfig returns the default configuration. Directory fields are left
// empty and resolved against XDG paths at load time.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{},
		HTTP: HTTPConfig{
			TimeoutSeconds:   defaultTimeoutSeconds,
			UserAgent:        favicon.DefaultUserAgent,
			MaxIconBytes:     favicon.DefaultMaxIconBytes,
			MaxDocumentBytes: favicon.DefaultMaxDocumentBytes,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
			Compress:      true,
		},
		Export: ExportConfig{
			Size: favicon.NormalizedIconSize,
		},
	}
}
