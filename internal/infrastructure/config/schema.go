// Package config loads favicache configuration with Viper.
package config

// Config represents the complete configuration for favicache.
type Config struct {
	// Cache controls where resolved icons are stored.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache" toml:"cache" json:"cache"`
	// HTTP tunes the client used for documents and icons.
	HTTP HTTPConfig `mapstructure:"http" yaml:"http" toml:"http" json:"http"`
	// Logging controls log level, format and the optional log file.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Export holds defaults for PNG export.
	Export ExportConfig `mapstructure:"export" yaml:"export" toml:"export" json:"export"`
}

// CacheConfig holds the icon cache location.
type CacheConfig struct {
	// Dir is the flat directory of <sha256>.ico files. Empty means $XDG_DATA_HOME/favicache/icons.
	Dir string `mapstructure:"dir" yaml:"dir" toml:"dir" json:"dir" jsonschema:"description=Icon cache directory; empty uses the XDG data directory"`
}

// HTTPConfig tunes outgoing requests.
type HTTPConfig struct {
	TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" jsonschema:"minimum=1,maximum=300"`
	UserAgent        string `mapstructure:"user_agent" yaml:"user_agent" toml:"user_agent" json:"user_agent"`
	MaxIconBytes     int64  `mapstructure:"max_icon_bytes" yaml:"max_icon_bytes" toml:"max_icon_bytes" json:"max_icon_bytes" jsonschema:"minimum=1"`
	MaxDocumentBytes int64  `mapstructure:"max_document_bytes" yaml:"max_document_bytes" toml:"max_document_bytes" json:"max_document_bytes" jsonschema:"minimum=1"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// ExportConfig holds PNG export defaults.
type ExportConfig struct {
	// Size is the edge length in pixels of exported PNGs.
	Size int `mapstructure:"size" yaml:"size" toml:"size" json:"size" jsonschema:"minimum=8,maximum=512"`
}
