package config

import (
	"fmt"
	"strings"
)

const (
	minExportSize = 8
	maxExportSize = 512
	maxTimeout    = 300
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateHTTP(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateExport(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateCache(config *Config) []string {
	if strings.TrimSpace(config.Cache.Dir) == "" {
		return []string{"cache.dir must not be empty"}
	}
	return nil
}

func validateHTTP(config *Config) []string {
	var validationErrors []string
	if config.HTTP.TimeoutSeconds < 1 || config.HTTP.TimeoutSeconds > maxTimeout {
		validationErrors = append(validationErrors, fmt.Sprintf("http.timeout_seconds must be between 1 and %d", maxTimeout))
	}
	if strings.TrimSpace(config.HTTP.UserAgent) == "" {
		validationErrors = append(validationErrors, "http.user_agent must not be empty")
	}
	if config.HTTP.MaxIconBytes <= 0 {
		validationErrors = append(validationErrors, "http.max_icon_bytes must be positive")
	}
	if config.HTTP.MaxDocumentBytes <= 0 {
		validationErrors = append(validationErrors, "http.max_document_bytes must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	if config.Logging.EnableFileLog {
		if config.Logging.MaxSizeMB < 1 {
			validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
		}
		if config.Logging.MaxBackups < 0 {
			validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
		}
		if config.Logging.MaxAgeDays < 0 {
			validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
		}
	}
	return validationErrors
}

func validateExport(config *Config) []string {
	if config.Export.Size < minExportSize || config.Export.Size > maxExportSize {
		return []string{fmt.Sprintf("export.size must be between %d and %d", minExportSize, maxExportSize)}
	}
	return nil
}
