package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/paneshell/internal/domain/download"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validatePanes(config)...)
	validationErrors = append(validationErrors, validateDownloads(config)...)
	validationErrors = append(validationErrors, validateEval(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, strings.ToLower(config.Logging.Level)) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of %v (got: %s)", validLevels, config.Logging.Level))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1 when file logging is enabled")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateAnimation(config *Config) []string {
	var validationErrors []string
	if config.Animation.Steps < 1 || config.Animation.Steps > 60 {
		validationErrors = append(validationErrors, "animation.steps must be between 1 and 60")
	}
	if config.Animation.StepDelayMs < 0 || config.Animation.StepDelayMs > 1000 {
		validationErrors = append(validationErrors, "animation.step_delay_ms must be between 0 and 1000")
	}
	return validationErrors
}

func validatePanes(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Panes.DefaultContentURL) == "" {
		validationErrors = append(validationErrors, "panes.default_content_url cannot be empty")
	}
	if config.Panes.FloatingSettleMs < 0 {
		validationErrors = append(validationErrors, "panes.floating_settle_ms must be non-negative")
	}
	if config.Panes.RecreateSettleMs < 0 {
		validationErrors = append(validationErrors, "panes.recreate_settle_ms must be non-negative")
	}
	return validationErrors
}

func validateDownloads(config *Config) []string {
	var validationErrors []string
	name := config.Downloads.BundleFilename
	if name == "" || download.SanitizeFilename(name) != name {
		validationErrors = append(validationErrors,
			fmt.Sprintf("downloads.bundle_filename must be a plain file name (got: %q)", name))
	}
	if config.Downloads.MaxEntries < 1 {
		validationErrors = append(validationErrors, "downloads.max_entries must be at least 1")
	}
	if config.Archive.MaxEntries < 1 {
		validationErrors = append(validationErrors, "archive.max_entries must be at least 1")
	}
	return validationErrors
}

func validateEval(config *Config) []string {
	if config.Eval.DefaultTimeoutSeconds < 1 {
		return []string{"eval.default_timeout_seconds must be at least 1"}
	}
	return nil
}
