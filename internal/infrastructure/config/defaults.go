package config

import (
	"github.com/bnema/paneshell/internal/domain/download"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/domain/layout"
)

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogAgeDays = 7 // days
	defaultMaxLogSizeMB  = 10
	defaultMaxBackups    = 3

	// Panes defaults
	defaultContentURL        = "https://claude.ai/new"
	defaultFloatingSettleMs  = 10
	defaultRecreateSettleMs  = 100
	defaultEvalTimeoutSecond = 10
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for paneshell.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			MaxAge:        defaultMaxLogAgeDays,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxBackups,
		},
		Animation: AnimationConfig{
			Steps:       layout.DefaultAnimationSteps,
			StepDelayMs: int(layout.DefaultStepDelay.Milliseconds()),
		},
		Panes: PanesConfig{
			DefaultContentURL: defaultContentURL,
			FloatingSettleMs:  defaultFloatingSettleMs,
			RecreateSettleMs:  defaultRecreateSettleMs,
		},
		Downloads: DownloadsConfig{
			BundleFilename: download.DefaultBundleFilename,
			MaxEntries:     entity.MaxDownloadRecords,
		},
		Archive: ArchiveConfig{
			MaxEntries: entity.MaxArchiveRecords,
		},
		Eval: EvalConfig{
			DefaultTimeoutSeconds: defaultEvalTimeoutSecond,
		},
	}
}

// New returns a new default configuration instance.
func New() *Config {
	return DefaultConfig()
}
