package config

import "time"

// Config represents the complete configuration for paneshell.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Animation controls the content visibility transition.
	Animation AnimationConfig `mapstructure:"animation" yaml:"animation" toml:"animation" json:"animation"`
	// Panes controls pane creation and restacking.
	Panes PanesConfig `mapstructure:"panes" yaml:"panes" toml:"panes" json:"panes"`
	// Downloads controls download naming and the downloads log.
	Downloads DownloadsConfig `mapstructure:"downloads" yaml:"downloads" toml:"downloads" json:"downloads"`
	Archive   ArchiveConfig   `mapstructure:"archive" yaml:"archive" toml:"archive" json:"archive"`
	Eval      EvalConfig      `mapstructure:"eval" yaml:"eval" toml:"eval" json:"eval"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	MaxAge int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// AnimationConfig tunes the visibility toggle.
type AnimationConfig struct {
	Steps       int `mapstructure:"steps" yaml:"steps" toml:"steps" json:"steps" jsonschema:"minimum=1,maximum=60"`
	StepDelayMs int `mapstructure:"step_delay_ms" yaml:"step_delay_ms" toml:"step_delay_ms" json:"step_delay_ms" jsonschema:"minimum=0,maximum=1000"`
}

// StepDelay returns the pause between two animation frames.
func (c AnimationConfig) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMs) * time.Millisecond
}

// PanesConfig holds pane lifecycle settings.
type PanesConfig struct {
	// DefaultContentURL is loaded into a content slot that has no address yet.
	DefaultContentURL string `mapstructure:"default_content_url" yaml:"default_content_url" toml:"default_content_url" json:"default_content_url"`
	// FloatingSettleMs is the pause between closing and recreating the floating panes.
	FloatingSettleMs int `mapstructure:"floating_settle_ms" yaml:"floating_settle_ms" toml:"floating_settle_ms" json:"floating_settle_ms" jsonschema:"minimum=0"`
	// RecreateSettleMs is the pause between closing and recreating a content pane.
	RecreateSettleMs int `mapstructure:"recreate_settle_ms" yaml:"recreate_settle_ms" toml:"recreate_settle_ms" json:"recreate_settle_ms" jsonschema:"minimum=0"`
}

func (c PanesConfig) FloatingSettle() time.Duration {
	return time.Duration(c.FloatingSettleMs) * time.Millisecond
}

func (c PanesConfig) RecreateSettle() time.Duration {
	return time.Duration(c.RecreateSettleMs) * time.Millisecond
}

// DownloadsConfig holds download interception settings.
type DownloadsConfig struct {
	// BundleFilename names multi-file bundle downloads.
	BundleFilename string `mapstructure:"bundle_filename" yaml:"bundle_filename" toml:"bundle_filename" json:"bundle_filename"`
	MaxEntries     int    `mapstructure:"max_entries" yaml:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=1"`
}

// ArchiveConfig holds content archive settings.
type ArchiveConfig struct {
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=1"`
}

// EvalConfig holds script evaluation settings.
type EvalConfig struct {
	DefaultTimeoutSeconds int `mapstructure:"default_timeout_seconds" yaml:"default_timeout_seconds" toml:"default_timeout_seconds" json:"default_timeout_seconds" jsonschema:"minimum=1"`
}

func (c EvalConfig) DefaultTimeout() time.Duration {
	return time.Duration(c.DefaultTimeoutSeconds) * time.Second
}
