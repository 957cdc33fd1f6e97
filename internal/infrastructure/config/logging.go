package config

import "github.com/bnema/paneshell/internal/logging"

// LoggerConfig converts the logging section into a logging.Config.
func (c LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Level)
	if c.Format == "json" || c.Format == "console" {
		cfg.Format = c.Format
	}
	if c.EnableFileLog && c.LogDir != "" {
		cfg.File = &logging.FileConfig{
			Dir:        c.LogDir,
			MaxSizeMB:  c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAgeDays: c.MaxAge,
			Compress:   c.Compress,
		}
	}
	return cfg
}
