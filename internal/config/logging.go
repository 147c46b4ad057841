package config

import (
	"github.com/rs/zerolog"

	"github.com/rshade/uconv/internal/logging"
)

// ToLoggingConfig converts the logging section into logging.Config.
//
//   - Level and Format are copied directly
//   - A non-empty File selects file output; otherwise output goes to stderr
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// ToAuditConfig converts the audit subsection into logging.AuditLoggerConfig.
func (lc *LoggingConfig) ToAuditConfig() logging.AuditLoggerConfig {
	return logging.AuditLoggerConfig{
		Enabled: lc.Audit.Enabled,
		File:    lc.Audit.File,
	}
}

// GetLoggingConfig returns a copy of the global logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	cfg := GetGlobalConfig()
	return cfg.Logging
}

func zerologLevel(level string) (zerolog.Level, error) {
	return zerolog.ParseLevel(level)
}
