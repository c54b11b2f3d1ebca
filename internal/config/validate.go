package config

import (
	"fmt"
	"strings"

	"mlstdb/internal/failures"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateReport() error {
	if strings.TrimSpace(c.Report.AmbiguousMarker) == "" {
		return fmt.Errorf("%w: report.ambiguous_marker must contain a non-space character", failures.ErrConfiguration)
	}
	if c.Report.ScoreRow < 0 {
		return fmt.Errorf("%w: report.score_row must be zero or positive", failures.ErrConfiguration)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", failures.ErrConfiguration, c.Logging.Format)
	}
	if !ValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level must be debug, info, warn, or error, got %q", failures.ErrConfiguration, c.Logging.Level)
	}
	return nil
}

// ValidLogLevel reports whether level names a supported log level.
func ValidLogLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
