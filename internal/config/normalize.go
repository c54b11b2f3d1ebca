package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTranslation(); err != nil {
		return err
	}
	c.normalizeReport()
	c.normalizeLogging()
	return nil
}

// The default table path stays relative to the working directory so the
// bundled fallback still applies.
func (c *Config) normalizeTranslation() error {
	path := strings.TrimSpace(c.Translation.Path)
	if path == "" || path == defaultTranslationPath {
		c.Translation.Path = defaultTranslationPath
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("translation.path: %w", err)
	}
	c.Translation.Path = expanded
	return nil
}

// The marker is matched verbatim, surrounding spaces included.
func (c *Config) normalizeReport() {
	if c.Report.AmbiguousMarker == "" {
		c.Report.AmbiguousMarker = defaultAmbiguousMarker
	}
	c.Report.ScoreField = strings.TrimSpace(c.Report.ScoreField)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
