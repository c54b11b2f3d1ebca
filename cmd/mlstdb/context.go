package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mlstdb/internal/config"
	"mlstdb/internal/failures"
	"mlstdb/internal/logging"
	"mlstdb/internal/species"
	"mlstdb/internal/translation"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// logger builds the stderr logger for one invocation, tagged with a fresh run
// ID. The --log-level flag wins over the configured level.
func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		level = strings.TrimSpace(*c.logLevelFlag)
		if !config.ValidLogLevel(level) {
			return nil, fmt.Errorf("%w: --log-level must be debug, info, warn, or error, got %q", failures.ErrConfiguration, level)
		}
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	ctx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	cmd.SetContext(ctx)
	return logging.WithContext(ctx, logger), nil
}

func speciesOptions(cfg *config.Config) species.Options {
	return species.Options{
		AmbiguousMarker: cfg.Report.AmbiguousMarker,
		ScoreField:      cfg.Report.ScoreField,
		ScoreRow:        cfg.Report.ScoreRow,
	}
}

func loadTable(cfg *config.Config, logger *slog.Logger) (translation.Table, error) {
	table, err := translation.Load(cfg.Translation.Path)
	if err != nil {
		return translation.Table{}, err
	}
	logger.Debug("loaded translation table",
		logging.String("source", table.Source()),
		logging.Int("entries", table.Len()),
	)
	return table, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
