package main

import (
	"github.com/spf13/cobra"

	"mlstdb/internal/failures"
	"mlstdb/internal/logging"
	"mlstdb/internal/report"
	"mlstdb/internal/species"
	"mlstdb/internal/translation"
)

// resolution is the outcome of one report lookup.
type resolution struct {
	ReportPath string
	Species    species.Result
	Database   string
	Table      translation.Table
}

// resolve loads the translation table before touching the report, then
// extracts the best species and translates its key.
func (c *commandContext) resolve(cmd *cobra.Command, reportPath string) (resolution, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return resolution{}, err
	}
	logger, err := c.logger(cmd, cfg)
	if err != nil {
		return resolution{}, err
	}
	logger = logging.NewComponentLogger(logger, "resolve")

	table, err := loadTable(cfg, logger)
	if err != nil {
		logger.Debug("translation table unavailable", logging.Error(err), logging.String(logging.FieldErrorKind, failures.Kind(err)))
		return resolution{}, err
	}

	rep, err := report.Load(reportPath)
	if err != nil {
		logger.Debug("report unavailable", logging.Error(err), logging.String(logging.FieldErrorKind, failures.Kind(err)))
		return resolution{}, err
	}

	res, err := species.Extract(rep, speciesOptions(cfg))
	if err != nil {
		logger.Debug("species extraction failed", logging.Error(err), logging.String(logging.FieldErrorKind, failures.Kind(err)))
		return resolution{}, err
	}
	if len(res.Discarded) > 0 {
		logger.Info("discarded ambiguous hits",
			logging.Int("count", len(res.Discarded)),
			logging.Any("labels", res.Discarded),
		)
	}
	if len(res.Candidates) > 1 && res.Candidates[1].Score == res.Score {
		logging.WarnWithContext(logger, "best score shared by several species; picked first label alphabetically", "species_tie",
			logging.String("species", res.Label),
			logging.String("runner_up", res.Candidates[1].Label),
			logging.Float64("score", res.Score),
		)
	}

	database := table.Resolve(res.Key)
	logger.Info("resolved species",
		logging.String("species", res.Label),
		logging.String("species_key", res.Key),
		logging.String("score_row", res.ScoreRow),
		logging.Float64("score", res.Score),
		logging.String("database", database),
	)

	return resolution{
		ReportPath: reportPath,
		Species:    res,
		Database:   database,
		Table:      table,
	}, nil
}
