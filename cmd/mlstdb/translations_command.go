package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlstdb/internal/logging"
)

type translationEntry struct {
	Key      string `json:"key"`
	Database string `json:"database"`
}

func newTranslationsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "translations",
		Short: "List the species translation table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd, cfg)
			if err != nil {
				return err
			}
			table, err := loadTable(cfg, logging.NewComponentLogger(logger, "translations"))
			if err != nil {
				return err
			}

			entries := make([]translationEntry, 0, table.Len())
			for _, key := range table.Keys() {
				database, _ := table.Lookup(key)
				entries = append(entries, translationEntry{Key: key, Database: database})
			}
			if asJSON {
				return writeJSON(cmd, map[string]any{
					"source":  table.Source(),
					"entries": entries,
				})
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Key, entry.Database})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Source: %s\n", table.Source())
			fmt.Fprintln(w, renderTable(w, []string{"Key", "Database"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
