package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
)

type rankEntry struct {
	Rank     int      `json:"rank"`
	Label    string   `json:"label"`
	Key      string   `json:"key"`
	Database string   `json:"database"`
	Score    *float64 `json:"score"`
	Selected bool     `json:"selected"`
}

type rankOutput struct {
	Report      string      `json:"report"`
	ScoreRow    string      `json:"score_row"`
	Species     string      `json:"species"`
	Database    string      `json:"database"`
	Translation string      `json:"translation_source"`
	Candidates  []rankEntry `json:"candidates"`
	Discarded   []string    `json:"discarded"`
}

func newRankCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rank <kmerfinder_res>",
		Short: "List every specific species hit ordered by score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := ctx.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			out := buildRankOutput(res)
			if asJSON {
				return writeJSON(cmd, out)
			}

			rows := make([][]string, 0, len(out.Candidates))
			for _, entry := range out.Candidates {
				marker := ""
				if entry.Selected {
					marker = "*"
				}
				rows = append(rows, []string{
					strconv.Itoa(entry.Rank),
					marker,
					entry.Label,
					entry.Key,
					entry.Database,
					formatScore(entry.Score),
				})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, renderTable(w,
				[]string{"#", "", "Species", "Key", "Database", "Score"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			if len(out.Discarded) > 0 {
				fmt.Fprintf(w, "Discarded %d ambiguous hit(s)\n", len(out.Discarded))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func buildRankOutput(res resolution) rankOutput {
	out := rankOutput{
		Report:      res.ReportPath,
		ScoreRow:    res.Species.ScoreRow,
		Species:     res.Species.Label,
		Database:    res.Database,
		Translation: res.Table.Source(),
		Candidates:  make([]rankEntry, 0, len(res.Species.Candidates)),
		Discarded:   append([]string{}, res.Species.Discarded...),
	}
	for i, candidate := range res.Species.Candidates {
		entry := rankEntry{
			Rank:     i + 1,
			Label:    candidate.Label,
			Key:      candidate.Key,
			Selected: candidate.Label == res.Species.Label,
		}
		if candidate.Key != "" {
			entry.Database = res.Table.Resolve(candidate.Key)
		}
		if !math.IsNaN(candidate.Score) && !math.IsInf(candidate.Score, 0) {
			score := candidate.Score
			entry.Score = &score
		}
		out.Candidates = append(out.Candidates, entry)
	}
	return out
}

func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
