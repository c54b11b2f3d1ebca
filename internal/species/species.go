package species

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mlstdb/internal/failures"
	"mlstdb/internal/report"
)

const component = "species"

const (
	// DefaultAmbiguousMarker marks non-specific classifications such as
	// "Escherichia sp. 4_1_40B".
	DefaultAmbiguousMarker = " sp. "
	// DefaultScoreField names the KmerFinder score attribute.
	DefaultScoreField = "Score"
	// DefaultScoreRow is the zero-based row holding the score when no hit
	// carries the named score field. KmerFinder emits Assembly, Num, Score.
	DefaultScoreRow = 2
)

// Options controls how hits are filtered and scored.
type Options struct {
	AmbiguousMarker string
	ScoreField      string
	ScoreRow        int
}

// DefaultOptions returns the options matching KmerFinder output.
func DefaultOptions() Options {
	return Options{
		AmbiguousMarker: DefaultAmbiguousMarker,
		ScoreField:      DefaultScoreField,
		ScoreRow:        DefaultScoreRow,
	}
}

// Candidate is a non-ambiguous hit with its parsed score. Key is empty when
// the label cannot be normalized.
type Candidate struct {
	Label string  `json:"label"`
	Key   string  `json:"key"`
	Score float64 `json:"score"`
}

// Result describes the selected species.
type Result struct {
	Label      string
	Key        string
	Score      float64
	ScoreRow   string
	Candidates []Candidate
	Discarded  []string
}

// IsAmbiguous reports whether label denotes a non-specific classification.
func IsAmbiguous(label, marker string) bool {
	return strings.Contains(label, marker)
}

// Extract selects the best-scoring non-ambiguous hit of rep.
func Extract(rep report.Report, opts Options) (Result, error) {
	if opts.AmbiguousMarker == "" {
		opts.AmbiguousMarker = DefaultAmbiguousMarker
	}
	if opts.ScoreRow < 0 {
		return Result{}, failures.Wrap(failures.ErrConfiguration, component, "extract",
			fmt.Sprintf("score row %d is negative", opts.ScoreRow), nil)
	}

	var discarded []string
	for _, label := range rep.Labels() {
		if IsAmbiguous(label, opts.AmbiguousMarker) {
			discarded = append(discarded, label)
		}
	}
	if len(discarded) >= rep.Len() {
		return Result{}, failures.Wrap(failures.ErrAmbiguousSpecies, component, "extract",
			fmt.Sprintf("%d of %d hits are ambiguous", len(discarded), rep.Len()), nil)
	}

	retained := rep.Filter(func(h report.Hit) bool {
		return !IsAmbiguous(h.Label, opts.AmbiguousMarker)
	})

	row, err := scoreRow(retained, opts)
	if err != nil {
		return Result{}, err
	}

	candidates := make([]Candidate, 0, retained.Len())
	for _, hit := range retained.Hits {
		score, err := hit.Float(row)
		if err != nil {
			return Result{}, err
		}
		key, _ := NormalizeKey(hit.Label)
		candidates = append(candidates, Candidate{Label: hit.Label, Key: key, Score: score})
	}
	slices.SortStableFunc(candidates, compareCandidates)

	best := candidates[0]
	if math.IsNaN(best.Score) {
		return Result{}, failures.Wrap(failures.ErrMalformedReport, component, "extract",
			fmt.Sprintf("no hit has a numeric %q score", row), nil)
	}
	key, err := NormalizeKey(best.Label)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Label:      best.Label,
		Key:        key,
		Score:      best.Score,
		ScoreRow:   row,
		Candidates: candidates,
		Discarded:  discarded,
	}, nil
}

// scoreRow resolves which row holds the score: the named field when any hit
// carries it, otherwise the positional row.
func scoreRow(rep report.Report, opts Options) (string, error) {
	if opts.ScoreField != "" {
		for _, hit := range rep.Hits {
			if _, ok := hit.Field(opts.ScoreField); ok {
				return opts.ScoreField, nil
			}
		}
	}
	rows := rep.Rows()
	if opts.ScoreRow >= len(rows) {
		return "", failures.Wrap(failures.ErrMalformedReport, component, "extract",
			fmt.Sprintf("score row %d out of range: hits have %d rows", opts.ScoreRow, len(rows)), nil)
	}
	return rows[opts.ScoreRow], nil
}

// compareCandidates orders by score descending with NaN last, then by label.
func compareCandidates(a, b Candidate) int {
	aNaN, bNaN := math.IsNaN(a.Score), math.IsNaN(b.Score)
	switch {
	case aNaN && !bNaN:
		return 1
	case !aNaN && bNaN:
		return -1
	case !aNaN && a.Score != b.Score:
		return cmp.Compare(b.Score, a.Score)
	}
	return strings.Compare(a.Label, b.Label)
}

// NormalizeKey abbreviates a binomial species label to the genus initial
// followed by the species epithet, lowercased.
func NormalizeKey(label string) (string, error) {
	tokens := strings.Fields(label)
	if len(tokens) < 2 {
		return "", failures.Wrap(failures.ErrMalformedReport, component, "normalize",
			fmt.Sprintf("species label %q has no species epithet", label), nil)
	}
	initial, _ := utf8.DecodeRuneInString(tokens[0])
	return cases.Lower(language.Und).String(string(initial) + tokens[1]), nil
}
