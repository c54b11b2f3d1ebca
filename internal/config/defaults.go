package config

const (
	defaultTranslationPath = "files/dictionary_correct_species.yaml"
	defaultAmbiguousMarker = " sp. "
	defaultScoreField      = "Score"
	defaultScoreRow        = 2
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Translation: Translation{
			Path: defaultTranslationPath,
		},
		Report: Report{
			AmbiguousMarker: defaultAmbiguousMarker,
			ScoreField:      defaultScoreField,
			ScoreRow:        defaultScoreRow,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
