package testsupport

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mlstdb/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test. It
// starts from repository defaults and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTranslationTable writes entries as a YAML translation table and points
// the config at it.
func WithTranslationTable(entries map[string]string) ConfigOption {
	return func(b *configBuilder) {
		var sb strings.Builder
		for _, key := range slices.Sorted(maps.Keys(entries)) {
			fmt.Fprintf(&sb, "%s: %q\n", key, entries[key])
		}
		path := filepath.Join(b.baseDir, "translation.yaml")
		WriteFile(b.t, path, []byte(sb.String()))
		b.cfg.Translation.Path = path
	}
}

// WithTranslationPath points the config at path without creating it.
func WithTranslationPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Translation.Path = path
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WriteConfig encodes cfg as TOML into dir and returns the file path.
func WriteConfig(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	WriteFile(t, path, data)
	return path
}
