package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"mlstdb/internal/config"
	"mlstdb/internal/failures"
)

func TestLoadDefaultConfigWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "mlstdb", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if diff := cmp.Diff(config.Default(), *cfg); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
	if cfg.Translation.Path != "files/dictionary_correct_species.yaml" {
		t.Fatalf("expected default translation path to stay relative, got %q", cfg.Translation.Path)
	}
}

func TestLoadReadsProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)

	body := "[report]\nscore_field = \"\"\nscore_row = 1\n\n[logging]\nformat = \" JSON \"\nlevel = \"Debug\"\n"
	if err := os.WriteFile(filepath.Join(project, "mlstdb.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || !strings.HasSuffix(resolved, "mlstdb.toml") {
		t.Fatalf("expected project config to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Report.ScoreField != "" || cfg.Report.ScoreRow != 1 {
		t.Fatalf("unexpected report config %+v", cfg.Report)
	}
	if cfg.Report.AmbiguousMarker != " sp. " {
		t.Fatalf("expected default marker to be kept, got %q", cfg.Report.AmbiguousMarker)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging config, got %+v", cfg.Logging)
	}
}

func TestLoadExpandsCustomTranslationPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	data, err := toml.Marshal(map[string]any{
		"translation": map[string]any{"path": "~/tables/species.yaml"},
	})
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected explicit config to exist")
	}
	want := filepath.Join(home, "tables", "species.yaml")
	if cfg.Translation.Path != want {
		t.Fatalf("unexpected translation path: got %q want %q", cfg.Translation.Path, want)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative row":   "[report]\nscore_row = -1\n",
		"blank marker":   "[report]\nambiguous_marker = \"   \"\n",
		"unknown format": "[logging]\nformat = \"xml\"\n",
		"unknown level":  "[logging]\nlevel = \"trace\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if !errors.Is(err, failures.ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[report\nscore_row = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSampleRoundTripsThroughLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if diff := cmp.Diff(config.Default(), *cfg); diff != "" {
		t.Fatalf("sample config should match defaults (-want +got):\n%s", diff)
	}
}

func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", " warn ", "error"} {
		if !config.ValidLogLevel(level) {
			t.Fatalf("expected %q to be valid", level)
		}
	}
	if config.ValidLogLevel("verbose") {
		t.Fatal("expected verbose to be rejected")
	}
}
