package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mlstdb/internal/failures"
	"mlstdb/internal/testsupport"
)

func TestConfigInitWritesSampleAndRefusesOverwrite(t *testing.T) {
	dir := isolateCLI(t)
	target := filepath.Join(dir, "nested", "config.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, stdout, "Wrote sample configuration to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigInitSkipsBrokenConfig(t *testing.T) {
	dir := isolateCLI(t)
	broken := filepath.Join(dir, "broken.toml")
	testsupport.WriteFile(t, broken, []byte("[report\n"))

	target := filepath.Join(dir, "fresh.toml")
	if _, _, err := runCLI(t, "--config", broken, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init should not load config: %v", err)
	}
}

func TestConfigValidateReportsDefaults(t *testing.T) {
	isolateCLI(t)

	stdout, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, stdout, "Config file did not exist; defaults were used")
	requireContains(t, stdout, "Translation table: bundled")
	requireContains(t, stdout, "Configuration valid")
}

func TestConfigValidateRejectsInvalidValues(t *testing.T) {
	dir := isolateCLI(t)
	path := filepath.Join(dir, "config.toml")
	testsupport.WriteFile(t, path, []byte("[logging]\nformat = \"xml\"\n"))

	_, _, err := runCLI(t, "--config", path, "config", "validate")
	if !errors.Is(err, failures.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestConfigValidateRejectsMissingTable(t *testing.T) {
	dir := isolateCLI(t)
	cfg := testsupport.NewConfig(t, testsupport.WithTranslationPath(filepath.Join(dir, "nope.yaml")))
	configPath := testsupport.WriteConfig(t, dir, cfg)

	_, _, err := runCLI(t, "--config", configPath, "config", "validate")
	if !errors.Is(err, failures.ErrTranslationTable) {
		t.Fatalf("expected ErrTranslationTable, got %v", err)
	}
}

func TestConfigShowPrintsEffectiveValues(t *testing.T) {
	dir := isolateCLI(t)
	cfg := testsupport.NewConfig(t, testsupport.WithLogLevel("debug"))
	configPath := testsupport.WriteConfig(t, dir, cfg)

	stdout, _, err := runCLI(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, stdout, "[logging]")
	requireContains(t, stdout, "level = 'debug'")
	requireContains(t, stdout, "score_row = 2")
}
