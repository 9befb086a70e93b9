package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"redline/internal/config"
)

func TestLoadDefaultsExpandPathsAndUseEnvKey(t *testing.T) {
	t.Setenv("REDLINE_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "redline")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Paths.ReportDir != filepath.Join(wantData, "reports") {
		t.Fatalf("unexpected report dir: %q", cfg.Paths.ReportDir)
	}
	if cfg.LLM.APIKey != "test-key" {
		t.Fatalf("expected API key from env, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.BaseURL != config.Default().LLM.BaseURL {
		t.Fatalf("unexpected base url: %q", cfg.LLM.BaseURL)
	}
	if cfg.Revise.BackupRetention != config.Default().Revise.BackupRetention {
		t.Fatalf("unexpected backup retention: %d", cfg.Revise.BackupRetention)
	}
	if !cfg.Revise.OpenReport {
		t.Fatal("expected open_report enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.ReportDir); err != nil {
		t.Fatalf("report dir not created: %v", err)
	}
}

func TestLoadExplicitFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"

[llm]
api_key = "file-key"
model = "test/model"
timeout_seconds = 30

[revise]
backup_retention = 5
open_report = false
abbreviations = ["thm.", " lem. ", ""]

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.LLM.APIKey != "file-key" {
		t.Fatalf("unexpected api key: %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "test/model" {
		t.Fatalf("unexpected model: %q", cfg.LLM.Model)
	}
	if cfg.LLM.TimeoutSeconds != 30 {
		t.Fatalf("unexpected timeout: %d", cfg.LLM.TimeoutSeconds)
	}
	if cfg.Revise.BackupRetention != 5 {
		t.Fatalf("unexpected retention: %d", cfg.Revise.BackupRetention)
	}
	if cfg.Revise.OpenReport {
		t.Fatal("expected open_report disabled")
	}
	want := []string{"thm.", "lem."}
	if len(cfg.Revise.Abbreviations) != len(want) {
		t.Fatalf("unexpected abbreviations: %v", cfg.Revise.Abbreviations)
	}
	for i := range want {
		if cfg.Revise.Abbreviations[i] != want[i] {
			t.Fatalf("abbreviation %d: got %q want %q", i, cfg.Revise.Abbreviations[i], want[i])
		}
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.BackupDir() != filepath.Join(cfg.Paths.DataDir, "backups") {
		t.Fatalf("unexpected backup dir: %q", cfg.BackupDir())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"bad url", "[llm]\nbase_url = \"ftp://example\"\n", "llm.base_url"},
		{"bad temperature", "[llm]\ntemperature = 3.5\n", "llm.temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.APIKey = ""
	if err := cfg.RequireAPIKey(); err == nil {
		t.Fatal("expected error without key")
	}
	cfg.LLM.APIKey = "k"
	if err := cfg.RequireAPIKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[llm]") {
		t.Fatal("sample config missing [llm] section")
	}
}
