// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"redline/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ReportDir = filepath.Join(base, "reports")
	cfg.LLM.APIKey = "test"
	cfg.Revise.OpenReport = false

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBackupRetention sets the backup retention for a test config.
func WithBackupRetention(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Revise.BackupRetention = n
	}
}
