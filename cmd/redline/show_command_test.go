package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"redline/internal/revision"
	"redline/internal/testsupport"
)

func seedTestRevision(t *testing.T, env *cliTestEnv) *revision.Revision {
	t.Helper()
	return seedRevision(t, env.cfg, &revision.Revision{
		SourcePath:   filepath.Join(env.baseDir, "conclusion.tex"),
		Section:      "conclusion",
		OriginalText: "We conclude nothing. ",
		RevisedText:  "We conclude that the approach generalizes. ",
		Model:        "test-model",
		Instruction:  "strengthen the claim",
		Similarity:   0.41,
	})
}

func TestShowRendersDiff(t *testing.T) {
	env := setupCLITestEnv(t)
	rev := seedTestRevision(t, env)

	out, _, err := runCLI(t, []string{"show", rev.ID}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, rev.ID)
	requireContains(t, out, rev.SourcePath)
	requireContains(t, out, "strengthen the claim")
	requireContains(t, out, "- We conclude nothing.")
	requireContains(t, out, "+ We conclude that the approach generalizes.")
}

func TestShowAcceptsIDPrefix(t *testing.T) {
	env := setupCLITestEnv(t)
	rev := seedTestRevision(t, env)

	out, _, err := runCLI(t, []string{"show", rev.ID[:8]}, env.configPath)
	if err != nil {
		t.Fatalf("show with prefix: %v", err)
	}
	requireContains(t, out, rev.ID)
}

func TestShowJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	rev := seedTestRevision(t, env)

	out, _, err := runCLI(t, []string{"show", rev.ID, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}

	var payload struct {
		ID   string `json:"id"`
		Diff []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"diff"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("parse JSON: %v\n%s", err, out)
	}
	if payload.ID != rev.ID {
		t.Fatalf("id = %q, want %q", payload.ID, rev.ID)
	}
	if len(payload.Diff) != 2 {
		t.Fatalf("expected 2 diff ops, got %d", len(payload.Diff))
	}
	if payload.Diff[0].Type != "removed" || payload.Diff[1].Type != "added" {
		t.Fatalf("unexpected diff ordering: %+v", payload.Diff)
	}
}

func TestShowUnknownID(t *testing.T) {
	env := setupCLITestEnv(t)
	seedTestRevision(t, env)

	if _, _, err := runCLI(t, []string{"show", "ffffffff"}, env.configPath); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestRestoreWritesOriginalBack(t *testing.T) {
	env := setupCLITestEnv(t)
	rev := seedTestRevision(t, env)
	testsupport.WriteFile(t, rev.SourcePath, rev.RevisedText)

	out, _, err := runCLI(t, []string{"restore", rev.ID}, env.configPath)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	requireContains(t, out, "Restored")

	if got := testsupport.ReadFile(t, rev.SourcePath); got != rev.OriginalText {
		t.Fatalf("restore wrote %q, want %q", got, rev.OriginalText)
	}

	backups, err := revision.ListBackups(env.cfg, rev.SourcePath)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected one pre-restore backup, got %d", len(backups))
	}
}

func TestReportRegeneratesHTML(t *testing.T) {
	env := setupCLITestEnv(t)
	rev := seedTestRevision(t, env)

	out, _, err := runCLI(t, []string{"report", rev.ID}, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireContains(t, out, "Report: ")

	reportPath := strings.TrimSpace(strings.TrimPrefix(out, "Report: "))
	content := testsupport.ReadFile(t, reportPath)
	if content == "" {
		t.Fatal("report file is empty")
	}
	requireContains(t, content, "We conclude that the approach generalizes.")
}
