package revision_test

import (
	"path/filepath"
	"strings"
	"testing"

	"redline/internal/revision"
	"redline/internal/testsupport"
)

func TestWriteBackupCopiesSource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := filepath.Join(t.TempDir(), "intro.tex")
	testsupport.WriteFile(t, source, "\\section{Intro}\nOriginal.\n")

	backup, err := revision.WriteBackup(cfg, source)
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}
	if got := testsupport.ReadFile(t, backup); got != "\\section{Intro}\nOriginal.\n" {
		t.Fatalf("backup content mismatch: %q", got)
	}

	backups, err := revision.ListBackups(cfg, source)
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 || backups[0] != backup {
		t.Fatalf("unexpected backups: %v", backups)
	}
}

func TestWriteBackupStemKeepsExtension(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := filepath.Join(t.TempDir(), "my draft.tex")
	testsupport.WriteFile(t, source, "content")

	backup, err := revision.WriteBackup(cfg, source)
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}
	base := filepath.Base(backup)
	if !strings.HasPrefix(base, "my-draft.tex.") || !strings.HasSuffix(base, ".bak") {
		t.Fatalf("unexpected backup name %q", base)
	}
}

func TestWriteBackupPrunesOldCopies(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithBackupRetention(2))
	source := filepath.Join(t.TempDir(), "intro.tex")

	for i := 0; i < 4; i++ {
		testsupport.WriteFile(t, source, "version")
		if _, err := revision.WriteBackup(cfg, source); err != nil {
			t.Fatalf("WriteBackup %d failed: %v", i, err)
		}
	}

	backups, err := revision.ListBackups(cfg, source)
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups after pruning, got %d", len(backups))
	}
}

func TestWriteBackupMissingSource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if _, err := revision.WriteBackup(cfg, filepath.Join(t.TempDir(), "missing.tex")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestListBackupsEmptyWhenNoDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	backups, err := revision.ListBackups(cfg, "/paper/intro.tex")
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups, got %v", backups)
	}
}
