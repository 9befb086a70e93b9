package revision

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"redline/internal/config"
	"redline/internal/textutil"
)

// backupTimeFormat orders lexically the same as chronologically.
const backupTimeFormat = "20060102-150405.000000000"

// WriteBackup copies the source file into the backup directory before it is
// overwritten, then prunes old copies past the configured retention.
// It returns the backup path.
func WriteBackup(cfg *config.Config, sourcePath string) (string, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("read source for backup: %w", err)
	}

	dir := cfg.BackupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	stem := backupStem(sourcePath)
	name := fmt.Sprintf("%s.%s.bak", stem, time.Now().UTC().Format(backupTimeFormat))
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	if err := pruneBackups(dir, stem, cfg.Revise.BackupRetention); err != nil {
		return "", err
	}
	return target, nil
}

// ListBackups returns the backup paths for one source file, newest first.
func ListBackups(cfg *config.Config, sourcePath string) ([]string, error) {
	matches, err := backupsFor(cfg.BackupDir(), backupStem(sourcePath))
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}

func backupStem(sourcePath string) string {
	base := textutil.FileStem(filepath.Base(sourcePath))
	if base == "" {
		base = "unnamed"
	}
	return base
}

func backupsFor(dir, stem string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup directory: %w", err)
	}
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, stem+".") && strings.HasSuffix(name, ".bak") {
			matches = append(matches, filepath.Join(dir, name))
		}
	}
	return matches, nil
}

func pruneBackups(dir, stem string, retention int) error {
	if retention < 1 {
		return nil
	}
	matches, err := backupsFor(dir, stem)
	if err != nil {
		return err
	}
	if len(matches) <= retention {
		return nil
	}
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-retention] {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("prune backup %s: %w", path, err)
		}
	}
	return nil
}
