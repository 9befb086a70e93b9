package testsupport

import (
	"context"
	"testing"

	"redline/internal/config"
	"redline/internal/revision"
)

// MustOpenStore opens a revision.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *revision.Store {
	t.Helper()

	store, err := revision.Open(cfg)
	if err != nil {
		t.Fatalf("revision.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveRevision stores a revision for tests using the provided store.
func SaveRevision(t testing.TB, store *revision.Store, rev *revision.Revision) *revision.Revision {
	t.Helper()

	saved, err := store.Save(context.Background(), rev)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return saved
}
