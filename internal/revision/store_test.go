package revision_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"redline/internal/revision"
	"redline/internal/testsupport"
)

func TestOpenAppliesMigrationsAndSaves(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	saved, err := store.Save(ctx, &revision.Revision{
		SourcePath:   "/paper/intro.tex",
		Section:      "intro",
		OriginalText: "Old text.",
		RevisedText:  "New text.",
		Model:        "test/model",
		Similarity:   0.91,
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be assigned")
	}

	fetched, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.OriginalText != "Old text." || fetched.RevisedText != "New text." {
		t.Fatalf("unexpected fetched revision: %#v", fetched)
	}
	if fetched.Similarity != 0.91 {
		t.Fatalf("unexpected similarity: %v", fetched.Similarity)
	}
}

func TestSaveRequiresSourcePath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.Save(context.Background(), &revision.Revision{}); err == nil {
		t.Fatal("expected error when source path missing")
	}
}

func TestGetByIDShortPrefix(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	saved := testsupport.SaveRevision(t, store, &revision.Revision{
		SourcePath:   "/paper/intro.tex",
		OriginalText: "a",
		RevisedText:  "b",
	})

	fetched, err := store.GetByID(context.Background(), saved.ID[:8])
	if err != nil {
		t.Fatalf("GetByID with prefix failed: %v", err)
	}
	if fetched.ID != saved.ID {
		t.Fatalf("expected %s, got %s", saved.ID, fetched.ID)
	}

	if _, err := store.GetByID(context.Background(), "zzzz"); !errors.Is(err, revision.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		testsupport.SaveRevision(t, store, &revision.Revision{
			SourcePath:   "/paper/intro.tex",
			OriginalText: fmt.Sprintf("v%d", i),
			RevisedText:  fmt.Sprintf("v%d", i+1),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}

	revisions, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(revisions) != 3 {
		t.Fatalf("expected 3 revisions, got %d", len(revisions))
	}
	if revisions[0].OriginalText != "v2" {
		t.Fatalf("expected newest first, got %q", revisions[0].OriginalText)
	}

	limited, err := store.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 revisions, got %d", len(limited))
	}
}

func TestListBySource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.SaveRevision(t, store, &revision.Revision{
		SourcePath: "/paper/intro.tex", OriginalText: "a", RevisedText: "b",
	})
	testsupport.SaveRevision(t, store, &revision.Revision{
		SourcePath: "/paper/method.tex", OriginalText: "c", RevisedText: "d",
	})

	revisions, err := store.ListBySource(context.Background(), "/paper/intro.tex", 0)
	if err != nil {
		t.Fatalf("ListBySource failed: %v", err)
	}
	if len(revisions) != 1 || revisions[0].SourcePath != "/paper/intro.tex" {
		t.Fatalf("unexpected revisions: %#v", revisions)
	}
}

func TestDeleteAndClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	saved := testsupport.SaveRevision(t, store, &revision.Revision{
		SourcePath: "/paper/intro.tex", OriginalText: "a", RevisedText: "b",
	})

	if err := store.Delete(context.Background(), saved.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(context.Background(), saved.ID); !errors.Is(err, revision.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	testsupport.SaveRevision(t, store, &revision.Revision{
		SourcePath: "/paper/intro.tex", OriginalText: "a", RevisedText: "b",
	})
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	revisions, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(revisions) != 0 {
		t.Fatalf("expected empty store, got %d revisions", len(revisions))
	}
}
