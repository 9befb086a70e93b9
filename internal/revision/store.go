package revision

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"redline/internal/config"
)

// ErrNotFound indicates no revision matches the requested identifier.
var ErrNotFound = errors.New("revision not found")

// ErrAmbiguousID indicates a short identifier prefix matches several revisions.
var ErrAmbiguousID = errors.New("revision id prefix is ambiguous")

// Store manages revision persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the revision database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "revisions.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save inserts a revision, assigning its ID and timestamp when unset, and
// returns the stored record.
func (s *Store) Save(ctx context.Context, rev *Revision) (*Revision, error) {
	if rev == nil {
		return nil, errors.New("revision is required")
	}
	if strings.TrimSpace(rev.SourcePath) == "" {
		return nil, errors.New("revision source path is required")
	}
	if rev.ID == "" {
		rev.ID = uuid.NewString()
	}
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO revisions (
            id, source_path, section, original_text, revised_text,
            model, instruction, similarity, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rev.ID,
		rev.SourcePath,
		rev.Section,
		rev.OriginalText,
		rev.RevisedText,
		rev.Model,
		rev.Instruction,
		rev.Similarity,
		rev.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert revision: %w", err)
	}
	return s.GetByID(ctx, rev.ID)
}

const revisionColumns = `id, source_path, section, original_text, revised_text,
    model, instruction, similarity, created_at`

// GetByID fetches one revision. A unique ID prefix of at least four
// characters is accepted, so CLI users can pass short ids.
func (s *Store) GetByID(ctx context.Context, id string) (*Revision, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+revisionColumns+` FROM revisions WHERE id = ?`, id)
	rev, err := scanRevision(row)
	if err == nil {
		return rev, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get revision: %w", err)
	}
	if len(id) < 4 {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+revisionColumns+` FROM revisions WHERE id LIKE ? LIMIT 2`,
		id+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("get revision by prefix: %w", err)
	}
	defer rows.Close()

	var matches []*Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		matches = append(matches, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// List returns revisions ordered newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]*Revision, error) {
	query := `SELECT ` + revisionColumns + ` FROM revisions ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var revisions []*Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return revisions, nil
}

// ListBySource returns revisions of one source file, newest first.
func (s *Store) ListBySource(ctx context.Context, sourcePath string, limit int) ([]*Revision, error) {
	query := `SELECT ` + revisionColumns + ` FROM revisions WHERE source_path = ? ORDER BY created_at DESC, id`
	args := []any{sourcePath}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list revisions by source: %w", err)
	}
	defer rows.Close()

	var revisions []*Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return revisions, nil
}

// Delete removes one revision by exact ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM revisions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete revision: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete revision: rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes all revisions.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM revisions`); err != nil {
		return fmt.Errorf("clear revisions: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRevision(row rowScanner) (*Revision, error) {
	var rev Revision
	var createdAt string
	err := row.Scan(
		&rev.ID,
		&rev.SourcePath,
		&rev.Section,
		&rev.OriginalText,
		&rev.RevisedText,
		&rev.Model,
		&rev.Instruction,
		&rev.Similarity,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	rev.CreatedAt = parsed
	return &rev, nil
}
