package revise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"redline/internal/browser"
	"redline/internal/config"
	"redline/internal/logging"
	"redline/internal/prompt"
	"redline/internal/render"
	"redline/internal/revision"
	"redline/internal/segment"
	"redline/internal/sentdiff"
	"redline/internal/textutil"
)

// similarityFloor flags rewrites that kept almost nothing of the section.
const similarityFloor = 0.35

// Completer is the slice of the LLM client the service needs.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Request describes one rewrite run.
type Request struct {
	// Path is the LaTeX section file to revise.
	Path string
	// Instruction optionally focuses the rewrite.
	Instruction string
	// DryRun computes the diff and report without touching the source
	// file or the store.
	DryRun bool
	// NoOpen suppresses opening the report even when configured on.
	NoOpen bool
}

// Result reports the outcome of a run.
type Result struct {
	Revision   *revision.Revision
	Ops        []sentdiff.Op
	Similarity float64
	BackupPath string
	ReportPath string
}

// Service runs rewrite requests.
type Service struct {
	cfg    *config.Config
	store  *revision.Store
	client Completer
	logger *slog.Logger
	opener func(context.Context, string) error
}

// Option customizes the service.
type Option func(*Service)

// WithOpener overrides how reports are opened (useful for tests).
func WithOpener(opener func(context.Context, string) error) Option {
	return func(s *Service) {
		if opener != nil {
			s.opener = opener
		}
	}
}

// NewService wires a rewrite service. Store may be nil only for dry runs.
func NewService(cfg *config.Config, store *revision.Store, client Completer, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		cfg:    cfg,
		store:  store,
		client: client,
		logger: logging.WithComponent(logger, "revise"),
		opener: browser.Open,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Run executes one rewrite request.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	path, err := filepath.Abs(strings.TrimSpace(req.Path))
	if err != nil {
		return nil, fmt.Errorf("resolve section path: %w", err)
	}

	if err := s.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	lock := flock.New(s.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire revise lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another revise run is in progress")
	}
	defer func() { _ = lock.Unlock() }()

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read section: %w", err)
	}
	originalText := string(original)
	if strings.TrimSpace(originalText) == "" {
		return nil, fmt.Errorf("section %s is empty", path)
	}

	userPrompt, err := prompt.Build(prompt.Request{
		SectionText: originalText,
		Instruction: req.Instruction,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("requesting rewrite",
		slog.String(logging.FieldSource, path),
		slog.String("model", s.cfg.LLM.Model),
		slog.Bool("dry_run", req.DryRun),
	)
	revisedText, err := s.client.Complete(ctx, prompt.RewriteSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("rewrite section: %w", err)
	}
	if strings.TrimSpace(revisedText) == "" {
		return nil, errors.New("model returned an empty revision")
	}

	similarity := textutil.TextSimilarity(originalText, revisedText)
	if similarity < similarityFloor {
		s.logger.Warn("revision diverges heavily from the original",
			slog.String(logging.FieldSource, path),
			slog.Float64("similarity", similarity),
		)
	}

	seg := segment.New(s.cfg.Revise.Abbreviations...)
	ops := sentdiff.Diff(seg, originalText, revisedText)

	result := &Result{Ops: ops, Similarity: similarity}

	if !req.DryRun {
		// Checked before any mutation so a missing store cannot leave the
		// file rewritten with no recorded revision.
		if s.store == nil {
			return nil, errors.New("revision store is required outside dry runs")
		}

		backupPath, err := revision.WriteBackup(s.cfg, path)
		if err != nil {
			return nil, err
		}
		result.BackupPath = backupPath

		if err := os.WriteFile(path, []byte(revisedText), 0o644); err != nil {
			return nil, fmt.Errorf("write revised section: %w", err)
		}

		rev, err := s.store.Save(ctx, &revision.Revision{
			SourcePath:   path,
			Section:      sectionName(path),
			OriginalText: originalText,
			RevisedText:  revisedText,
			Model:        s.cfg.LLM.Model,
			Instruction:  strings.TrimSpace(req.Instruction),
			Similarity:   similarity,
		})
		if err != nil {
			return nil, err
		}
		result.Revision = rev
	}

	report := render.HTMLReport{
		Title:    filepath.Base(path),
		Subtitle: reportSubtitle(s.cfg.LLM.Model, result.Revision),
	}
	reportPath, err := render.WriteHTMLFile(s.cfg.Paths.ReportDir, report, ops)
	if err != nil {
		return nil, err
	}
	result.ReportPath = reportPath

	st := sentdiff.Summarize(ops)
	logAttrs := []any{
		slog.String(logging.FieldSource, path),
		slog.String("report", reportPath),
		slog.Int("added", st.Added),
		slog.Int("removed", st.Removed),
		slog.Int("unchanged", st.Unchanged),
		slog.Float64("similarity", similarity),
	}
	if result.Revision != nil {
		logAttrs = append(logAttrs, slog.String(logging.FieldRevisionID, result.Revision.ID))
	}
	s.logger.Info("rewrite complete", logAttrs...)

	if s.cfg.Revise.OpenReport && !req.NoOpen {
		if err := s.opener(ctx, reportPath); err != nil {
			s.logger.Warn("open report failed", slog.String("report", reportPath), slog.String("error", err.Error()))
		}
	}
	return result, nil
}

func sectionName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func reportSubtitle(model string, rev *revision.Revision) string {
	if rev == nil {
		return fmt.Sprintf("dry run · %s", model)
	}
	return fmt.Sprintf("revision %s · %s", rev.ID[:8], model)
}
