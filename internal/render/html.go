package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"redline/internal/sentdiff"
	"redline/internal/textutil"
)

//go:embed report.html.tmpl
var reportTemplate string

var (
	reportTmpl  = template.Must(template.New("report").Parse(reportTemplate))
	titleCasing = cases.Title(language.English)
)

// HTMLReport describes one rendered diff report.
type HTMLReport struct {
	// Title heads the report page.
	Title string
	// Subtitle carries secondary context (model, revision id).
	Subtitle string
	// GeneratedAt stamps the report; zero means now.
	GeneratedAt time.Time
}

type reportData struct {
	Title       string
	Subtitle    string
	GeneratedAt string
	Stats       sentdiff.Stats
	Ops         []reportOp
}

type reportOp struct {
	Class string
	Text  string
}

// HTML renders the diff as a standalone HTML page.
func HTML(w io.Writer, report HTMLReport, ops []sentdiff.Op) error {
	generated := report.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	data := reportData{
		Title:       reportTitle(report.Title),
		Subtitle:    report.Subtitle,
		GeneratedAt: generated.Format("2006-01-02 15:04"),
		Stats:       sentdiff.Summarize(ops),
		Ops:         make([]reportOp, 0, len(ops)),
	}
	for _, op := range ops {
		data.Ops = append(data.Ops, reportOp{
			Class: op.Kind.String(),
			Text:  op.Text,
		})
	}
	return reportTmpl.Execute(w, data)
}

// WriteHTMLFile renders the report into dir using a sanitized, timestamped
// filename and returns the full path.
func WriteHTMLFile(dir string, report HTMLReport, ops []sentdiff.Op) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	name := fmt.Sprintf(
		"%s-%s.html",
		textutil.Slug(report.Title),
		time.Now().UTC().Format("20060102-150405"),
	)
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if err := HTML(file, report, ops); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return path, nil
}

// reportTitle prettifies a raw section or file name for the page heading.
func reportTitle(raw string) string {
	name := strings.TrimSuffix(filepath.Base(strings.TrimSpace(raw)), ".tex")
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	if name == "" {
		return "Revision Diff"
	}
	return titleCasing.String(name)
}
