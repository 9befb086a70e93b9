package textutil

import (
	"path/filepath"
	"strings"
)

// FileStem turns a source file name into a safe backup stem. Path
// separators, shell-hostile characters, and whitespace runs collapse to a
// single dash; the extension is kept so "intro.tex" backups remain
// recognizable. Returns "" for blank input; the caller picks the fallback.
func FileStem(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	var b strings.Builder
	pendingDash := false
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*':
			pendingDash = true
		case r == ' ' || r == '\t':
			pendingDash = true
		case r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			// dropped outright
		default:
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-.")
}

// Slug lowercases a section or file title into a hyphenated token for
// report file names. The extension is dropped first, so "Intro V2.tex"
// becomes "intro-v2". Returns "report" when nothing usable remains.
func Slug(title string) string {
	title = strings.TrimSpace(title)
	title = strings.TrimSuffix(title, filepath.Ext(title))

	var b strings.Builder
	pendingDash := false
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r + ('a' - 'A'))
		default:
			pendingDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "report"
	}
	return out
}
