package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultAbbreviations lists tokens (lowercase, final period stripped) that
// end with a period without ending a sentence. Tuned for academic prose;
// extend per project via New.
var defaultAbbreviations = []string{
	"e.g", "i.e", "cf", "etc", "vs", "viz", "resp", "approx",
	"fig", "figs", "eq", "eqs", "sec", "secs", "chap", "tab",
	"al", "et al", "ref", "refs", "vol", "no", "pp", "p",
	"dr", "mr", "mrs", "ms", "prof", "st",
}

// Segmenter splits text into sentences using a tunable abbreviation table.
type Segmenter struct {
	abbreviations map[string]struct{}
}

// New returns a Segmenter whose abbreviation table combines the defaults
// with the provided extras. Extras are matched case-insensitively; a
// trailing period is ignored.
func New(extra ...string) *Segmenter {
	abbr := make(map[string]struct{}, len(defaultAbbreviations)+len(extra))
	for _, token := range defaultAbbreviations {
		abbr[token] = struct{}{}
	}
	for _, token := range extra {
		token = strings.ToLower(strings.TrimSpace(token))
		token = strings.TrimSuffix(token, ".")
		if token == "" {
			continue
		}
		abbr[token] = struct{}{}
	}
	return &Segmenter{abbreviations: abbr}
}

// Split segments text using the default abbreviation table.
func Split(text string) []string {
	return New().Split(text)
}

// Split breaks text into sentences. Empty or whitespace-only input yields
// no sentences; text without terminal punctuation is one sentence.
func (s *Segmenter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var sentences []string
	start := 0
	i := 0
	n := len(text)
	for i < n {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			i++
			continue
		}

		// Absorb the full run of terminal punctuation and closing
		// delimiters so "..." and "?!)" stay with one sentence.
		runStart := i
		end := i + 1
		for end < n {
			r, size := utf8.DecodeRuneInString(text[end:])
			if !isTerminal(r) && !isClosing(r) {
				break
			}
			end += size
		}
		if end >= n {
			break
		}

		next, _ := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsSpace(next) {
			i = end
			continue
		}
		if c == '.' && end == runStart+1 && s.isAbbreviation(text[:runStart]) {
			i = end
			continue
		}

		// Trailing whitespace belongs to the sentence it follows so
		// concatenation reconstructs the source exactly.
		ws := end
		for ws < n {
			r, size := utf8.DecodeRuneInString(text[ws:])
			if !unicode.IsSpace(r) {
				break
			}
			ws += size
		}
		sentences = append(sentences, text[start:ws])
		start = ws
		i = ws
	}
	if start < n {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// isAbbreviation reports whether prefix ends in a token that should keep
// its period inside the sentence. Single letters count as initials.
func (s *Segmenter) isAbbreviation(prefix string) bool {
	end := len(prefix)
	i := end
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(prefix[:i])
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		i -= size
	}
	token := strings.Trim(prefix[i:end], ".")
	if token == "" {
		return false
	}
	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		if unicode.IsUpper(r) {
			return true
		}
	}
	_, ok := s.abbreviations[strings.ToLower(token)]
	return ok
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}
