package sentdiff

import (
	"encoding/json"
	"fmt"

	"redline/internal/segment"
)

// Kind classifies one edit script entry.
type Kind int

const (
	// Unchanged marks a sentence present in both sequences.
	Unchanged Kind = iota
	// Added marks a sentence present only in the revised sequence.
	Added
	// Removed marks a sentence present only in the original sequence.
	Removed
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as its wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	switch k {
	case Unchanged, Added, Removed:
		return json.Marshal(k.String())
	}
	return nil, fmt.Errorf("sentdiff: invalid kind %d", int(k))
}

// UnmarshalJSON decodes a kind from its wire name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "unchanged":
		*k = Unchanged
	case "added":
		*k = Added
	case "removed":
		*k = Removed
	default:
		return fmt.Errorf("sentdiff: unknown kind %q", name)
	}
	return nil
}

// Op is one entry in the edit script.
type Op struct {
	Kind Kind   `json:"type"`
	Text string `json:"text"`
}

// Align computes the edit script between two sentence sequences using
// exact string equality. The script interleaves removed, unchanged, and
// added entries in merged reading order: at each divergence the original's
// sentences appear before the revised one's insertions.
func Align(original, revised []string) []Op {
	n, m := len(original), len(revised)
	if n == 0 && m == 0 {
		return nil
	}

	// lcs[i][j] holds the LCS length of original[:i] and revised[:j],
	// filled row-major.
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if original[i-1] == revised[j-1] {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else if lcs[i-1][j] >= lcs[i][j-1] {
				lcs[i][j] = lcs[i-1][j]
			} else {
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	// Backtrack from the end and reverse. Insertions are taken first on
	// ties so that, read top to bottom, each divergence shows the
	// original's removed sentences before the revision's additions.
	ops := make([]Op, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && original[i-1] == revised[j-1]:
			ops = append(ops, Op{Kind: Unchanged, Text: original[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			ops = append(ops, Op{Kind: Added, Text: revised[j-1]})
			j--
		default:
			ops = append(ops, Op{Kind: Removed, Text: original[i-1]})
			i--
		}
	}
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}

// Diff segments both texts with the provided segmenter and aligns the
// results. A nil segmenter uses the default abbreviation table.
func Diff(seg *segment.Segmenter, originalText, revisedText string) []Op {
	if seg == nil {
		seg = segment.New()
	}
	return Align(seg.Split(originalText), seg.Split(revisedText))
}

// Stats summarizes an edit script.
type Stats struct {
	Unchanged int `json:"unchanged"`
	Added     int `json:"added"`
	Removed   int `json:"removed"`
}

// Summarize counts the entries of each kind.
func Summarize(ops []Op) Stats {
	var st Stats
	for _, op := range ops {
		switch op.Kind {
		case Unchanged:
			st.Unchanged++
		case Added:
			st.Added++
		case Removed:
			st.Removed++
		}
	}
	return st
}

// Reconstruct concatenates the script back into source text. Side
// selects which document to rebuild: unchanged+removed yields the
// original, unchanged+added the revised.
func Reconstruct(ops []Op, side Kind) string {
	var out []byte
	for _, op := range ops {
		if op.Kind == Unchanged || op.Kind == side {
			out = append(out, op.Text...)
		}
	}
	return string(out)
}
