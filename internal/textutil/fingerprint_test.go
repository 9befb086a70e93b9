package textutil

import "testing"

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("hello world"), 0},
		{"b nil", NewFingerprint("hello world"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextSimilarityIdentical(t *testing.T) {
	text := "The proposed method outperforms the baseline on every benchmark"
	if got := TextSimilarity(text, text); got != 1.0 {
		t.Errorf("TextSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestTextSimilarityDisjoint(t *testing.T) {
	if got := TextSimilarity("apple banana cherry", "delta epsilon zeta"); got != 0 {
		t.Errorf("TextSimilarity(disjoint) = %v, want 0", got)
	}
}

func TestTextSimilarityPartialOverlap(t *testing.T) {
	got := TextSimilarity("the quick brown fox", "the slow brown cat")
	if got <= 0 || got >= 1 {
		t.Errorf("TextSimilarity(partial) = %v, want between 0 and 1", got)
	}
}

func TestTokenizeFiltersShortTokens(t *testing.T) {
	got := Tokenize("We use an LLM to revise a section")
	for _, token := range got {
		if len(token) < 3 {
			t.Errorf("short token %q survived filtering", token)
		}
	}
}
