package revision

import "time"

// Revision records one LLM rewrite of a source file.
type Revision struct {
	ID           string
	SourcePath   string
	Section      string
	OriginalText string
	RevisedText  string
	Model        string
	Instruction  string
	Similarity   float64
	CreatedAt    time.Time
}
