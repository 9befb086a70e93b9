package render

import (
	"encoding/json"
	"io"

	"redline/internal/sentdiff"
)

// JSON writes the edit script as an indented JSON array of
// {"type","text"} records.
func JSON(w io.Writer, ops []sentdiff.Op) error {
	if ops == nil {
		ops = []sentdiff.Op{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ops)
}
