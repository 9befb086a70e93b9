package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"redline/internal/sentdiff"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// Console writes a line-oriented diff view. Each sentence becomes one line
// prefixed with its marker; color is applied when the writer is a terminal.
func Console(w io.Writer, ops []sentdiff.Op) error {
	colorize := shouldColorize(w)
	for _, op := range ops {
		text := strings.TrimRight(op.Text, "\n ")
		var line string
		switch op.Kind {
		case sentdiff.Added:
			line = "+ " + text
			if colorize {
				line = ansiGreen + line + ansiReset
			}
		case sentdiff.Removed:
			line = "- " + text
			if colorize {
				line = ansiRed + line + ansiReset
			}
		default:
			line = "  " + text
			if colorize {
				line = ansiDim + line + ansiReset
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	st := sentdiff.Summarize(ops)
	_, err := fmt.Fprintf(w, "\n%d unchanged, %d added, %d removed\n", st.Unchanged, st.Added, st.Removed)
	return err
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
