package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"redline/internal/render"
	"redline/internal/revision"
	"redline/internal/segment"
	"redline/internal/sentdiff"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <revision-id>",
		Short: "Show one stored revision and its diff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *revision.Store) error {
				rev, err := store.GetByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				seg := segment.New(cfg.Revise.Abbreviations...)
				ops := sentdiff.Diff(seg, rev.OriginalText, rev.RevisedText)

				if asJSON {
					payload := struct {
						ID          string        `json:"id"`
						SourcePath  string        `json:"source_path"`
						Section     string        `json:"section"`
						Model       string        `json:"model"`
						Instruction string        `json:"instruction,omitempty"`
						Similarity  float64       `json:"similarity"`
						CreatedAt   time.Time     `json:"created_at"`
						Diff        []sentdiff.Op `json:"diff"`
					}{
						ID:          rev.ID,
						SourcePath:  rev.SourcePath,
						Section:     rev.Section,
						Model:       rev.Model,
						Instruction: rev.Instruction,
						Similarity:  rev.Similarity,
						CreatedAt:   rev.CreatedAt,
						Diff:        ops,
					}
					encoder := json.NewEncoder(cmd.OutOrStdout())
					encoder.SetIndent("", "  ")
					return encoder.Encode(payload)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Revision:   %s\n", rev.ID)
				fmt.Fprintf(out, "Source:     %s\n", rev.SourcePath)
				fmt.Fprintf(out, "Model:      %s\n", rev.Model)
				if rev.Instruction != "" {
					fmt.Fprintf(out, "Instruction: %s\n", rev.Instruction)
				}
				fmt.Fprintf(out, "Similarity: %.2f\n", rev.Similarity)
				fmt.Fprintf(out, "Created:    %s\n\n", rev.CreatedAt.Local().Format(time.DateTime))
				return render.Console(out, ops)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the revision and diff as JSON")
	return cmd
}
