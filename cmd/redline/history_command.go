package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"redline/internal/revision"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var source string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored revisions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *revision.Store) error {
				var (
					revisions []*revision.Revision
					err       error
				)
				if source != "" {
					sourcePath, absErr := filepath.Abs(source)
					if absErr != nil {
						return fmt.Errorf("resolve source path: %w", absErr)
					}
					revisions, err = store.ListBySource(cmd.Context(), sourcePath, limit)
				} else {
					revisions, err = store.List(cmd.Context(), limit)
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(revisions) == 0 {
					fmt.Fprintln(out, "No revisions recorded yet")
					return nil
				}

				rows := make([][]string, 0, len(revisions))
				for _, rev := range revisions {
					rows = append(rows, []string{
						shortID(rev.ID),
						rev.Section,
						rev.Model,
						fmt.Sprintf("%.2f", rev.Similarity),
						rev.CreatedAt.Local().Format(time.DateTime),
					})
				}

				columns := []tableColumn{
					{title: "ID"},
					{title: "Section"},
					{title: "Model"},
					{title: "Similarity", alignRight: true},
					{title: "Created"},
				}
				fmt.Fprintln(out, renderTable(columns, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum revisions to list")
	cmd.Flags().StringVar(&source, "source", "", "Only list revisions of this source file")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
