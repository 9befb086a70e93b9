package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"redline/internal/browser"
	"redline/internal/render"
	"redline/internal/revision"
	"redline/internal/segment"
	"redline/internal/sentdiff"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "report <revision-id>",
		Short: "Regenerate the HTML report for a stored revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			return ctx.withStore(func(store *revision.Store) error {
				rev, err := store.GetByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				seg := segment.New(cfg.Revise.Abbreviations...)
				ops := sentdiff.Diff(seg, rev.OriginalText, rev.RevisedText)

				report := render.HTMLReport{
					Title:    filepath.Base(rev.SourcePath),
					Subtitle: fmt.Sprintf("revision %s · %s", shortID(rev.ID), rev.Model),
				}
				reportPath, err := render.WriteHTMLFile(cfg.Paths.ReportDir, report, ops)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", reportPath)
				if open {
					if err := browser.Open(cmd.Context(), reportPath); err != nil {
						return fmt.Errorf("open report: %w", err)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the report in the default browser")
	return cmd
}
