package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"redline/internal/revision"
)

func newRestoreCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <revision-id>",
		Short: "Restore a source file to the text it had before a revision",
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

				backupPath := ""
				if _, statErr := os.Stat(rev.SourcePath); statErr == nil {
					backupPath, err = revision.WriteBackup(cfg, rev.SourcePath)
					if err != nil {
						return err
					}
				}

				if err := os.WriteFile(rev.SourcePath, []byte(rev.OriginalText), 0o644); err != nil {
					return fmt.Errorf("restore %s: %w", rev.SourcePath, err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Restored %s to its state before revision %s\n", rev.SourcePath, shortID(rev.ID))
				if backupPath != "" {
					fmt.Fprintf(out, "Current text backed up to %s\n", backupPath)
				}
				return nil
			})
		},
	}
	return cmd
}
