package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"redline/internal/revise"
	"redline/internal/revision"
	"redline/internal/sentdiff"
	"redline/internal/services/llm"
)

func newReviseCommand(ctx *commandContext) *cobra.Command {
	var instruction string
	var dryRun bool
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "revise <file>",
		Short: "Rewrite a LaTeX section file with the configured model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}

			client := llm.NewClient(llm.Config{
				APIKey:         cfg.LLM.APIKey,
				BaseURL:        cfg.LLM.BaseURL,
				Model:          cfg.LLM.Model,
				Referer:        cfg.LLM.Referer,
				Title:          cfg.LLM.Title,
				TimeoutSeconds: cfg.LLM.TimeoutSeconds,
				Temperature:    cfg.LLM.Temperature,
			})

			req := revise.Request{
				Path:        args[0],
				Instruction: instruction,
				DryRun:      dryRun,
				NoOpen:      noOpen,
			}

			run := func(store *revision.Store) error {
				svc := revise.NewService(cfg, store, client, ctx.ensureLogger())
				result, err := svc.Run(cmd.Context(), req)
				if err != nil {
					return err
				}
				printReviseResult(cmd, result)
				return nil
			}

			if dryRun {
				return run(nil)
			}
			return ctx.withStore(run)
		},
	}

	cmd.Flags().StringVarP(&instruction, "instruction", "i", "", "Extra guidance for the rewrite")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the diff without modifying the file")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not open the HTML report")
	return cmd
}

func printReviseResult(cmd *cobra.Command, result *revise.Result) {
	out := cmd.OutOrStdout()
	st := sentdiff.Summarize(result.Ops)
	fmt.Fprintf(out, "Sentences: %d unchanged, %d removed, %d added (similarity %.2f)\n",
		st.Unchanged, st.Removed, st.Added, result.Similarity)
	if result.Revision != nil {
		fmt.Fprintf(out, "Revision:  %s\n", result.Revision.ID)
	}
	if result.BackupPath != "" {
		fmt.Fprintf(out, "Backup:    %s\n", result.BackupPath)
	}
	fmt.Fprintf(out, "Report:    %s\n", result.ReportPath)
}
