package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"redline/internal/render"
	"redline/internal/segment"
	"redline/internal/sentdiff"
)

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var htmlPath string

	cmd := &cobra.Command{
		Use:   "diff <original> <revised>",
		Short: "Show a sentence-level diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && htmlPath != "" {
				return fmt.Errorf("--json and --html are mutually exclusive")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			originalData, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read original: %w", err)
			}
			revisedData, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read revised: %w", err)
			}

			seg := segment.New(cfg.Revise.Abbreviations...)
			ops := sentdiff.Diff(seg, string(originalData), string(revisedData))

			switch {
			case asJSON:
				return render.JSON(cmd.OutOrStdout(), ops)
			case htmlPath != "":
				report := render.HTMLReport{
					Title:    filepath.Base(args[0]),
					Subtitle: fmt.Sprintf("%s vs %s", filepath.Base(args[0]), filepath.Base(args[1])),
				}
				if err := writeHTMLTo(htmlPath, report, ops); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", htmlPath)
				return nil
			default:
				return render.Console(cmd.OutOrStdout(), ops)
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the diff as JSON")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write the diff as an HTML report to this path")
	return cmd
}

func writeHTMLTo(path string, report render.HTMLReport, ops []sentdiff.Op) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()
	if err := render.HTML(file, report, ops); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return file.Close()
}
