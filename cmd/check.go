package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <input_dir> <output_dir>",
	Short: "Report outputs that are missing or out of date",
	Long: `Check renders every source file in memory and compares the result with
the file generate would write. It exits non-zero when any output is missing
or differs. Nothing is written.

Examples:
  docpipe check ./src ./docs`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addPipelineFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputDir, outputDir := args[0], args[1]

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyPipelineFlags(cmd, &cfg); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	orchestrator, err := buildOrchestrator(cfg, logger, nil)
	if err != nil {
		return err
	}

	report, err := orchestrator.Check(context.Background(), inputDir, outputDir)
	if report != nil {
		out := cmd.OutOrStdout()
		for _, path := range report.Stale {
			fmt.Fprintf(out, "%s %s\n", color.YellowString("✗ Stale:"), path)
		}
		for _, f := range report.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s %v\n", color.RedString("✗ Error:"), f.Err)
		}
	}
	if err != nil {
		return err
	}
	if len(report.Stale) > 0 {
		return fmt.Errorf("%d of %d outputs are stale", len(report.Stale), report.Discovered)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d outputs up to date\n", color.GreenString("✓"), report.Discovered)
	return nil
}
