// Package cmd — generate command.
// This is the main command that orchestrates the pipeline:
// discover → fetch → extract → parse → classify → assemble → render → write.
//
// It handles flag overrides, renderer selection and the error policy.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpipe/core/metrics"
	"github.com/gaurav-prasanna/docpipe/core/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate <input_dir> <output_dir>",
	Short: "Generate Markdown documentation for every source file",
	Long: `Generate scans input_dir for source files, renders the documentation
comments of each file and writes one document per file under output_dir,
mirroring the input tree. Existing outputs are overwritten.

Examples:
  docpipe generate ./src ./docs
  docpipe generate ./src ./docs --ext js --ext ts --jobs 8
  docpipe generate ./src ./site --format html --labels en
  docpipe generate ./src ./docs --on-error continue --metrics-file docpipe.prom`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addPipelineFlags(generateCmd)
	generateCmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputDir, outputDir := args[0], args[1]

	cfg, cfgPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyPipelineFlags(cmd, &cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile = flagMetricsFile
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		logger.Debug("configuration loaded", "path", cfgPath)
	}

	m := metrics.New()
	orchestrator, err := buildOrchestrator(cfg, logger, m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating documentation from %s...\n", inputDir)

	report, runErr := orchestrator.Run(context.Background(), inputDir, outputDir)
	printReport(out, cmd.ErrOrStderr(), report)

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("metrics not written", "path", cfg.MetricsFile, "error", err)
		}
	}
	return runErr
}

// printReport prints one line per written file and per failure.
func printReport(out, errOut io.Writer, report *pipeline.Report) {
	if report == nil {
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, path := range report.Written {
		fmt.Fprintf(out, "%s %s\n", green("✓ Written:"), path)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(errOut, "  %s %v\n", red("✗ Error:"), f.Err)
	}
	if len(report.Failures) > 0 {
		fmt.Fprintf(errOut, "\n%d/%d files failed\n", len(report.Failures), report.Discovered)
	}
	fmt.Fprintf(out, "%d files discovered, %d written\n", report.Discovered, len(report.Written))
}
