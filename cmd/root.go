// Package cmd implements the CLI commands for docpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gaurav-prasanna/docpipe/core/config"
	"github.com/gaurav-prasanna/docpipe/core/logging"
)

// Persistent flag variables.
var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagColor     string
)

var rootCmd = &cobra.Command{
	Use:   "docpipe",
	Short: "docpipe — generate Markdown API docs from JSDoc comments",
	Long: `docpipe scans a source tree for documentation comments and writes one
Markdown document per source file, mirroring the directory layout.

Usage:
  docpipe generate <input_dir> <output_dir> [flags]
  docpipe check <input_dir> <output_dir> [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupColor(flagColor)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to docpipe.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: console, json, pretty")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Colored output: auto, on, off")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ Error:"), err)
		os.Exit(1)
	}
}

// setupColor resolves --color against the terminal attached to stdout.
func setupColor(mode string) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "", "auto":
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return fmt.Errorf("invalid --color %q (want auto, on or off)", mode)
	}
	return nil
}

// loadConfig reads the configuration file and applies the persistent flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg := config.Default()
	path := flagConfig
	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil {
			return cfg, "", err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, "", err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
	return cfg, path, nil
}

// newLogger builds the command logger from the log configuration.
func newLogger(cfg config.Config) (logging.Logger, error) {
	provider, err := logging.NewProvider(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, err
	}
	return provider.GetLogger("docpipe"), nil
}
