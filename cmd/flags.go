package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpipe/core/assemble"
	"github.com/gaurav-prasanna/docpipe/core/classify"
	"github.com/gaurav-prasanna/docpipe/core/config"
	"github.com/gaurav-prasanna/docpipe/core/extract"
	"github.com/gaurav-prasanna/docpipe/core/fetch"
	"github.com/gaurav-prasanna/docpipe/core/jsdoc"
	"github.com/gaurav-prasanna/docpipe/core/logging"
	"github.com/gaurav-prasanna/docpipe/core/metrics"
	"github.com/gaurav-prasanna/docpipe/core/normalize"
	"github.com/gaurav-prasanna/docpipe/core/params"
	"github.com/gaurav-prasanna/docpipe/core/pipeline"
	"github.com/gaurav-prasanna/docpipe/core/render"
	"github.com/gaurav-prasanna/docpipe/core/task"
	"github.com/gaurav-prasanna/docpipe/crawl"
)

// Pipeline flag variables, shared by generate and check.
var (
	flagExt                 []string
	flagExclude             []string
	flagJobs                int
	flagParamJobs           int
	flagFormat              string
	flagOnError             string
	flagLabels              string
	flagFrontMatter         bool
	flagNormalizeHTML       bool
	flagImplicitDescription bool
	flagMetricsFile         string
)

func addPipelineFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVar(&flagExt, "ext", nil, "Source file extension to scan (repeatable, default js)")
	f.StringArrayVar(&flagExclude, "exclude", nil, "Glob of paths to skip, relative to input_dir (repeatable)")
	f.IntVar(&flagJobs, "jobs", 0, "Files processed concurrently (0 = number of CPUs)")
	f.IntVar(&flagParamJobs, "param-jobs", 0, "Parameter rows rendered concurrently per file (0 = number of CPUs)")
	f.StringVar(&flagFormat, "format", "markdown", "Output format: markdown, html, json, yaml, pdf")
	f.StringVar(&flagOnError, "on-error", config.OnErrorAbort, "On a failing file: abort (write nothing) or continue")
	f.StringVar(&flagLabels, "labels", classify.DefaultPreset, "Heading label preset: zh, en")
	f.BoolVar(&flagFrontMatter, "front-matter", false, "Prefix Markdown output with YAML front matter")
	f.BoolVar(&flagNormalizeHTML, "normalize-html", false, "Convert inline HTML in tag text to Markdown")
	f.BoolVar(&flagImplicitDescription, "implicit-description", false, "Use leading comment text as the description")
}

// applyPipelineFlags overrides cfg with every flag set on the command line
// and validates the result.
func applyPipelineFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("ext") {
		cfg.Extensions = flagExt
	}
	if f.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, flagExclude...)
	}
	if f.Changed("jobs") {
		cfg.Jobs = flagJobs
	}
	if f.Changed("param-jobs") {
		cfg.ParamJobs = flagParamJobs
	}
	if f.Changed("format") {
		cfg.Format = flagFormat
	}
	if f.Changed("on-error") {
		cfg.OnError = flagOnError
	}
	if f.Changed("labels") {
		cfg.Labels.Preset = flagLabels
	}
	if f.Changed("front-matter") {
		cfg.FrontMatter = flagFrontMatter
	}
	if f.Changed("normalize-html") {
		cfg.NormalizeHTML = flagNormalizeHTML
	}
	if f.Changed("implicit-description") {
		cfg.ImplicitDescription = flagImplicitDescription
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// buildOrchestrator wires the pipeline stages described by cfg.
func buildOrchestrator(cfg config.Config, logger logging.Logger, m *metrics.Metrics) (*pipeline.Orchestrator, error) {
	labels, err := cfg.Labels.Labels()
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(cfg.Format, render.Options{FrontMatter: cfg.FrontMatter})
	if err != nil {
		return nil, err
	}

	t := &task.Task{
		Fetcher:    fetch.New(),
		Extractor:  extract.New(),
		Parser:     jsdoc.New(jsdoc.Options{ImplicitDescription: cfg.ImplicitDescription}),
		Classifier: classify.New(labels, cfg.ExampleLang),
		Params:     params.New(labels, cfg.ParamJobs),
		Assembler:  assemble.New(),
		Renderer:   renderer,
		Logger:     logger,
		Metrics:    m,
	}
	if cfg.NormalizeHTML {
		t.Normalizer = normalize.New()
	}

	return pipeline.New(t, pipeline.Options{
		Jobs:    cfg.Jobs,
		OnError: cfg.OnError,
		Discovery: crawl.Options{
			Extensions: cfg.Extensions,
			Exclude:    cfg.Exclude,
		},
	}, logger, m), nil
}
