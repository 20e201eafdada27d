// Package pipeline drives a whole run: discovery, bounded concurrent
// per-file processing, then writing once every file has finished.
package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/errors"
	"github.com/gaurav-prasanna/docpipe/core/logging"
	"github.com/gaurav-prasanna/docpipe/core/metrics"
	"github.com/gaurav-prasanna/docpipe/core/output"
	"github.com/gaurav-prasanna/docpipe/core/task"
	"github.com/gaurav-prasanna/docpipe/crawl"
)

// Error policies.
const (
	Abort    = "abort"
	Continue = "continue"
)

// ErrFilesFailed is returned in continue mode when at least one file
// failed.
var ErrFilesFailed = stderrors.New("some files failed")

// Options configure an Orchestrator.
type Options struct {
	// Jobs bounds concurrent file tasks; <= 0 selects GOMAXPROCS.
	Jobs int
	// OnError is Abort (default) or Continue.
	OnError   string
	Discovery crawl.Options
}

// Failure is a file that could not be processed or written.
type Failure struct {
	Source string
	Err    error
}

// Report summarizes a run.
type Report struct {
	RunID      string
	Discovered int
	// Written lists output paths in the order they were written.
	Written  []string
	Failures []Failure
	// Stale lists output paths that are missing or out of date (check only).
	Stale []string
}

// Orchestrator runs a Task over every discovered file.
type Orchestrator struct {
	task    *task.Task
	opts    Options
	logger  logging.Logger
	metrics *metrics.Metrics
}

// New creates an Orchestrator. logger and m may be nil.
func New(t *task.Task, opts Options, logger logging.Logger, m *metrics.Metrics) *Orchestrator {
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	if opts.OnError == "" {
		opts.OnError = Abort
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Orchestrator{task: t, opts: opts, logger: logger, metrics: m}
}

// Run renders every source file under inputDir and writes the results
// under outputDir, mirroring the tree. In abort mode the first failure
// stops the run and nothing is written.
func (o *Orchestrator) Run(ctx context.Context, inputDir, outputDir string) (*Report, error) {
	units, report, writer, err := o.render(ctx, inputDir, outputDir)
	if err != nil {
		return report, err
	}

	for _, unit := range units {
		if err := writer.Write(unit); err != nil {
			o.metrics.Failed(errors.KindOf(err).String())
			report.Failures = append(report.Failures, Failure{Source: unit.Source, Err: err})
			if o.opts.OnError == Abort {
				return report, err
			}
			o.logger.Warn("write failed", "path", unit.Path, "error", err)
			continue
		}
		o.metrics.Written()
		report.Written = append(report.Written, unit.Path)
	}

	o.logger.Info("run finished",
		"discovered", report.Discovered,
		"written", len(report.Written),
		"failed", len(report.Failures))
	return report, o.failuresError(report)
}

// Check renders every source file like Run but only compares the result
// with what is on disk, recording missing or differing outputs as stale.
func (o *Orchestrator) Check(ctx context.Context, inputDir, outputDir string) (*Report, error) {
	units, report, _, err := o.render(ctx, inputDir, outputDir)
	if err != nil {
		return report, err
	}

	for _, unit := range units {
		current, err := os.ReadFile(unit.Path)
		switch {
		case err == nil && bytes.Equal(current, unit.Content):
		case err == nil || stderrors.Is(err, os.ErrNotExist):
			report.Stale = append(report.Stale, unit.Path)
		default:
			report.Failures = append(report.Failures, Failure{
				Source: unit.Source,
				Err:    errors.Wrap(err, errors.KindIO, unit.Path, "reading existing output"),
			})
		}
	}

	o.logger.Info("check finished",
		"discovered", report.Discovered,
		"stale", len(report.Stale),
		"failed", len(report.Failures))
	return report, o.failuresError(report)
}

// render discovers and processes every file. It returns the units sorted
// by output path once all tasks have finished.
func (o *Orchestrator) render(ctx context.Context, inputDir, outputDir string) ([]core.OutputUnit, *Report, *output.Writer, error) {
	report := &Report{RunID: uuid.NewString()}
	logger := logging.WithFields(o.logger, map[string]any{"run_id": report.RunID})

	discovery := o.opts.Discovery
	if discovery.Logger == nil {
		discovery.Logger = logger
	}
	files, err := crawl.Discover(inputDir, discovery)
	if err != nil {
		return nil, report, nil, err
	}
	report.Discovered = len(files)
	o.metrics.Discovered(len(files))
	logger.Info("discovered source files", "root", inputDir, "count", len(files))

	writer := output.New(inputDir, outputDir, o.task.Renderer.Extension())
	t := o.task.WithWriter(writer)
	if t.Logger == nil {
		t.Logger = logger
	}
	if t.Metrics == nil {
		t.Metrics = o.metrics
	}

	var (
		batch    output.Batch
		mu       sync.Mutex
		failures []Failure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(o.opts.Jobs, max(len(files), 1)))
	for _, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			unit, err := t.Process(gctx, path)
			if err != nil {
				if gctx.Err() != nil && stderrors.Is(err, context.Canceled) {
					return err
				}
				o.metrics.Failed(errors.KindOf(err).String())
				mu.Lock()
				failures = append(failures, Failure{Source: path, Err: err})
				mu.Unlock()
				if o.opts.OnError == Abort {
					return err
				}
				logger.Warn("file failed", "path", path, "error", err)
				return nil
			}
			batch.Add(unit)
			return nil
		})
	}
	waitErr := g.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].Source < failures[j].Source })
	report.Failures = failures
	if waitErr != nil {
		return nil, report, writer, waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, report, writer, err
	}
	return batch.Units(), report, writer, nil
}

func (o *Orchestrator) failuresError(report *Report) error {
	if len(report.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrFilesFailed, len(report.Failures), report.Discovered)
}
