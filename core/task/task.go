// Package task runs one source file through the pipeline:
// fetch → extract → parse → normalize → classify/aggregate → assemble →
// render.
package task

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/assemble"
	"github.com/gaurav-prasanna/docpipe/core/classify"
	"github.com/gaurav-prasanna/docpipe/core/errors"
	"github.com/gaurav-prasanna/docpipe/core/logging"
	"github.com/gaurav-prasanna/docpipe/core/metrics"
	"github.com/gaurav-prasanna/docpipe/core/output"
	"github.com/gaurav-prasanna/docpipe/core/params"
)

// Task holds the stages applied to every file. Normalizer, Logger and
// Metrics are optional.
type Task struct {
	Fetcher    core.Fetcher
	Extractor  core.Extractor
	Parser     core.Parser
	Normalizer core.Normalizer
	Classifier *classify.Classifier
	Params     *params.Aggregator
	Assembler  *assemble.Assembler
	Renderer   core.Renderer
	Writer     *output.Writer
	Logger     logging.Logger
	Metrics    *metrics.Metrics
}

// WithWriter returns a copy of t that maps output paths with w.
func (t *Task) WithWriter(w *output.Writer) *Task {
	c := *t
	c.Writer = w
	return &c
}

// Process renders the file at inputPath and pairs the result with its
// output path. Nothing is written.
func (t *Task) Process(ctx context.Context, inputPath string) (core.OutputUnit, error) {
	start := time.Now()

	result, err := t.Fetcher.Fetch(ctx, inputPath)
	if err != nil {
		return core.OutputUnit{}, err
	}

	text, err := t.Extractor.Extract(inputPath, result.Content)
	if err != nil {
		return core.OutputUnit{}, errors.Wrap(err, errors.KindParse, inputPath, "extracting scripts")
	}

	tags, err := t.Parser.Parse(inputPath, text)
	if err != nil {
		// Syntax errors already carry the path and position.
		return core.OutputUnit{}, errors.Wrap(err, errors.KindParse, "", "invalid documentation comment")
	}

	doc, err := t.Document(ctx, inputPath, tags)
	if err != nil {
		return core.OutputUnit{}, err
	}

	data, err := t.Renderer.Render(&doc)
	if err != nil {
		return core.OutputUnit{}, errors.Wrap(err, errors.KindRender, inputPath, "rendering")
	}

	t.Metrics.Processed(time.Since(start), params.Count(tags))
	t.logger().Debug("file rendered", "path", inputPath, "tags", len(tags), "bytes", len(data))

	return core.OutputUnit{
		Source:  inputPath,
		Path:    t.Writer.OutputPath(inputPath),
		Content: data,
	}, nil
}

// Document builds the assembled document for tags parsed from path.
func (t *Task) Document(ctx context.Context, path string, tags []core.Tag) (core.Document, error) {
	if t.Normalizer != nil {
		normalized, err := t.normalize(tags)
		if err != nil {
			return core.Document{}, errors.Wrap(err, errors.KindParse, path, "normalizing tag text")
		}
		tags = normalized
	}

	var paramTags []core.Tag
	fragments := make([]core.Fragment, 0, len(tags)+1)
	for _, tag := range tags {
		if tag.Kind == core.KindParam {
			paramTags = append(paramTags, tag)
			continue
		}
		fragments = append(fragments, t.Classifier.Classify(tag))
	}

	paramFragment, err := t.Params.Aggregate(ctx, paramTags)
	if err != nil {
		return core.Document{}, fmt.Errorf("%s: aggregating parameters: %w", path, err)
	}
	fragments = append(fragments, paramFragment)

	doc := t.Assembler.Assemble(fragments)
	doc.Source = path
	doc.Title = title(path, tags)
	return doc, nil
}

// normalize rewrites the free text of tags that end up in prose or table
// cells. The input slice is not modified.
func (t *Task) normalize(tags []core.Tag) ([]core.Tag, error) {
	out := make([]core.Tag, len(tags))
	for i, tag := range tags {
		switch {
		case tag.Kind == core.KindDescription,
			tag.Kind == core.KindParam,
			tag.Kind == core.KindReturn,
			tag.Kind == core.KindUnknown && tag.Name == "category":
			text, err := t.Normalizer.Normalize(tag.Text)
			if err != nil {
				return nil, err
			}
			tag.Text = text
		}
		out[i] = tag
	}
	return out, nil
}

func (t *Task) logger() logging.Logger {
	if t.Logger == nil {
		return logging.NoOp()
	}
	return t.Logger
}

// title is the first declared function name, or the file stem.
func title(path string, tags []core.Tag) string {
	for _, tag := range tags {
		if tag.Kind == core.KindFunction && tag.Ident != "" {
			return tag.Ident
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
