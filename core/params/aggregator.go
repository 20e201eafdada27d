// Package params renders the parameter tags of a document as one Markdown
// table.
package params

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/classify"
)

// Aggregator builds the parameters fragment.
type Aggregator struct {
	labels classify.Labels
	jobs   int
}

// New creates an Aggregator that renders at most jobs rows concurrently.
// jobs <= 0 selects GOMAXPROCS.
func New(labels classify.Labels, jobs int) *Aggregator {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Aggregator{labels: labels, jobs: jobs}
}

// Aggregate renders params as a table. Rows follow the order of params.
// Params without a declared type produce no row; the header is always
// present.
func (a *Aggregator) Aggregate(ctx context.Context, params []core.Tag) (core.Fragment, error) {
	rows := make([]string, len(params))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(min(a.jobs, max(len(params), 1)))
	for i, p := range params {
		g.Go(func() error {
			rows[i] = Row(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return core.Fragment{}, err
	}
	if err := ctx.Err(); err != nil {
		return core.Fragment{}, err
	}

	var b strings.Builder
	b.WriteString(a.header())
	for _, row := range rows {
		b.WriteString(row)
	}
	return core.Fragment{
		Section: core.SectionParameters,
		Label:   core.SectionParameters.String(),
		Text:    b.String(),
	}, nil
}

// Count returns the number of rows Aggregate renders for params.
func Count(params []core.Tag) int {
	n := 0
	for _, p := range params {
		if p.HasType {
			n++
		}
	}
	return n
}

func (a *Aggregator) header() string {
	return fmt.Sprintf("#### %s\n|  %s   | %s  | %s  |\n|  ----  | ----  | ----  |\n",
		a.labels.Parameters, a.labels.Name, a.labels.Type, a.labels.Description)
}

// Row renders one table row, or "" when p has no type.
func Row(p core.Tag) string {
	if !p.HasType {
		return ""
	}
	name, desc := splitName(p.Text)
	return fmt.Sprintf("|  %s  |  %s  | %s  |\n", name, classify.StripBraces(p.Type), desc)
}

// splitName splits text on its first run of whitespace.
func splitName(text string) (name, desc string) {
	text = strings.TrimSpace(text)
	i := strings.IndexAny(text, " \t\n\r")
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimLeft(text[i:], " \t\n\r")
}
