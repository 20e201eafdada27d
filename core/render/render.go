package render

import (
	"fmt"

	"github.com/gaurav-prasanna/docpipe/core"
)

// Formats lists the supported output formats.
var Formats = []string{"markdown", "html", "json", "yaml", "pdf"}

// Options tune renderer construction.
type Options struct {
	// FrontMatter prefixes Markdown output with YAML front matter.
	FrontMatter bool
}

// New returns the renderer for format. An empty format selects Markdown.
func New(format string, opts Options) (core.Renderer, error) {
	switch format {
	case "", "markdown", "md":
		return NewMarkdownRenderer(opts.FrontMatter), nil
	case "html":
		return NewHTMLRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "yaml":
		return NewYAMLRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
