// Package render provides output renderers for assembled documents.
// This file implements the Markdown renderer, the default output format.
package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/docpipe/core"
)

// MarkdownRenderer writes the document body, optionally preceded by a YAML
// front matter block.
type MarkdownRenderer struct {
	frontMatter bool
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(frontMatter bool) *MarkdownRenderer {
	return &MarkdownRenderer{frontMatter: frontMatter}
}

type frontMatter struct {
	Title  string `yaml:"title,omitempty"`
	Source string `yaml:"source"`
}

// Render returns the Markdown body as bytes.
func (r *MarkdownRenderer) Render(doc *core.Document) ([]byte, error) {
	if !r.frontMatter {
		return []byte(doc.Body), nil
	}

	meta, err := yaml.Marshal(frontMatter{Title: doc.Title, Source: doc.Source})
	if err != nil {
		return nil, fmt.Errorf("marshaling front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(meta)
	buf.WriteString("---\n\n")
	buf.WriteString(doc.Body)
	return buf.Bytes(), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
