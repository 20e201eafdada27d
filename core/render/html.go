// Package render — HTML renderer.
// Converts the Markdown body with goldmark; tables need the GFM extension.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/gaurav-prasanna/docpipe/core"
)

// HTMLRenderer renders documents as standalone HTML pages.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts the document body to HTML.
func (r *HTMLRenderer) Render(doc *core.Document) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(doc.Body), &body); err != nil {
		return nil, fmt.Errorf("converting markdown to HTML: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(doc.Title))
	buf.WriteString("</head>\n<body>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
