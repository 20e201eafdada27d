// Package normalize implements the Normalizer interface.
// It converts inline HTML found in tag text into Markdown so that every
// renderer receives plain Markdown.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts text containing HTML into single-line Markdown. Text
// without markup is returned untouched.
func (n *MarkdownNormalizer) Normalize(text string) (string, error) {
	if !strings.Contains(text, "<") {
		return text, nil
	}
	markdown, err := htmltomarkdown.ConvertString(text)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	// Tag text lives in table cells and single lines.
	return strings.Join(strings.Fields(markdown), " "), nil
}
