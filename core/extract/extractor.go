// Package extract implements the Extractor interface.
// It isolates the script text of a source file:
//  1. Plain script files (.js, .ts, ...) pass through unchanged
//  2. HTML-like files (.html, .htm, .vue, .svelte) yield the text of every
//     <script> element, joined by newlines
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupExtensions are the inputs whose scripts are embedded in markup.
var markupExtensions = map[string]bool{
	".html":   true,
	".htm":    true,
	".vue":    true,
	".svelte": true,
}

// ScriptExtractor returns the script text of a source file.
type ScriptExtractor struct{}

// New creates a ScriptExtractor.
func New() *ScriptExtractor {
	return &ScriptExtractor{}
}

// IsMarkup reports whether path is an HTML-like input.
func IsMarkup(path string) bool {
	return markupExtensions[strings.ToLower(filepath.Ext(path))]
}

// Extract returns the text to parse for documentation comments.
func (e *ScriptExtractor) Extract(path string, content []byte) (string, error) {
	if !IsMarkup(path) {
		return string(content), nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}

	var scripts []string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		scripts = append(scripts, s.Text())
	})
	return strings.Join(scripts, "\n"), nil
}
