// Package render — JSON and YAML renderers.
// Both emit the same structure: the document sections plus structural
// counts parsed back from the Markdown body.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/docpipe/core"
)

// DocJSON is the structured form of a document.
type DocJSON struct {
	Source    string       `json:"source" yaml:"source"`
	Title     string       `json:"title" yaml:"title"`
	Markdown  string       `json:"markdown" yaml:"markdown"`
	Sections  []SectionDoc `json:"sections" yaml:"sections"`
	Structure Structure    `json:"structure" yaml:"structure"`
}

// SectionDoc is one non-empty fragment of a document.
type SectionDoc struct {
	Name     string `json:"name" yaml:"name"`
	Markdown string `json:"markdown" yaml:"markdown"`
}

// Structure counts the Markdown elements of a document body.
type Structure struct {
	Headings   []Heading `json:"headings" yaml:"headings"`
	CodeBlocks int       `json:"code_blocks" yaml:"code_blocks"`
	Tables     int       `json:"tables" yaml:"tables"`
	TableRows  int       `json:"table_rows" yaml:"table_rows"`
}

// Heading is a Markdown heading.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the document into DocJSON.
func (r *JSONRenderer) Render(doc *core.Document) ([]byte, error) {
	data, err := json.MarshalIndent(structured(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// YAMLRenderer produces the DocJSON structure as YAML.
type YAMLRenderer struct{}

// NewYAMLRenderer creates a YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Render converts the document into YAML.
func (r *YAMLRenderer) Render(doc *core.Document) ([]byte, error) {
	data, err := yaml.Marshal(structured(doc))
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for YAML output.
func (r *YAMLRenderer) Extension() string {
	return ".yaml"
}

func structured(doc *core.Document) DocJSON {
	sections := make([]SectionDoc, 0, len(doc.Fragments))
	for _, f := range doc.Fragments {
		if f.Text == "" {
			continue
		}
		sections = append(sections, SectionDoc{Name: f.Label, Markdown: f.Text})
	}

	return DocJSON{
		Source:   doc.Source,
		Title:    doc.Title,
		Markdown: doc.Body,
		Sections: sections,
		Structure: Structure{
			Headings:   extractHeadings(doc.Body),
			CodeBlocks: countCodeBlocks(doc.Body),
			Tables:     countTables(doc.Body),
			TableRows:  countTableRows(doc.Body),
		},
	}
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// countTables counts Markdown tables by looking for separator rows (|---|).
var tableSepRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableSepRegex.FindAllString(md, -1))
}

// countTableRows counts body rows: table lines minus header and separator.
var tableLineRegex = regexp.MustCompile(`(?m)^\|.*\|$`)

func countTableRows(md string) int {
	return len(tableLineRegex.FindAllString(md, -1)) - 2*countTables(md)
}
