// Package core defines the pipeline types and interfaces for docpipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"fmt"
)

// TagKind is the semantic kind of a parsed documentation tag.
type TagKind int

const (
	KindUnknown TagKind = iota
	KindFunction
	KindDescription
	KindSince
	KindParam
	KindReturn
	KindExample
)

func (k TagKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindDescription:
		return "description"
	case KindSince:
		return "since"
	case KindParam:
		return "param"
	case KindReturn:
		return "returns"
	case KindExample:
		return "example"
	default:
		return "unknown"
	}
}

// Span locates a tag in the text it was parsed from.
type Span struct {
	Start uint32 // byte offset, inclusive
	End   uint32 // byte offset, exclusive
	Line  int    // 1-based
	Col   int    // 1-based, in bytes
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Tag is one parsed documentation tag.
type Tag struct {
	Kind    TagKind
	Name    string // tag name as written, without '@'
	Ident   string // function name, when the tag declares one
	Type    string // type expression without the outer braces
	HasType bool
	Text    string // cleaned single-line free text
	Raw     string // raw tag body, continuation prefixes included
	Span    Span
}

// Section is a canonical slot in a rendered document.
type Section int

const (
	// SectionNone marks passthrough fragments that keep parser order.
	SectionNone Section = iota
	SectionFunction
	SectionDescription
	SectionSince
	SectionCategory
	SectionParameters
	SectionReturns
	SectionExample
)

// CanonicalOrder is the fixed order in which sections are emitted.
var CanonicalOrder = []Section{
	SectionFunction,
	SectionDescription,
	SectionSince,
	SectionCategory,
	SectionParameters,
	SectionReturns,
	SectionExample,
}

func (s Section) String() string {
	switch s {
	case SectionFunction:
		return "function"
	case SectionDescription:
		return "description"
	case SectionSince:
		return "since"
	case SectionCategory:
		return "category"
	case SectionParameters:
		return "params"
	case SectionReturns:
		return "returns"
	case SectionExample:
		return "example"
	default:
		return "none"
	}
}

// Fragment is the Markdown rendered for one tag or one aggregated tag group.
type Fragment struct {
	Section Section
	Label   string // tag name for passthrough fragments
	Text    string
}

// Document is the assembled output for one input file.
type Document struct {
	Source    string     `json:"source" yaml:"source"`
	Title     string     `json:"title" yaml:"title"`
	Fragments []Fragment `json:"-" yaml:"-"`
	Body      string     `json:"-" yaml:"-"`
}

// OutputUnit pairs an output path with its rendered content.
type OutputUnit struct {
	Source  string
	Path    string
	Content []byte
}

// FetchResult holds the raw bytes of a source file.
type FetchResult struct {
	Path    string
	Content []byte
}

// Fetcher reads a source file.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*FetchResult, error)
}

// Extractor pulls the script text out of a source file. Plain script
// files pass through unchanged.
type Extractor interface {
	Extract(path string, content []byte) (string, error)
}

// Parser turns script text into documentation tags.
type Parser interface {
	Parse(path string, text string) ([]Tag, error)
}

// Normalizer rewrites free text (e.g. inline HTML) into Markdown.
type Normalizer interface {
	Normalize(text string) (string, error)
}

// Renderer converts an assembled document into a final output format.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
