// Package jsdoc extracts documentation tags from JavaScript-like source.
//
// Only /** ... */ blocks are read. Line comments, ordinary block comments
// and string or template literals are skipped so that comment markers
// inside them are not mistaken for documentation. Within a block a tag
// starts at '@' followed by a letter when the '@' is preceded by
// whitespace or '*'; the tag body runs up to the next tag or the end of
// the block.
package jsdoc

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/gaurav-prasanna/docpipe/core"
)

// SyntaxError reports a documentation comment that cannot be parsed.
type SyntaxError struct {
	Path string
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Msg)
}

// Options configure a Parser.
type Options struct {
	// ImplicitDescription turns the text before the first tag of a block
	// into a description tag when the block has no explicit one.
	ImplicitDescription bool
}

// Parser implements core.Parser for JSDoc comments.
type Parser struct {
	opts Options
}

// New creates a Parser.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse returns the tags of every documentation block in text, in source
// order.
func (p *Parser) Parse(path string, text string) ([]core.Tag, error) {
	c, err := newCursor(text)
	if err != nil {
		return nil, &SyntaxError{Path: path, Line: 1, Col: 1, Msg: err.Error()}
	}
	lines := newLineIndex(text)

	var tags []core.Tag
	for !c.eof() {
		switch {
		case c.hasPrefix("/**") && !c.hasPrefix("/**/"):
			start := c.off
			c.advance(3)
			bodyStart := c.off
			if !c.skipPast("*/") {
				return nil, syntaxErrorAt(path, lines, start, "unterminated documentation comment")
			}
			block, err := p.parseBlock(path, lines, text[bodyStart:c.off-2], bodyStart)
			if err != nil {
				return nil, err
			}
			tags = append(tags, block...)
		case c.hasPrefix("/*"):
			c.advance(2)
			c.skipPast("*/")
		case c.hasPrefix("//"):
			c.skipLine()
		case c.peek() == '\'' || c.peek() == '"' || c.peek() == '`':
			c.skipString(c.bump())
		default:
			c.bump()
		}
	}
	return tags, nil
}

// parseBlock parses the body of one documentation block. base is the
// offset of body within the full text.
func (p *Parser) parseBlock(path string, lines lineIndex, body string, base int) ([]core.Tag, error) {
	starts := tagStarts(body)

	var tags []core.Tag
	hasDescription := false
	for i, start := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		nameEnd := start + 1
		for nameEnd < end && isNameByte(body[nameEnd]) {
			nameEnd++
		}

		span := makeSpan(lines, base+start, base+end)
		tag, err := buildTag(body[start+1:nameEnd], body[nameEnd:end], span)
		if err != nil {
			return nil, &SyntaxError{Path: path, Line: span.Line, Col: span.Col, Msg: err.Error()}
		}
		if tag.Kind == core.KindDescription {
			hasDescription = true
		}
		tags = append(tags, tag)
	}

	if p.opts.ImplicitDescription && !hasDescription {
		lead := body
		if len(starts) > 0 {
			lead = body[:starts[0]]
		}
		if text := cleanText(lead); text != "" {
			implicit := core.Tag{
				Kind: core.KindDescription,
				Name: "description",
				Text: text,
				Raw:  lead,
				Span: makeSpan(lines, base, base+len(lead)),
			}
			tags = append([]core.Tag{implicit}, tags...)
		}
	}
	return tags, nil
}

// tagStarts returns the offsets of every '@' in body that opens a tag.
func tagStarts(body string) []int {
	var starts []int
	for i := 0; i+1 < len(body); i++ {
		if body[i] != '@' || !isNameStart(body[i+1]) {
			continue
		}
		if i > 0 {
			switch body[i-1] {
			case ' ', '\t', '\n', '\r', '*':
			default:
				continue
			}
		}
		starts = append(starts, i)
	}
	return starts
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9') || b == '_' || b == '-'
}

func makeSpan(lines lineIndex, start, end int) core.Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	line, col := lines.position(start)
	return core.Span{Start: s, End: e, Line: line, Col: col}
}

func syntaxErrorAt(path string, lines lineIndex, off int, msg string) *SyntaxError {
	line, col := lines.position(off)
	return &SyntaxError{Path: path, Line: line, Col: col, Msg: msg}
}
