package jsdoc

import (
	"fmt"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// cursor is a byte position in the text being scanned.
type cursor struct {
	src   string
	off   int
	limit int
}

// newCursor rejects inputs whose offsets would not fit a Span.
func newCursor(src string) (cursor, error) {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		return cursor{}, fmt.Errorf("source too large: %w", err)
	}
	return cursor{src: src, limit: len(src)}, nil
}

func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// peek returns the current byte, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// bump advances one byte and returns the byte it read.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

func (c *cursor) advance(n int) {
	c.off = min(c.off+n, c.limit)
}

func (c *cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.src[c.off:], s)
}

// skipPast moves the cursor just after the next occurrence of s.
// When s does not occur the cursor stops at EOF and false is returned.
func (c *cursor) skipPast(s string) bool {
	idx := strings.Index(c.src[c.off:], s)
	if idx < 0 {
		c.off = c.limit
		return false
	}
	c.off += idx + len(s)
	return true
}

func (c *cursor) skipLine() {
	if !c.skipPast("\n") {
		c.off = c.limit
	}
}

// skipString consumes a literal whose opening quote was already read.
// Single and double quoted literals end at a newline even when unterminated.
func (c *cursor) skipString(quote byte) {
	for !c.eof() {
		b := c.bump()
		switch {
		case b == '\\':
			c.bump()
		case b == quote:
			return
		case b == '\n' && quote != '`':
			return
		}
	}
}

// lineIndex holds the offset of every line start.
type lineIndex []int

func newLineIndex(src string) lineIndex {
	idx := lineIndex{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// position returns the 1-based line and column of off.
func (l lineIndex) position(off int) (line, col int) {
	i := sort.Search(len(l), func(i int) bool { return l[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, off - l[i] + 1
}
