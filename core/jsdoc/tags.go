package jsdoc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/docpipe/core"
)

var errUnterminatedType = errors.New("unterminated type expression")

// buildTag interprets the body of a tag according to its name.
func buildTag(name, raw string, span core.Span) (core.Tag, error) {
	tag := core.Tag{Name: name, Raw: raw, Span: span}

	switch name {
	case "function", "func", "method":
		tag.Kind = core.KindFunction
		tag.Text = cleanText(raw)
		if fields := strings.Fields(cleanText(firstLine(raw))); len(fields) > 0 {
			tag.Ident = fields[0]
		}

	case "description", "desc":
		tag.Kind = core.KindDescription
		tag.Text = cleanText(raw)

	case "since":
		tag.Kind = core.KindSince
		fields := strings.Fields(cleanText(raw))
		if len(fields) == 0 {
			return tag, fmt.Errorf("@%s requires a version", name)
		}
		tag.Text = fields[0]

	case "param", "arg", "argument":
		tag.Kind = core.KindParam
		rest, err := readType(&tag, raw)
		if err != nil {
			return tag, err
		}
		tag.Text = cleanText(rest)
		if tag.Text == "" {
			return tag, fmt.Errorf("@%s requires a parameter name", name)
		}

	case "returns", "return":
		tag.Kind = core.KindReturn
		rest, err := readType(&tag, raw)
		if err != nil {
			return tag, err
		}
		tag.Text = cleanText(rest)

	case "example":
		tag.Kind = core.KindExample
		tag.Text = cleanText(raw)

	default:
		tag.Kind = core.KindUnknown
		tag.Text = cleanText(raw)
	}
	return tag, nil
}

// readType consumes an optional leading {type} expression and returns the
// remaining text. Nested braces are balanced.
func readType(tag *core.Tag, raw string) (string, error) {
	s := strings.TrimLeft(raw, " \t")
	if !strings.HasPrefix(s, "{") {
		return raw, nil
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				tag.Type = strings.TrimSpace(s[1:i])
				tag.HasType = true
				return s[i+1:], nil
			}
		}
	}
	return "", errUnterminatedType
}

// cleanText strips comment continuation prefixes and joins the non-empty
// lines of raw with single spaces.
func cleanText(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func firstLine(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		return raw[:i]
	}
	return raw
}
