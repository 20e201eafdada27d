// Package classify renders individual documentation tags to Markdown.
//
// Each tag maps to one canonical section (or to a passthrough slot for
// unrecognized tags) and is rendered with fixed formatting rules. Tags
// missing required data render as empty text but keep their slot.
// Parameter tags are rendered as a group by package params.
package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docpipe/core"
)

// DefaultExampleLang is the fence language of example code blocks.
const DefaultExampleLang = "ts"

// exampleLine matches one comment continuation line: "* <content>\n".
var exampleLine = regexp.MustCompile(`\* (.*)\n`)

var braceStripper = strings.NewReplacer("{", "", "}", "")

// Classifier renders single tags.
type Classifier struct {
	labels      Labels
	exampleLang string
}

// New creates a Classifier. An empty exampleLang selects DefaultExampleLang.
func New(labels Labels, exampleLang string) *Classifier {
	if exampleLang == "" {
		exampleLang = DefaultExampleLang
	}
	return &Classifier{labels: labels, exampleLang: exampleLang}
}

// Classify renders tag to a fragment. It has no side effects.
func (c *Classifier) Classify(tag core.Tag) core.Fragment {
	switch tag.Kind {
	case core.KindFunction:
		return c.fragment(core.SectionFunction, c.function(tag))
	case core.KindDescription:
		return c.fragment(core.SectionDescription, tag.Text+"\n")
	case core.KindSince:
		return c.fragment(core.SectionSince, fmt.Sprintf("#### %s\n`%s`\n", c.labels.Since, tag.Text))
	case core.KindReturn:
		return c.fragment(core.SectionReturns, c.returns(tag))
	case core.KindExample:
		return c.fragment(core.SectionExample, c.example(tag))
	case core.KindParam:
		// Parameters are rendered as one table by params.Aggregator.
		return c.fragment(core.SectionParameters, "")
	default:
		if tag.Name == "category" {
			return c.fragment(core.SectionCategory, fmt.Sprintf("#### %s\n%s\n", c.labels.Category, tag.Text))
		}
		return core.Fragment{Section: core.SectionNone, Label: tag.Name}
	}
}

func (c *Classifier) fragment(section core.Section, text string) core.Fragment {
	return core.Fragment{Section: section, Label: section.String(), Text: text}
}

func (c *Classifier) function(tag core.Tag) string {
	if tag.Ident == "" {
		return ""
	}
	return fmt.Sprintf("# %s\n", tag.Ident)
}

// returns renders nothing when the tag has no type, even if it carries a
// description.
func (c *Classifier) returns(tag core.Tag) string {
	if !tag.HasType {
		return ""
	}
	return fmt.Sprintf("#### %s\n| %s  | %s  |\n| ----  | ----  |\n|  %s  | %s  |\n",
		c.labels.Returns, c.labels.Type, c.labels.Description, StripBraces(tag.Type), tag.Text)
}

func (c *Classifier) example(tag core.Tag) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#### %s\n```%s\n", c.labels.Example, c.exampleLang)
	for _, m := range exampleLine.FindAllStringSubmatch(tag.Raw, -1) {
		fmt.Fprintf(&b, "  %s\n", m[1])
	}
	b.WriteString("\n```")
	return b.String()
}

// StripBraces removes every brace from a type expression.
func StripBraces(typ string) string {
	return braceStripper.Replace(typ)
}
