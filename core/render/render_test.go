package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/adrg/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/docpipe/core"
)

const sampleBody = "# foo\n\ndoes X\n\n" +
	"#### 参数\n|  名称   | 类型  | 描述  |\n|  ----  | ----  | ----  |\n|  x  |  number  | the input  |\n\n" +
	"#### 返回值\n| 类型  | 描述  |\n| ----  | ----  |\n|  number  | the result  |\n\n" +
	"#### Example\n```ts\n  foo(1)\n\n```\n"

func sampleDoc() *core.Document {
	return &core.Document{
		Source: "src/foo.js",
		Title:  "foo",
		Fragments: []core.Fragment{
			{Section: core.SectionFunction, Label: "function", Text: "# foo\n"},
			{Section: core.SectionDescription, Label: "description", Text: "does X\n"},
			{Section: core.SectionSince, Label: "since", Text: ""},
		},
		Body: sampleBody,
	}
}

func TestMarkdownPassthrough(t *testing.T) {
	out, err := NewMarkdownRenderer(false).Render(sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, sampleBody, string(out))
}

func TestMarkdownFrontMatter(t *testing.T) {
	out, err := NewMarkdownRenderer(true).Render(sampleDoc())
	require.NoError(t, err)

	var meta struct {
		Title  string `yaml:"title"`
		Source string `yaml:"source"`
	}
	rest, err := frontmatter.Parse(bytes.NewReader(out), &meta)
	require.NoError(t, err)

	assert.Equal(t, "foo", meta.Title)
	assert.Equal(t, "src/foo.js", meta.Source)
	assert.Contains(t, string(rest), "# foo\n")
}

func TestHTMLRendersTables(t *testing.T) {
	out, err := NewHTMLRenderer().Render(sampleDoc())
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>foo</title>")
	assert.Contains(t, html, "<h1>foo</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<code class=\"language-ts\">")
}

func TestJSONStructure(t *testing.T) {
	out, err := NewJSONRenderer().Render(sampleDoc())
	require.NoError(t, err)

	var got DocJSON
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Equal(t, "src/foo.js", got.Source)
	assert.Equal(t, sampleBody, got.Markdown)
	require.Len(t, got.Sections, 2, "empty fragments are omitted")
	assert.Equal(t, "function", got.Sections[0].Name)
	assert.Equal(t, 2, got.Structure.Tables)
	assert.Equal(t, 2, got.Structure.TableRows)
	assert.Equal(t, 1, got.Structure.CodeBlocks)
	assert.Equal(t, []Heading{
		{Level: 1, Text: "foo"},
		{Level: 4, Text: "参数"},
		{Level: 4, Text: "返回值"},
		{Level: 4, Text: "Example"},
	}, got.Structure.Headings)
}

func TestYAMLStructure(t *testing.T) {
	out, err := NewYAMLRenderer().Render(sampleDoc())
	require.NoError(t, err)

	var got DocJSON
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, "foo", got.Title)
	assert.Equal(t, 2, got.Structure.Tables)
}

func TestPDFOutput(t *testing.T) {
	out, err := NewPDFRenderer().Render(sampleDoc())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestNew(t *testing.T) {
	wantExt := map[string]string{
		"markdown": ".md",
		"html":     ".html",
		"json":     ".json",
		"yaml":     ".yaml",
		"pdf":      ".pdf",
	}
	for _, format := range Formats {
		r, err := New(format, Options{})
		require.NoError(t, err, format)
		assert.Equal(t, wantExt[format], r.Extension())
	}

	_, err := New("docx", Options{})
	require.Error(t, err)
}

func TestCleanInlineMarkdown(t *testing.T) {
	assert.Equal(t, "bold and code and link", cleanInlineMarkdown("**bold** and `code` and [link](http://x)"))
}
