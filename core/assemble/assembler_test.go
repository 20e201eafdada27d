package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/assemble"
)

func frag(s core.Section, text string) core.Fragment {
	return core.Fragment{Section: s, Label: s.String(), Text: text}
}

func sections(doc core.Document) []core.Section {
	out := make([]core.Section, 0, len(doc.Fragments))
	for _, f := range doc.Fragments {
		out = append(out, f.Section)
	}
	return out
}

func TestAssembleCanonicalOrder(t *testing.T) {
	in := []core.Fragment{
		frag(core.SectionExample, "E"),
		{Section: core.SectionNone, Label: "deprecated"},
		frag(core.SectionReturns, "R"),
		frag(core.SectionParameters, "P"),
		frag(core.SectionDescription, "D"),
		frag(core.SectionFunction, "F"),
		frag(core.SectionSince, "S"),
	}

	doc := assemble.New().Assemble(in)

	assert.Equal(t, []core.Section{
		core.SectionFunction,
		core.SectionDescription,
		core.SectionSince,
		core.SectionParameters,
		core.SectionReturns,
		core.SectionExample,
		core.SectionNone,
	}, sections(doc))
	assert.Equal(t, "F\nD\nS\nP\nR\nE\n\n", doc.Body)
}

func TestAssembleDuplicatesKeepPoolOrder(t *testing.T) {
	in := []core.Fragment{
		frag(core.SectionDescription, "first"),
		{Section: core.SectionNone, Label: "author", Text: ""},
		frag(core.SectionDescription, "second"),
		frag(core.SectionFunction, "F"),
	}

	doc := assemble.New().Assemble(in)

	assert.Equal(t, []core.Section{
		core.SectionFunction,
		core.SectionDescription,
		core.SectionNone,
		core.SectionDescription,
	}, sections(doc))
	assert.Equal(t, "F\nfirst\n\nsecond\n", doc.Body)
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	in := []core.Fragment{frag(core.SectionReturns, "R"), frag(core.SectionFunction, "F")}

	assemble.New().Assemble(in)

	assert.Equal(t, core.SectionReturns, in[0].Section)
	assert.Equal(t, core.SectionFunction, in[1].Section)
}

func TestAssembleEmpty(t *testing.T) {
	doc := assemble.New().Assemble(nil)
	assert.Empty(t, doc.Fragments)
	assert.Empty(t, doc.Body)
}
