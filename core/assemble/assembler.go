// Package assemble orders rendered fragments into a document.
package assemble

import (
	"strings"

	"github.com/gaurav-prasanna/docpipe/core"
)

// Assembler places fragments in canonical section order.
type Assembler struct {
	order []core.Section
}

// New creates an Assembler using core.CanonicalOrder.
func New() *Assembler {
	return &Assembler{order: core.CanonicalOrder}
}

// Assemble moves the first fragment of each canonical section, in order, to
// the front and appends the remaining fragments in their original order.
// Every fragment contributes its text followed by one newline to the body.
func (a *Assembler) Assemble(fragments []core.Fragment) core.Document {
	pool := make([]core.Fragment, len(fragments))
	copy(pool, fragments)

	ordered := make([]core.Fragment, 0, len(fragments))
	for _, section := range a.order {
		for i, f := range pool {
			if f.Section == section {
				ordered = append(ordered, f)
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	ordered = append(ordered, pool...)

	var body strings.Builder
	for _, f := range ordered {
		body.WriteString(f.Text)
		body.WriteByte('\n')
	}
	return core.Document{Fragments: ordered, Body: body.String()}
}
