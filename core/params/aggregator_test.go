package params_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/classify"
	"github.com/gaurav-prasanna/docpipe/core/params"
)

const zhHeader = "#### 参数\n|  名称   | 类型  | 描述  |\n|  ----  | ----  | ----  |\n"

func newAggregator(t *testing.T, jobs int) *params.Aggregator {
	t.Helper()
	labels, err := classify.Preset(classify.DefaultPreset)
	require.NoError(t, err)
	return params.New(labels, jobs)
}

func param(typ, text string) core.Tag {
	return core.Tag{Kind: core.KindParam, Name: "param", Type: typ, HasType: typ != "", Text: text}
}

func TestAggregateSingleParam(t *testing.T) {
	frag, err := newAggregator(t, 0).Aggregate(context.Background(), []core.Tag{param("number", "x the input")})
	require.NoError(t, err)

	assert.Equal(t, core.SectionParameters, frag.Section)
	assert.Equal(t, zhHeader+"|  x  |  number  | the input  |\n", frag.Text)
}

func TestAggregateZeroParamsIsHeaderOnly(t *testing.T) {
	frag, err := newAggregator(t, 0).Aggregate(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, zhHeader, frag.Text)
}

func TestAggregateKeepsTagOrder(t *testing.T) {
	var tags []core.Tag
	var want strings.Builder
	want.WriteString(zhHeader)
	for i := range 200 {
		tags = append(tags, param("string", fmt.Sprintf("p%d value %d", i, i)))
		fmt.Fprintf(&want, "|  p%d  |  string  | value %d  |\n", i, i)
	}

	frag, err := newAggregator(t, 8).Aggregate(context.Background(), tags)
	require.NoError(t, err)

	assert.Equal(t, want.String(), frag.Text)
}

func TestAggregateDropsUntypedParams(t *testing.T) {
	tags := []core.Tag{param("", "a first"), param("", "b second")}

	frag, err := newAggregator(t, 2).Aggregate(context.Background(), tags)
	require.NoError(t, err)

	assert.Equal(t, zhHeader, frag.Text)
	assert.Equal(t, 0, params.Count(tags))
}

func TestAggregateMixedTypedAndUntyped(t *testing.T) {
	tags := []core.Tag{param("", "a dropped"), param("{Object}", "opts   the   options")}

	frag, err := newAggregator(t, 0).Aggregate(context.Background(), tags)
	require.NoError(t, err)

	assert.Equal(t, zhHeader+"|  opts  |  Object  | the   options  |\n", frag.Text)
	assert.Equal(t, 1, params.Count(tags))
}

func TestRowSingleToken(t *testing.T) {
	assert.Equal(t, "|  x  |  number  |   |\n", params.Row(param("number", "x")))
}

func TestAggregateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAggregator(t, 0).Aggregate(ctx, []core.Tag{param("number", "x")})
	require.ErrorIs(t, err, context.Canceled)
}
