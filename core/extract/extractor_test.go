package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPassesScriptsThrough(t *testing.T) {
	src := "/** @function a */\nconst html = '<script>x</script>';\n"
	got, err := New().Extract("lib/a.js", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestExtractJoinsScriptElements(t *testing.T) {
	page := `<html><head><script>/** @function one */</script></head>
<body><p>text</p><script type="module">/** @function two */</script></body></html>`

	got, err := New().Extract("index.HTML", []byte(page))
	require.NoError(t, err)
	assert.Equal(t, "/** @function one */\n/** @function two */", got)
}

func TestExtractMarkupWithoutScripts(t *testing.T) {
	got, err := New().Extract("a.svelte", []byte("<div>{name}</div>"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIsMarkup(t *testing.T) {
	assert.True(t, IsMarkup("a.vue"))
	assert.True(t, IsMarkup("a.htm"))
	assert.False(t, IsMarkup("a.js"))
	assert.False(t, IsMarkup("html"))
}
