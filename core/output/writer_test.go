package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		out    string
		path   string
		ext    string
		expect string
	}{
		{"nested", "src", "docs", "src/lib/a.js", ".md", "docs/lib/a.md"},
		{"top level", "src", "docs", "src/a.js", ".md", "docs/a.md"},
		{"trailing slashes", "src/", "docs/", "src/a.js", ".md", "docs/a.md"},
		{"other extension", "src", "out", "src/x/y.ts", ".json", "out/x/y.json"},
		{"dot input", ".", "docs", "a.js", ".md", "docs/a.md"},
		{"sibling prefix not replaced", "src", "docs", "srcx/a.js", ".md", "srcx/a.md"},
		{"bare file name", "elsewhere", "docs", "a.js", ".md", "docs/a.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(filepath.FromSlash(tt.in), filepath.FromSlash(tt.out), tt.ext)
			assert.Equal(t, filepath.FromSlash(tt.expect), w.OutputPath(filepath.FromSlash(tt.path)))
		})
	}
}

func TestWriteCreatesParents(t *testing.T) {
	root := t.TempDir()
	w := New(filepath.Join(root, "src"), filepath.Join(root, "docs"), ".md")
	path := filepath.Join(root, "docs", "a", "b", "c.md")

	require.NoError(t, w.Write(core.OutputUnit{Path: path, Content: []byte("one")}))
	require.NoError(t, w.Write(core.OutputUnit{Path: path, Content: []byte("two")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestWriteFailsWhenParentIsFile(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "docs")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	w := New(root, blocker, ".md")
	err := w.Write(core.OutputUnit{Path: filepath.Join(blocker, "a.md")})
	require.Error(t, err)
}

func TestBatchConcurrentAdd(t *testing.T) {
	var b Batch
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Add(core.OutputUnit{Path: fmt.Sprintf("out/%02d.md", i)})
		}()
	}
	wg.Wait()

	units := b.Units()
	require.Len(t, units, 50)
	assert.Equal(t, 50, b.Len())
	for i, u := range units {
		assert.Equal(t, fmt.Sprintf("out/%02d.md", i), u.Path)
	}
}
