package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docpipe/core/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
extensions = ["js", ".ts"]
jobs = 4
on_error = "continue"
format = "html"
front_matter = true

[labels]
preset = "en"
returns = "Result"

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"js", ".ts"}, cfg.Extensions)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, OnErrorContinue, cfg.OnError)
	assert.Equal(t, "html", cfg.Format)
	assert.True(t, cfg.FrontMatter)
	assert.Equal(t, "ts", cfg.ExampleLang, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)

	labels, err := cfg.Labels.Labels()
	require.NoError(t, err)
	assert.Equal(t, "Result", labels.Returns)
	assert.Equal(t, "Since", labels.Since)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad policy":     `on_error = "retry"`,
		"bad format":     `format = "docx"`,
		"negative jobs":  `jobs = -1`,
		"bad extension":  `extensions = ["j s"]`,
		"empty list":     `extensions = []`,
		"unknown preset": "[labels]\npreset = \"fr\"",
		"bad log level":  "[log]\nlevel = \"loud\"",
		"unknown key":    `colour = "red"`,
		"malformed toml": `jobs = `,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), body))
			require.Error(t, err)
			assert.Equal(t, errors.KindConfig, errors.KindOf(err))
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)

	wantAbs, err := filepath.Abs(want)
	require.NoError(t, err)
	assert.Equal(t, wantAbs, got)
}

func TestFindNone(t *testing.T) {
	// Temp directories normally have no docpipe.toml above them.
	dir := t.TempDir()
	if _, ok, _ := Find(filepath.Dir(dir)); ok {
		t.Skip("a docpipe.toml exists above the temp directory")
	}

	_, ok, err := Find(dir)
	require.NoError(t, err)
	assert.False(t, ok)
}
