// Package config loads docpipe.toml.
//
// The file is optional. It is looked up from the working directory
// upwards; values decode on top of Default(), and command-line flags that
// were set explicitly override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gaurav-prasanna/docpipe/core/classify"
	docerrors "github.com/gaurav-prasanna/docpipe/core/errors"
	"github.com/gaurav-prasanna/docpipe/core/logging"
	"github.com/gaurav-prasanna/docpipe/core/render"
	"github.com/gaurav-prasanna/docpipe/crawl"
)

// FileName is the name of the configuration file.
const FileName = "docpipe.toml"

// Error policies.
const (
	OnErrorAbort    = "abort"
	OnErrorContinue = "continue"
)

// Config is the full docpipe configuration.
type Config struct {
	Extensions          []string     `toml:"extensions"`
	Exclude             []string     `toml:"exclude"`
	Jobs                int          `toml:"jobs"`
	ParamJobs           int          `toml:"param_jobs"`
	OnError             string       `toml:"on_error"`
	Format              string       `toml:"format"`
	ExampleLang         string       `toml:"example_lang"`
	FrontMatter         bool         `toml:"front_matter"`
	NormalizeHTML       bool         `toml:"normalize_html"`
	ImplicitDescription bool         `toml:"implicit_description"`
	MetricsFile         string       `toml:"metrics_file"`
	Labels              LabelsConfig `toml:"labels"`
	Log                 LogConfig    `toml:"log"`
}

// LabelsConfig selects a label preset and overrides individual labels.
type LabelsConfig struct {
	Preset      string `toml:"preset"`
	Since       string `toml:"since"`
	Category    string `toml:"category"`
	Parameters  string `toml:"parameters"`
	Returns     string `toml:"returns"`
	Example     string `toml:"example"`
	Name        string `toml:"name"`
	Type        string `toml:"type"`
	Description string `toml:"description"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Extensions:  append([]string(nil), crawl.DefaultExtensions...),
		Exclude:     append([]string(nil), crawl.DefaultExclude...),
		OnError:     OnErrorAbort,
		Format:      "markdown",
		ExampleLang: classify.DefaultExampleLang,
		Labels:      LabelsConfig{Preset: classify.DefaultPreset},
		Log:         LogConfig{Level: "info", Format: "console"},
	}
}

// Find walks up from startDir to the nearest docpipe.toml. It reports
// false when none exists.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the file at path on top of Default() and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, docerrors.Wrap(err, docerrors.KindConfig, path, "parsing TOML")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, docerrors.Errorf(docerrors.KindConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	// An explicit empty list keeps the defaults meaningful.
	if meta.IsDefined("extensions") && len(cfg.Extensions) == 0 {
		return Config{}, docerrors.Errorf(docerrors.KindConfig, "%s: extensions must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, docerrors.Wrap(err, docerrors.KindConfig, path, "invalid configuration")
	}
	return cfg, nil
}

var extensionPattern = regexp.MustCompile(`^\.?[A-Za-z0-9_-]+$`)

// Validate checks every field.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Extensions, validation.Required, validation.Each(validation.Required, validation.Match(extensionPattern))),
		validation.Field(&c.Jobs, validation.Min(0)),
		validation.Field(&c.ParamJobs, validation.Min(0)),
		validation.Field(&c.OnError, validation.Required, validation.In(OnErrorAbort, OnErrorContinue)),
		validation.Field(&c.Format, validation.Required, validation.In(toAny(render.Formats)...)),
		validation.Field(&c.ExampleLang, validation.Match(regexp.MustCompile(`^[A-Za-z0-9_+-]*$`))),
		validation.Field(&c.Labels),
		validation.Field(&c.Log),
	)
}

// Validate checks the preset name.
func (l LabelsConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Preset, validation.In(toAny(classify.PresetNames())...)),
	)
}

// Validate checks the level and format.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In(toAny(logging.Levels)...)),
		validation.Field(&l.Format, validation.In(toAny(logging.Formats)...)),
	)
}

// Labels resolves the preset and applies the overrides.
func (l LabelsConfig) Labels() (classify.Labels, error) {
	base, err := classify.Preset(l.Preset)
	if err != nil {
		return classify.Labels{}, docerrors.Wrap(err, docerrors.KindConfig, "", "resolving labels")
	}
	return base.Override(classify.Labels{
		Since:       l.Since,
		Category:    l.Category,
		Parameters:  l.Parameters,
		Returns:     l.Returns,
		Example:     l.Example,
		Name:        l.Name,
		Type:        l.Type,
		Description: l.Description,
	}), nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
