// Package crawl — path filtering rules.
// Source files are selected by base name and pruned by exclusion globs
// matched against slash-separated paths relative to the input root.
package crawl

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultExtensions are the source extensions scanned when none are set.
var DefaultExtensions = []string{"js"}

// DefaultExclude are the exclusion globs applied when none are set.
var DefaultExclude = []string{"node_modules", "**/node_modules"}

// Rules decide which paths discovery keeps.
type Rules struct {
	files   glob.Glob
	exclude []glob.Glob
}

// NewRules compiles the extension and exclusion patterns. Extensions may
// be given with or without the leading dot.
func NewRules(extensions, exclude []string) (*Rules, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	quoted := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			return nil, fmt.Errorf("empty extension")
		}
		quoted = append(quoted, glob.QuoteMeta(ext))
	}
	pattern := "*.{" + strings.Join(quoted, ",") + "}"
	files, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("compiling extension pattern %q: %w", pattern, err)
	}

	r := &Rules{files: files}
	for _, p := range exclude {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling exclude pattern %q: %w", p, err)
		}
		r.exclude = append(r.exclude, g)
	}
	return r, nil
}

// IsSource checks if a base name carries one of the configured extensions.
func (r *Rules) IsSource(name string) bool {
	return r.files.Match(name)
}

// IsExcluded checks a slash-separated path relative to the input root.
func (r *Rules) IsExcluded(rel string) bool {
	for _, g := range r.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// IsHidden reports whether a base name is a dot-file or dot-directory.
func IsHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".") && name != ".."
}
