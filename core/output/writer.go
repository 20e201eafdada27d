// Package output handles file naming and writing for docpipe outputs.
// Output paths mirror the input tree: the input directory prefix is
// replaced by the output directory and the extension by the renderer's.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/errors"
)

// Writer maps input paths to output paths and writes rendered output.
type Writer struct {
	InputDir  string
	OutputDir string
	Ext       string
}

// New creates a Writer mirroring inputDir into outputDir with files of
// extension ext.
func New(inputDir, outputDir, ext string) *Writer {
	return &Writer{
		InputDir:  filepath.Clean(inputDir),
		OutputDir: filepath.Clean(outputDir),
		Ext:       ext,
	}
}

// OutputPath returns the output path for the source file at path.
// Example: src/lib/a.js → docs/lib/a.md
func (w *Writer) OutputPath(path string) string {
	path = filepath.Clean(path)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	mapped := path
	if rel, ok := cutDir(w.InputDir, path); ok {
		mapped = filepath.Join(w.OutputDir, rel)
	}
	dir := filepath.Dir(mapped)
	if dir == "" || dir == "." {
		return filepath.Join(w.OutputDir, stem+w.Ext)
	}
	return filepath.Join(dir, stem+w.Ext)
}

// cutDir returns path relative to dir when dir is one of its ancestors.
func cutDir(dir, path string) (string, bool) {
	if dir == "." {
		if filepath.IsAbs(path) || path == ".." || strings.HasPrefix(path, ".."+string(filepath.Separator)) {
			return "", false
		}
		return path, true
	}
	rest, ok := strings.CutPrefix(path, dir)
	if !ok {
		return "", false
	}
	if rest == "" {
		return ".", true
	}
	if !os.IsPathSeparator(rest[0]) && !strings.HasSuffix(dir, string(filepath.Separator)) {
		return "", false
	}
	return strings.TrimLeft(rest, string(filepath.Separator)), true
}

// Write creates the parent directories of unit.Path and writes its
// content, replacing any existing file.
func (w *Writer) Write(unit core.OutputUnit) error {
	dir := filepath.Dir(unit.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.KindIO, unit.Path, fmt.Sprintf("creating directory %s", dir))
	}

	if err := os.WriteFile(unit.Path, unit.Content, 0644); err != nil {
		return errors.Wrap(err, errors.KindIO, unit.Path, "writing file")
	}
	return nil
}

// Batch collects output units from concurrent tasks.
type Batch struct {
	mu    sync.Mutex
	units []core.OutputUnit
}

// Add appends unit. Safe for concurrent use.
func (b *Batch) Add(unit core.OutputUnit) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.units = append(b.units, unit)
}

// Len returns the number of collected units.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.units)
}

// Units returns the collected units sorted by output path.
func (b *Batch) Units() []core.OutputUnit {
	b.mu.Lock()
	defer b.mu.Unlock()

	units := make([]core.OutputUnit, len(b.units))
	copy(units, b.units)
	sort.Slice(units, func(i, j int) bool { return units[i].Path < units[j].Path })
	return units
}
