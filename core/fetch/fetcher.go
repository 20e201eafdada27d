// Package fetch implements the Fetcher interface.
// It reads source files from the local filesystem.
package fetch

import (
	"context"
	"os"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/errors"
)

// FileFetcher reads source files from disk.
type FileFetcher struct {
	readFile func(string) ([]byte, error)
}

// New creates a FileFetcher.
func New() *FileFetcher {
	return &FileFetcher{readFile: os.ReadFile}
}

// Fetch returns the full content of the file at path.
func (f *FileFetcher) Fetch(ctx context.Context, path string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := f.readFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindIO, path, "reading source")
	}

	return &core.FetchResult{
		Path:    path,
		Content: content,
	}, nil
}
