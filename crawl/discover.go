// Package crawl provides source file discovery for the generate and check
// commands. It walks the input tree breadth-first, keeping discovery
// separate from the per-file pipeline.
package crawl

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/gaurav-prasanna/docpipe/core/errors"
	"github.com/gaurav-prasanna/docpipe/core/logging"
)

// Options configure Discover.
type Options struct {
	Extensions []string
	Exclude    []string
	// IncludeHidden descends into dot-directories.
	IncludeHidden bool
	Logger        logging.Logger
}

// Discover returns the sorted paths of every source file under root.
// Unreadable directories below root are skipped; a missing or unreadable
// root is an error.
func Discover(root string, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	rules, err := NewRules(opts.Extensions, opts.Exclude)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindConfig, root, "invalid discovery rules")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindDiscovery, root, "reading input directory")
	}
	if !info.IsDir() {
		return nil, errors.Errorf(errors.KindDiscovery, "%s: not a directory", root)
	}

	root = filepath.Clean(root)
	queue := NewQueue()
	queue.Add(root)

	var files []string
	for queue.HasNext() {
		dir := queue.Next()

		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == root {
				return nil, errors.Wrap(err, errors.KindDiscovery, root, "listing input directory")
			}
			logger.Debug("skipping unreadable directory", "path", dir, "error", err)
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			rel, err := filepath.Rel(root, path)
			if err != nil {
				logger.Debug("skipping entry", "path", path, "error", err)
				continue
			}
			if rules.IsExcluded(filepath.ToSlash(rel)) {
				continue
			}

			switch {
			case entry.IsDir():
				if !opts.IncludeHidden && IsHidden(entry.Name()) {
					continue
				}
				queue.Add(path)
			case entry.Type().IsRegular() && rules.IsSource(entry.Name()):
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)
	logger.Debug("discovery finished", "root", root, "directories", queue.Visited(), "files", len(files))
	return files, nil
}
