// Package crawl — BFS queue with deduplication.
// Maintains a visited set so a directory is never listed twice.
package crawl

import "path/filepath"

// Queue is a BFS queue of directories with path deduplication.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues a directory if it hasn't been seen before.
func (q *Queue) Add(dir string) {
	dir = filepath.Clean(dir)
	if q.visited[dir] {
		return
	}
	q.visited[dir] = true
	q.items = append(q.items, dir)
}

// HasNext returns true if there are unlisted directories.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next directory and advances the pointer.
func (q *Queue) Next() string {
	dir := q.items[q.idx]
	q.idx++
	return dir
}

// Visited returns the total number of unique directories seen.
func (q *Queue) Visited() int {
	return len(q.visited)
}

// All returns all queued directories (in BFS order).
func (q *Queue) All() []string {
	return q.items
}
