// Package dfs defines options, result type, and errors for the iterative
// depth-first traversal.
package dfs

import (
	"errors"

	"github.com/katalvlaran/campusgraph/core"
)

var (
	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is popped for the first
	// time. Returning an error aborts traversal with that error.
	OnVisit func(b core.Building) error

	// FullTraversal, if true, restarts from every unvisited vertex in node
	// order after the start vertex's component is exhausted (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with no hook and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(b core.Building) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records Buildings in the sequence they were popped and processed.
	Order []core.Building

	// Visited flags which vertices were reached.
	Visited map[int]bool

	// Pushes counts stack pushes, including duplicates of already-seen vertices.
	Pushes int
}
