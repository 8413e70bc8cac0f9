// Package dijkstra defines sentinel errors, the distance sentinel and
// functional options for single-source shortest paths.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance reported for vertices unreachable from the source.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNoPath indicates that PathTo was asked for an unreachable destination.
	ErrNoPath = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath – if true, return the predecessor map; otherwise prev is nil.
type Options struct {
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options with ReturnPath disabled.
func DefaultOptions() Options {
	return Options{}
}
