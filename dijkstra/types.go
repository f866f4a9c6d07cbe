// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted adjacency-list graphs.
//
// Options:
//
//	– Source:           index of the starting vertex (must lie in [0, V)).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to settle; vertices beyond stay at Infinity.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrInvalidWeight   if a negative edge weight is detected in the graph.
//	– ErrOptionViolation if MaxDistance < 0 or InfEdgeThreshold <= 0.
//	– ErrNoPath          if PathTo is asked for a vertex that was never reached.
//	– core.ErrInvalidIndex for an out-of-range source or target.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance reported for vertices that cannot be reached.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable vertices in the predecessor slice.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidWeight indicates that a negative edge weight was detected.
	// Dijkstra's correctness guarantee does not hold for such graphs.
	ErrInvalidWeight = errors.New("dijkstra: negative edge weight")

	// ErrOptionViolation indicates that an Option carried an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that the requested target was not reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex index.
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – vertices whose distance would exceed this are not settled.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	Source           int   // Index of the source vertex
	ReturnPath       bool  // Whether to return the predecessor slice
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold at and above which edges are non-traversable

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index. Default is 0.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set, the predecessor slice is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value keep Infinity.
// Negative values are recorded and surface as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at and above which edges are
// considered non-traversable.
// Zero or negative values are recorded and surface as ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - ReturnPath:       false.
//   - MaxDistance:      Infinity.
//   - InfEdgeThreshold: Infinity.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
