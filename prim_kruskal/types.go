package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/dsa/core"
)

// ErrInvalidGraph is returned for a nil or directed graph, and by Compute
// for a method name it does not recognise.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil undirected graph")

// ErrDisconnected is returned when no single tree can span every vertex:
// the graph is empty or has more than one component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Method names accepted by Compute.
const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
)

// MSTOptions picks the algorithm Compute runs. Root is the vertex Prim grows
// from; Kruskal has no starting point and ignores it.
type MSTOptions struct {
	Method string
	Root   int
}

// Option mutates MSTOptions; see NewOptions.
type Option func(*MSTOptions)

// WithMethod chooses MethodPrim or MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets the vertex Prim starts from.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// DefaultOptions selects Kruskal, with Root 0 in case the method is later
// switched to Prim.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// NewOptions returns DefaultOptions with opts applied in order.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs Kruskal or Prim according to opts.Method and returns the tree
// edges, their total weight and any error from the chosen algorithm. An
// unknown method yields ErrInvalidGraph.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.WeightedEdge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
