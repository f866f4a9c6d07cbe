// Package tree provides tunable options and error definitions
// for level-order traversal of binary trees.
package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tree: invalid option supplied")

	// ErrOnLevel wraps an error returned by an OnLevel hook.
	ErrOnLevel = errors.New("tree: OnLevel hook failed")
)

// Node is a binary tree node. A nil *Node is the empty tree; nil children are
// absent. Each node is referenced by exactly one parent.
type Node struct {
	Val   int
	Left  *Node
	Right *Node
}

// NewNode returns a leaf holding val.
func NewNode(val int) *Node {
	return &Node{Val: val}
}

// NewNodeWithChildren returns a node holding val with the given children,
// either of which may be nil.
func NewNodeWithChildren(left *Node, val int, right *Node) *Node {
	return &Node{Val: val, Left: left, Right: right}
}

// Option configures LevelOrder via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for LevelOrder.
type Options struct {
	// MaxDepth, if > 0, keeps only depths 0..MaxDepth-1.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnLevel is called once per completed layer with its depth and values.
	// Returning an error aborts the traversal.
	OnLevel func(depth int, vals []int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnLevel:  func(int, []int) error { return nil },
	}
}

// WithMaxDepth limits the number of layers returned.
//
//	d > 0: return at most d layers
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnLevel registers a per-layer callback.
func WithOnLevel(fn func(depth int, vals []int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
