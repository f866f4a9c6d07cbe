package tree

import (
	"fmt"
	"iter"
)

// Levels returns a lazy sequence of the tree's layers: depth 0 first, values
// left to right. A nil root yields nothing. Work stops as soon as the
// consumer stops ranging.
//
// Each yielded slice is freshly allocated and owned by the caller.
// Complexity: O(nodeCount) for a full walk.
func Levels(root *Node) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if root == nil {
			return
		}
		queue := []*Node{root}
		for len(queue) > 0 {
			// Layer width is fixed before any child of this layer is queued.
			width := len(queue)
			vals := make([]int, 0, width)
			for _, n := range queue[:width] {
				vals = append(vals, n.Val)
				if n.Left != nil {
					queue = append(queue, n.Left)
				}
				if n.Right != nil {
					queue = append(queue, n.Right)
				}
			}
			queue = queue[width:]
			if !yield(vals) {
				return
			}
		}
	}
}

// LevelOrder collects the tree's layers eagerly. A nil root returns an empty
// (nil) result and no error.
//
// Returns ErrOptionViolation for bad options, or an ErrOnLevel-wrapped error
// if the OnLevel hook fails; the layers collected before the failure are
// returned alongside it.
func LevelOrder(root *Node, opts ...Option) ([][]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var out [][]int
	depth := 0
	for vals := range Levels(root) {
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			break
		}
		if err := o.OnLevel(depth, vals); err != nil {
			return out, fmt.Errorf("%w at depth %d: %w", ErrOnLevel, depth, err)
		}
		out = append(out, vals)
		depth++
	}

	return out, nil
}

// FromComplete builds a complete binary tree from values in array order:
// the children of values[i] are values[2i+1] and values[2i+2].
// An empty slice gives a nil tree.
func FromComplete(values []int) *Node {
	if len(values) == 0 {
		return nil
	}
	nodes := make([]*Node, len(values))
	for i, v := range values {
		nodes[i] = NewNode(v)
	}
	for i, n := range nodes {
		if l := 2*i + 1; l < len(nodes) {
			n.Left = nodes[l]
		}
		if r := 2*i + 2; r < len(nodes) {
			n.Right = nodes[r]
		}
	}

	return nodes[0]
}

// Height returns the number of edges on the longest root-to-leaf path,
// or -1 for the empty tree.
func Height(root *Node) int {
	h := -1
	for range Levels(root) {
		h++
	}

	return h
}

// Size returns the number of nodes.
func Size(root *Node) int {
	n := 0
	for vals := range Levels(root) {
		n += len(vals)
	}

	return n
}
