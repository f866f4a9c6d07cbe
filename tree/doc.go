// Package tree provides a binary tree node and breadth-first level-order
// traversal.
//
// Levels(root) is a lazy iter.Seq of layers; LevelOrder(root, opts...) is the
// eager form with a depth limit and a per-layer hook. Both use a FIFO frontier
// and capture the layer width before dequeuing, so children never bleed into
// the layer that discovered them. Each node is visited once: O(nodeCount).
//
//	root := tree.NewNodeWithChildren(tree.NewNode(2), 1, tree.NewNode(3))
//	layers, _ := tree.LevelOrder(root) // [[1] [2 3]]
package tree
