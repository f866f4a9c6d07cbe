// Package dsa is a small collection of classic data-structure and graph
// algorithms, each in its own package.
//
//	core/         — fixed-size adjacency-list Graph (vertices 0..V-1, int64 weights)
//	dijkstra/     — single-source shortest paths with a lazy min-heap frontier
//	tree/         — binary tree Node and breadth-first level-order traversal
//	disjointset/  — union-find over 0..n with path compression and union by rank / size
//	prim_kruskal/ — minimum spanning trees; Kruskal runs on disjointset
//
// The packages share no state. Inputs are owned by the caller, every index is
// bounds-checked, and contract violations come back as sentinel errors that
// can be tested with errors.Is.
//
// Quick example:
//
//	d, _ := disjointset.New(5)
//	_, _ = d.UnionByRank(0, 1)
//	_, _ = d.UnionByRank(1, 2)
//	same, _ := d.IsComponent(0, 2) // true
//
//	go get github.com/katalvlaran/dsa
package dsa
