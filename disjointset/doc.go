// Package disjointset provides a fixed-size union-find (disjoint-set) structure
// over the elements 0..n, inclusive, with path compression and three union
// policies.
//
// Representation:
//
//	parent, rank and size are flat slices indexed by element. x is a root iff
//	parent[x] == x. New(n) starts with n+1 singletons; sets only ever merge.
//
// Find:
//
//	Walks to the root, then repoints every element on the walked path directly
//	at the root. Unions and IsComponent go through the same lookup, so they
//	compress as well.
//
// Union policies:
//
//   - UnionByRank: the lower-rank root goes under the higher-rank root. On a
//     tie u's root goes under v's root and v's root gains one rank. Rank is an
//     upper bound on height, not the live height after compression.
//   - UnionBySize: the root with the smaller index goes under the root with
//     the larger index, whatever the set sizes; sizes are still accumulated.
//     Membership is correct but trees can degrade into chains.
//   - UnionBySizeBalanced: the smaller set goes under the larger one (tie: u's
//     root under v's root). Prefer it over UnionBySize when depth matters.
//
// Union(u, v, Strategy) dispatches on ByRank, BySize or BySizeBalanced. Every
// policy keeps size valid at roots and returns false for a no-op re-union.
//
// Errors:
//
//   - ErrInvalidSize:     New with n < 0.
//   - ErrInvalidIndex:    any element outside [0, n]; nothing is mutated.
//   - ErrUnknownStrategy: Union with an undefined Strategy.
//
// A DisjointSet is not safe for concurrent use; callers that share one must
// serialize access themselves.
//
//	d, _ := disjointset.New(5)
//	_, _ = d.UnionByRank(0, 1)
//	_, _ = d.UnionByRank(1, 2)
//	same, _ := d.IsComponent(0, 2) // true
package disjointset
