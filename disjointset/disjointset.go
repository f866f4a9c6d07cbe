package disjointset

import "fmt"

// DisjointSet partitions the elements 0..n (inclusive) into disjoint sets.
//
// parent, rank and size are flat slices indexed by element. An element is a
// root iff parent[x] == x. rank is an upper bound on tree height maintained
// by UnionByRank; size is the element count of the set, valid at roots.
//
// A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	rank   []int
	size   []int
	count  int // number of disjoint sets remaining
}

// New creates n+1 singleton sets {0}, {1}, ..., {n}.
// Returns ErrInvalidSize if n is negative.
// Complexity: O(n)
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n+1),
		rank:   make([]int, n+1),
		size:   make([]int, n+1),
		count:  n + 1,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of elements, n+1.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

func (d *DisjointSet) check(xs ...int) error {
	for _, x := range xs {
		if x < 0 || x >= len(d.parent) {
			return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidIndex, x, len(d.parent)-1)
		}
	}

	return nil
}

// Find returns the representative (root) of x's set.
//
// Every element on the path from x to the root is repointed directly at the
// root. Amortized near-O(1) together with either union heuristic.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// find assumes x is in range.
func (d *DisjointSet) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

// roots validates both indices and returns their roots, so a bad index fails
// before any path is compressed.
func (d *DisjointSet) roots(u, v int) (int, int, error) {
	if err := d.check(u, v); err != nil {
		return 0, 0, err
	}

	return d.find(u), d.find(v), nil
}

// link makes child a subtree of root.
func (d *DisjointSet) link(child, root int) {
	d.parent[child] = root
	d.size[root] += d.size[child]
	d.count--
}

// UnionByRank merges the sets of u and v.
//
// The root with smaller rank goes under the root with larger rank. On a tie
// u's root goes under v's root and v's root gains one rank. Returns false
// when u and v were already in the same set (no-op).
func (d *DisjointSet) UnionByRank(u, v int) (bool, error) {
	ru, rv, err := d.roots(u, v)
	if err != nil || ru == rv {
		return false, err
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.link(ru, rv)
	case d.rank[ru] > d.rank[rv]:
		d.link(rv, ru)
	default:
		d.link(ru, rv)
		d.rank[rv]++
	}

	return true, nil
}

// UnionBySize merges the sets of u and v.
//
// The root with the smaller index goes under the root with the larger index,
// regardless of set sizes; the absorbed size is added to the survivor.
// Membership results match the other strategies, but trees may grow deeper
// than with UnionBySizeBalanced.
func (d *DisjointSet) UnionBySize(u, v int) (bool, error) {
	ru, rv, err := d.roots(u, v)
	if err != nil || ru == rv {
		return false, err
	}
	if ru < rv {
		d.link(ru, rv)
	} else {
		d.link(rv, ru)
	}

	return true, nil
}

// UnionBySizeBalanced merges the sets of u and v, attaching the smaller set
// under the larger one. On equal sizes u's root goes under v's root.
func (d *DisjointSet) UnionBySizeBalanced(u, v int) (bool, error) {
	ru, rv, err := d.roots(u, v)
	if err != nil || ru == rv {
		return false, err
	}
	if d.size[ru] > d.size[rv] {
		d.link(rv, ru)
	} else {
		d.link(ru, rv)
	}

	return true, nil
}

// Union dispatches to the union method selected by s.
func (d *DisjointSet) Union(u, v int, s Strategy) (bool, error) {
	switch s {
	case ByRank:
		return d.UnionByRank(u, v)
	case BySize:
		return d.UnionBySize(u, v)
	case BySizeBalanced:
		return d.UnionBySizeBalanced(u, v)
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// IsComponent reports whether u and v are in the same set.
func (d *DisjointSet) IsComponent(u, v int) (bool, error) {
	ru, rv, err := d.roots(u, v)
	if err != nil {
		return false, err
	}

	return ru == rv, nil
}

// SizeOf returns the number of elements in x's set.
func (d *DisjointSet) SizeOf(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.size[d.find(x)], nil
}

// RankOf returns the rank stored at x's root. Rank is a bookkeeping bound
// for UnionByRank, not the live height of the tree.
func (d *DisjointSet) RankOf(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.rank[d.find(x)], nil
}

// Roots returns every representative in ascending order.
func (d *DisjointSet) Roots() []int {
	out := make([]int, 0, d.count)
	for i, p := range d.parent {
		if i == p {
			out = append(out, i)
		}
	}

	return out
}

// Components returns the sets, each in ascending element order, ordered by
// their smallest element.
// Complexity: O(n·α(n))
func (d *DisjointSet) Components() [][]int {
	slot := make(map[int]int, d.count) // root → index in out
	out := make([][]int, 0, d.count)
	for x := range d.parent {
		r := d.find(x)
		i, ok := slot[r]
		if !ok {
			i = len(out)
			slot[r] = i
			out = append(out, make([]int, 0, d.size[r]))
		}
		out[i] = append(out[i], x)
	}

	return out
}
