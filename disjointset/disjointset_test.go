package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsa/disjointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []disjointset.Strategy{
	disjointset.ByRank,
	disjointset.BySize,
	disjointset.BySizeBalanced,
}

func newSet(t testing.TB, n int) *disjointset.DisjointSet {
	t.Helper()
	d, err := disjointset.New(n)
	require.NoError(t, err)

	return d
}

// checkInvariants asserts: every Find lands on a self-parented root, the sizes
// of the roots sum to Len, and Count matches the number of roots.
func checkInvariants(t *testing.T, d *disjointset.DisjointSet) {
	t.Helper()
	roots := d.Roots()
	assert.Len(t, roots, d.Count())

	total := 0
	for _, r := range roots {
		got, err := d.Find(r)
		require.NoError(t, err)
		assert.Equal(t, r, got, "root %d must be its own parent", r)
		sz, err := d.SizeOf(r)
		require.NoError(t, err)
		total += sz
	}
	assert.Equal(t, d.Len(), total)

	for x := 0; x < d.Len(); x++ {
		r, err := d.Find(x)
		require.NoError(t, err)
		again, _ := d.Find(r)
		assert.Equal(t, r, again)
	}
}

func TestNew(t *testing.T) {
	_, err := disjointset.New(-1)
	assert.ErrorIs(t, err, disjointset.ErrInvalidSize)

	d := newSet(t, 0)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 1, d.Count())

	d = newSet(t, 5)
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, 6, d.Count())
	for x := 0; x <= 5; x++ {
		r, err := d.Find(x)
		require.NoError(t, err)
		assert.Equal(t, x, r)
		sz, _ := d.SizeOf(x)
		assert.Equal(t, 1, sz)
	}
}

func TestReferenceScenario(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			d := newSet(t, 5)
			_, err := d.Union(0, 1, s)
			require.NoError(t, err)
			_, err = d.Union(1, 2, s)
			require.NoError(t, err)

			ok, err := d.IsComponent(0, 2)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = d.IsComponent(0, 3)
			require.NoError(t, err)
			assert.False(t, ok)

			// n is inclusive.
			ok, err = d.IsComponent(5, 5)
			require.NoError(t, err)
			assert.True(t, ok)

			assert.Equal(t, 4, d.Count())
			checkInvariants(t, d)
		})
	}
}

func TestInvalidIndex_NoMutation(t *testing.T) {
	d := newSet(t, 3)
	_, err := d.UnionByRank(0, 1)
	require.NoError(t, err)

	for _, bad := range []int{-1, 4, 99} {
		_, err := d.Find(bad)
		assert.ErrorIs(t, err, disjointset.ErrInvalidIndex)
		_, err = d.SizeOf(bad)
		assert.ErrorIs(t, err, disjointset.ErrInvalidIndex)
		_, err = d.RankOf(bad)
		assert.ErrorIs(t, err, disjointset.ErrInvalidIndex)
		_, err = d.IsComponent(0, bad)
		assert.ErrorIs(t, err, disjointset.ErrInvalidIndex)
		for _, s := range strategies {
			merged, err := d.Union(2, bad, s)
			assert.ErrorIs(t, err, disjointset.ErrInvalidIndex)
			assert.False(t, merged)
			merged, err = d.Union(bad, 2, s)
			assert.ErrorIs(t, err, disjointset.ErrInvalidIndex)
			assert.False(t, merged)
		}
	}

	assert.Equal(t, 3, d.Count())
	assert.Equal(t, [][]int{{0, 1}, {2}, {3}}, d.Components())
}

func TestUnknownStrategy(t *testing.T) {
	d := newSet(t, 2)
	_, err := d.Union(0, 1, disjointset.Strategy(42))
	assert.ErrorIs(t, err, disjointset.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(42)", disjointset.Strategy(42).String())
	assert.Equal(t, 3, d.Count())
}

func TestIdempotentUnion(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			d := newSet(t, 4)

			merged, err := d.Union(2, 2, s)
			require.NoError(t, err)
			assert.False(t, merged, "self-union is a no-op")

			merged, err = d.Union(0, 1, s)
			require.NoError(t, err)
			assert.True(t, merged)

			rank, _ := d.RankOf(0)
			size, _ := d.SizeOf(0)
			for i := 0; i < 3; i++ {
				merged, err = d.Union(1, 0, s)
				require.NoError(t, err)
				assert.False(t, merged)
			}
			r2, _ := d.RankOf(0)
			s2, _ := d.SizeOf(0)
			assert.Equal(t, rank, r2)
			assert.Equal(t, size, s2)
			assert.Equal(t, 2, s2)
			checkInvariants(t, d)
		})
	}
}

func TestUnionByRank_TieBreakAndRank(t *testing.T) {
	d := newSet(t, 4)

	// Equal ranks: u's root goes under v's root and v's rank grows.
	_, err := d.UnionByRank(0, 1)
	require.NoError(t, err)
	r, _ := d.Find(0)
	assert.Equal(t, 1, r)
	rank, _ := d.RankOf(1)
	assert.Equal(t, 1, rank)

	// Lower rank (2) under higher rank (1), regardless of argument order.
	_, err = d.UnionByRank(1, 2)
	require.NoError(t, err)
	r, _ = d.Find(2)
	assert.Equal(t, 1, r)
	rank, _ = d.RankOf(2)
	assert.Equal(t, 1, rank, "absorbing a shorter tree keeps the rank")

	// {3,4} tie → root 4, rank 1. Then {0,1,2} vs {3,4}: tie → 1 under 4, rank 2.
	_, err = d.UnionByRank(3, 4)
	require.NoError(t, err)
	_, err = d.UnionByRank(0, 3)
	require.NoError(t, err)
	r, _ = d.Find(0)
	assert.Equal(t, 4, r)
	rank, _ = d.RankOf(0)
	assert.Equal(t, 2, rank)
	size, _ := d.SizeOf(2)
	assert.Equal(t, 5, size)
	checkInvariants(t, d)
}

func TestUnionBySize_IndexDirected(t *testing.T) {
	d := newSet(t, 5)

	// Build a big set rooted at 3.
	_, _ = d.UnionBySize(0, 3)
	_, _ = d.UnionBySize(1, 3)
	_, _ = d.UnionBySize(2, 3)
	r, _ := d.Find(0)
	assert.Equal(t, 3, r)

	// The singleton {5} has the larger index and wins even though it is smaller.
	_, err := d.UnionBySize(0, 5)
	require.NoError(t, err)
	r, _ = d.Find(1)
	assert.Equal(t, 5, r)
	size, _ := d.SizeOf(5)
	assert.Equal(t, 5, size)
	checkInvariants(t, d)
}

func TestUnionBySizeBalanced_SmallerUnderLarger(t *testing.T) {
	d := newSet(t, 5)

	_, _ = d.UnionBySizeBalanced(0, 1) // tie → 0 under 1
	_, _ = d.UnionBySizeBalanced(2, 1) // {2} under {0,1}
	r, _ := d.Find(2)
	assert.Equal(t, 1, r)

	// {5} is smaller, so it goes under root 1 despite the larger index.
	_, err := d.UnionBySizeBalanced(5, 0)
	require.NoError(t, err)
	r, _ = d.Find(5)
	assert.Equal(t, 1, r)
	size, _ := d.SizeOf(5)
	assert.Equal(t, 4, size)
	checkInvariants(t, d)
}

func TestFind_PathCompression(t *testing.T) {
	// With index-directed unions, chaining 0∪1, 1∪2, ... builds a chain
	// 0→1→2→…→n once no Find compresses it in between.
	const n = 64
	d := newSet(t, n)
	for i := 0; i < n; i++ {
		_, err := d.UnionBySize(i, i+1)
		require.NoError(t, err)
	}
	r, err := d.Find(0)
	require.NoError(t, err)
	assert.Equal(t, n, r)
	checkInvariants(t, d)

	// Parent pointers are checked in compression_internal_test.go; here a
	// second Find on each element must still agree on the root.
	for x := 0; x <= n; x++ {
		got, _ := d.Find(x)
		assert.Equal(t, n, got)
	}
	checkInvariants(t, d)
}

func TestComponentsAndRoots(t *testing.T) {
	d := newSet(t, 6)
	_, _ = d.UnionByRank(4, 0)
	_, _ = d.UnionByRank(5, 2)
	_, _ = d.UnionByRank(6, 2)

	assert.Equal(t, [][]int{{0, 4}, {1}, {2, 5, 6}, {3}}, d.Components())
	assert.Len(t, d.Roots(), 4)
	assert.Equal(t, 4, d.Count())
}

// TestStrategies_SameMembership: different strategies build different trees
// but agree on membership for the same sequence of unions.
func TestStrategies_SameMembership(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 30; round++ {
		n := r.Intn(60)
		sets := make([]*disjointset.DisjointSet, len(strategies))
		for i := range sets {
			sets[i] = newSet(t, n)
		}

		for op := 0; op < 2*n+1; op++ {
			u, v := r.Intn(n+1), r.Intn(n+1)
			var merged []bool
			for i, s := range strategies {
				m, err := sets[i].Union(u, v, s)
				require.NoError(t, err)
				merged = append(merged, m)
			}
			assert.Equal(t, merged[0], merged[1])
			assert.Equal(t, merged[0], merged[2])
		}

		want := sets[0].Components()
		for i := range sets {
			assert.Equal(t, want, sets[i].Components(), "strategy %v round %d", strategies[i], round)
			assert.Equal(t, len(want), sets[i].Count())
			checkInvariants(t, sets[i])
			for u := 0; u <= n; u++ {
				for v := 0; v <= n; v++ {
					a, _ := sets[0].IsComponent(u, v)
					b, _ := sets[i].IsComponent(u, v)
					assert.Equal(t, a, b)
				}
			}
		}
	}
}

// TestRank_BoundsHeight checks rank ≥ log2(size) style bound holds: a
// by-rank root of rank k has at least 2^k elements.
func TestRank_BoundsHeight(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const n = 500
	d := newSet(t, n)
	for i := 0; i < 3*n; i++ {
		_, err := d.UnionByRank(r.Intn(n+1), r.Intn(n+1))
		require.NoError(t, err)
	}
	for _, root := range d.Roots() {
		rank, _ := d.RankOf(root)
		size, _ := d.SizeOf(root)
		assert.GreaterOrEqual(t, size, 1<<rank, "root %d", root)
	}
}
