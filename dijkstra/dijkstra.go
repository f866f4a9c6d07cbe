// Package dijkstra implements Dijkstra's shortest-path algorithm on
// adjacency-list graphs with non-negative integer weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: relaxations push duplicates and a popped
//     entry whose distance exceeds dist[v] is discarded as stale.
//   - A sum that would overflow int64 is treated as unreachable.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dsa/core"
)

// ShortestPath computes shortest distances from source over a raw adjacency
// list of v vertices, where adj[u] lists the (neighbor, weight) pairs leaving u.
//
// dist[i] is the shortest distance from source to i, or Infinity when i is
// unreachable.
//
// Errors: core.ErrInvalidIndex for a bad source, neighbor or vertex count,
// ErrInvalidWeight for a negative weight.
func ShortestPath(adj [][]core.Edge, v int, source int) ([]int64, error) {
	g, err := core.FromAdjacency(adj, v)
	if err != nil {
		return nil, err
	}
	dist, _, err := Dijkstra(g, Source(source))

	return dist, err
}

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] = minimum distance, or Infinity if unreachable.
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     prev[v] == NoPredecessor for the source and unreachable vertices.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [0, V) (core.ErrInvalidIndex).
//  4. No edge in g can have negative weight (ErrInvalidWeight).
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate Source
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d in graph of %d vertices",
			core.ErrInvalidIndex, cfg.Source, g.VertexCount())
	}

	// 4) Pre-scan all edges for negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare state.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 6) Initialize and run.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source→…→target from a predecessor
// slice produced with WithReturnPath. dist must come from the same call.
//
// Returns core.ErrInvalidIndex if target is out of range and ErrNoPath if
// target was not reached.
func PathTo(dist []int64, prev []int, target int) ([]int, error) {
	if target < 0 || target >= len(prev) || len(dist) != len(prev) {
		return nil, fmt.Errorf("%w: target %d", core.ErrInvalidIndex, target)
	}
	if dist[target] == Infinity {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, target)
	}

	path := []int{}
	for cur := target; cur != NoPredecessor; cur = prev[cur] {
		path = append(path, cur)
		if len(path) > len(prev) {
			// A well-formed predecessor slice cannot contain a cycle.
			return nil, fmt.Errorf("%w: predecessor cycle at %d", ErrNoPath, cur)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, thresholds, etc.).
	dist    []int64     // dist[v] is the best known distance from Source.
	prev    []int       // prev[v] is the predecessor on the best path; nil unless ReturnPath.
	pq      nodePQ      // Min-heap frontier with lazy deletion.
}

// init sets every distance to Infinity, the source to zero, and seeds the frontier.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Infinity
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop. It pops the closest frontier entry, discards it
// if stale, and otherwise settles it and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - The minimum distance in the frontier exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// Stale: a shorter distance for this vertex was pushed after this entry.
		if item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
// Assumes d == dist[u] is final.
func (r *runner) relax(u int, d int64) error {
	var relaxErr error
	err := r.g.Each(u, func(e core.Edge) bool {
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			return true
		}
		// Safety check: though we pre-scanned for negative weights, double-check nonetheless.
		if w < 0 {
			relaxErr = fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidWeight, u, e.To, w)
			return false
		}
		// d + w would overflow: treat as unreachable through this edge.
		if w > Infinity-1-d {
			return true
		}
		newDist := d + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			return true
		}

		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to walk neighbors of %d: %w", u, err)
	}

	return relaxErr
}

// nodeItem is a frontier entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist; ties break on the lower
// vertex index so runs are deterministic.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
