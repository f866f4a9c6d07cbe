// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/dsa/core"
)

// BenchmarkAddEdge_Directed measures appending edges from a single hub.
func BenchmarkAddEdge_Directed(b *testing.B) {
	const n = 1 << 12
	g, _ := core.NewGraph(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(0, i%n, int64(i))
	}
}

// BenchmarkAddEdge_Undirected includes the mirror append.
func BenchmarkAddEdge_Undirected(b *testing.B) {
	const n = 1 << 12
	g, _ := core.NewGraph(n, core.WithUndirected())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%n, (i+1)%n, int64(i))
	}
}

// BenchmarkNeighbors measures the defensive copy on a dense vertex.
func BenchmarkNeighbors(b *testing.B) {
	const n = 1024
	g, _ := core.NewGraph(n)
	for to := 0; to < n; to++ {
		_ = g.AddEdge(0, to, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}
