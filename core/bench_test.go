// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cyclebasis/core"
)

// BenchmarkAddEdge measures edge insertion into a growing star topology.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	// Report memory allocations per operation
	b.ReportAllocs()
	// Reset timer to exclude setup cost
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), float64(i))
	}
}

// BenchmarkAddEdge_Duplicate measures the idempotent fast path: the edge
// already exists, so only the canonical lookup runs.
func BenchmarkAddEdge_Duplicate(b *testing.B) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("B", "A", 2)
	}
}

// BenchmarkNeighbors measures incident-edge retrieval on a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Center", fmt.Sprintf("Node%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("Center")
	}
}

// BenchmarkEdgeBetween measures the incidence-set intersection on vertices
// of very different degree (the scan runs over the smaller list).
func BenchmarkEdgeBetween(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Hub", fmt.Sprintf("Node%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.EdgeBetween("Hub", "Node500")
	}
}
