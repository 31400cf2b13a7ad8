// Package unionfind_test provides benchmarks for DisjointSet operations.
package unionfind_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cyclebasis/unionfind"
)

// benchElements builds the element universe once per benchmark.
func benchElements(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("V%d", i)
	}

	return out
}

// BenchmarkUnion measures chain-shaped unions over a 10k universe.
func BenchmarkUnion(b *testing.B) {
	elements := benchElements(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := unionfind.New(elements)
		for j := 1; j < len(elements); j++ {
			d.Union(elements[j-1], elements[j])
		}
	}
}

// BenchmarkFind_Compressed measures Find after full compression has
// flattened the parent chains.
func BenchmarkFind_Compressed(b *testing.B) {
	elements := benchElements(10000)
	d := unionfind.New(elements)
	for j := 1; j < len(elements); j++ {
		d.Union(elements[j-1], elements[j])
	}
	// Warm the compression once so steady-state lookups are measured.
	for _, e := range elements {
		_, _ = d.Find(e)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Find(elements[i%len(elements)])
	}
}
