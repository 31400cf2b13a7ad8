// Package cyclebasis recovers every independent closed loop from an
// undirected network of connected line segments — the graph side of
// turning a wall network into rooms.
//
// 🚀 What is cyclebasis?
//
//	A small, zero-dependency engine with four layers:
//		• core      — insertion-ordered Graph, Vertex, Edge primitives
//		• unionfind — disjoint-set connectivity bookkeeping
//		• spanning  — Kruskal-style spanning-forest builder
//		• cycles    — rejected-edge cycle extraction over the forest
//
// ✨ Why choose cyclebasis?
//
//   - Deterministic — iteration follows insertion order, so the same input
//     history always yields the same forest and the same cycle basis
//   - Coordinate-free — vertices are opaque string keys; hash a rounded 2D
//     point into a key, and map returned key cycles back to polygons
//   - Pure Go — no cgo, no hidden deps
//   - Bounded — traversal uses explicit stacks, never recursion depth
//
// The pipeline, leaves first:
//
//	core.Graph ──▶ cycles.Extract ──▶ spanning.Build (unionfind) ──▶ []cycles.Cycle
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    D───C
//
//	a square with one diagonal: 5 edges, 4 vertices, one component,
//	hence 5−4+1 = 2 independent cycles — the two triangular rooms.
//
// The engine performs no geometric computation of its own: edge weights
// (e.g. Euclidean lengths) and the key↔coordinate mapping belong to the
// caller. A single Graph instance is not safe for concurrent mutation;
// wrap it in your own mutex if you share it across goroutines.
package cyclebasis
