// Package spanning builds a spanning forest over a core.Graph (or a chosen
// vertex subset) using a Kruskal-style sweep driven by a disjoint-set.
//
// What & Why
//
//   - What is a spanning forest?
//     A maximal cycle-free subgraph: one spanning tree per connected
//     component of the covered vertex subset. For a subset of n vertices
//     whose covering edges form c components, the forest holds exactly
//     n − c tree edges.
//
//   - Why it matters here:
//     The cycle extractor derives the graph's cycle basis from the edges
//     the forest REJECTS — every edge whose endpoints were already
//     connected when it was considered closes exactly one independent
//     loop. The forest is the scaffold those loops are traced through.
//
// Algorithm
//
//  1. Collect the requested vertices (default: every vertex, insertion
//     order), dropping unknown and duplicate keys.
//  2. Discover candidate edges by visiting the requested vertices in
//     order and each vertex's incident edges in adjacency insertion
//     order, keeping the first sighting of each canonical pair; edges
//     leaving the subset are ignored.
//  3. With WithMinWeight, stable-sort the candidates by ascending weight;
//     ties keep their discovery order, so equal-weight results remain a
//     deterministic function of insertion history.
//  4. Sweep the candidates with a unionfind.DisjointSet seeded from the
//     subset: an edge joining two different sets is united and linked
//     bidirectionally into the Forest; all other edges are skipped.
//
// The caller's vertex order is significant: it changes which spanning
// tree (and downstream, which specific cycle basis) is produced, never
// how many tree edges or cycles exist.
//
// Complexity: O(E log E) with WithMinWeight (the sort dominates), O(E)
// otherwise, plus near-constant union-find overhead. Memory: O(V + E).
//
// Error Conditions:
//
//	ErrGraphNil — the graph argument is nil.
//
// Requested keys absent from the graph are skipped silently: absent-vertex
// lookups are a non-fatal condition throughout the engine.
package spanning
