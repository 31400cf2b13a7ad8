// Package cycles extracts the independent closed loops of an undirected
// core.Graph — the step that turns a wall network into enclosed rooms.
//
// How it works
//
//  1. A spanning forest is built over the requested vertices
//     (spanning.Build). Every graph edge the forest did not accept is a
//     "rejected" edge: its endpoints were already connected when it was
//     considered, so it closes exactly one loop.
//
//  2. Rejected edges are discovered by scanning each forest vertex's
//     incident graph edges and testing forest adjacency of the far
//     endpoint. An undirected edge would surface once per endpoint, so
//     only the first sighting of each canonical pair is kept; the
//     orientation of that first sighting decides which endpoint the
//     traversal starts from.
//
//  3. For each rejected edge (A, B), a depth-first search of the forest
//     from A to B recovers the tree path between them; closing it with
//     the rejected edge yields one cycle. The search runs on an explicit
//     frame stack (no recursion, bounded depth on chain-shaped graphs)
//     and visits neighbors in the forest's insertion order, so the result
//     matches what the recursive form would produce. Results with two or
//     fewer vertices — including rejected edges whose far endpoint the
//     forest cannot reach — are degenerate and discarded.
//
// For a covered subgraph with E edges, V vertices and C connected
// components, extraction returns exactly E − V + C cycles (the circuit
// rank). The vertex visitation order (WithVisitOrder) changes which
// spanning tree — and therefore which specific cycles — are produced,
// never how many. Whether the returned set forms an independent cycle
// basis is not verified; only the count invariant is guaranteed.
//
// Entry points:
//
//   - Extract(g, opts...)          — full-graph extraction.
//   - ExtractSubset(g, keys, ...)  — localized queries over a subset.
//
// Extraction is stateless: every call recomputes the forest and cycles
// from scratch (at least O(V+E)); callers querying a slowly changing
// graph repeatedly should cache results and invalidate on mutation.
// Worst case is O(E·(V+E)) — one DFS per rejected edge.
//
// Error Conditions:
//
//	ErrGraphNil — the graph argument is nil.
package cycles
