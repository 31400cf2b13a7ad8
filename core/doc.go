// Package core provides the in-memory Graph container at the bottom of the
// cycle-basis engine: identity-keyed vertex and edge registries with
// deterministic, insertion-ordered iteration.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only — an edge is an unordered pair of vertex keys,
//     canonicalized once into an EdgeKey (lexicographically ordered
//     endpoints) that serves as its sole identity everywhere: storage,
//     lookup, and the cycle extractor's de-duplication.
//   - Idempotent insertion — AddVertex returns the existing vertex,
//     AddEdge returns the existing edge (first write wins, including its
//     weight).
//   - Adjacency by key, never by pointer — each Vertex carries an
//     insertion-ordered list of incident EdgeKeys plus a membership set,
//     so the structure contains no reference cycles.
//   - Self-healing deletion — RemoveEdge detaches the edge from both
//     endpoints and prunes any endpoint whose adjacency becomes empty;
//     removing an absent edge is a warning, not an error.
//
// Why insertion order matters: the spanning-forest builder defines its
// tie-breaking in terms of the order edges entered the graph. Sorted or
// randomized iteration would make the produced forest — and therefore the
// extracted cycle basis — depend on key spelling or map seed instead of
// input history.
//
// Error policy (see package sentinels):
//
//	ErrEmptyVertexKey — empty key at insertion; identity lookups are
//	                    pervasive, so a corrupted key fails fast.
//	ErrLoopNotAllowed — AddEdge with identical endpoints; a loop can never
//	                    join a spanning forest or a >2-vertex cycle.
//
// Absent-entity queries are non-fatal: lookups return nil/empty, and the
// Remove* methods emit a diagnostic on the Graph's logger (WithLogger) and
// return normally.
//
// Concurrency: none. All operations are synchronous and the Graph holds no
// locks; guard a shared instance with your own mutex.
package core
