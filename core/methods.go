// Package core: Graph method implementations.
//
// All mutations validate their inputs completely before touching either
// registry, so a failed call leaves the Graph unchanged. Iteration helpers
// (Vertices, Edges, Neighbors) follow insertion order; the spanning-forest
// builder's determinism depends on that.

package core

// AddVertex inserts a vertex with the given key, or returns the existing
// one; idempotent. Returns ErrEmptyVertexKey if key is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(key string) (*Vertex, error) {
	// Validate input: empty keys are not allowed.
	if key == "" {
		return nil, ErrEmptyVertexKey
	}
	// Idempotent: existing vertex wins.
	if v, exists := g.vertices[key]; exists {
		return v, nil
	}
	v := &Vertex{Key: key, incident: make(map[EdgeKey]struct{})}
	g.vertices[key] = v
	g.vertexOrder = append(g.vertexOrder, key)

	return v, nil
}

// HasVertex reports whether a vertex with the given key exists.
// Complexity: O(1).
func (g *Graph) HasVertex(key string) bool {
	_, exists := g.vertices[key]

	return exists
}

// VertexByKey returns the vertex with the given key, or nil when absent.
// Absent keys are a non-fatal condition.
// Complexity: O(1).
func (g *Graph) VertexByKey(key string) *Vertex {
	return g.vertices[key]
}

// AddEdge creates an undirected edge between a and b with the given weight,
// registering both endpoints (creating them if missing) and updating both
// incidence lists. If an edge with the same canonical identity already
// exists, that edge is returned unchanged (first write wins, including the
// weight); idempotent.
//
// Returns ErrEmptyVertexKey or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) (*Edge, error) {
	// 1. Input validation — fail before any mutation.
	if a == "" || b == "" {
		return nil, ErrEmptyVertexKey
	}
	if a == b {
		return nil, ErrLoopNotAllowed
	}

	// 2. Canonical identity; existing edge wins.
	k := NewEdgeKey(a, b)
	if e, exists := g.edges[k]; exists {
		return e, nil
	}

	// 3. Ensure both endpoints exist (idempotent; cannot fail past step 1).
	va, err := g.AddVertex(k.A)
	if err != nil {
		return nil, err
	}
	vb, err := g.AddVertex(k.B)
	if err != nil {
		return nil, err
	}

	// 4. Register the edge and attach it to both incidence lists.
	e := &Edge{A: k.A, B: k.B, Weight: weight}
	g.edges[k] = e
	g.edgeOrder = append(g.edgeOrder, k)
	va.attach(k)
	vb.attach(k)

	return e, nil
}

// HasEdge reports whether an edge between a and b exists.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, exists := g.edges[NewEdgeKey(a, b)]

	return exists
}

// EdgeBetween returns the edges shared by vertices a and b, computed as the
// intersection of the two incidence sets. With canonical edge identities
// the result holds at most one edge, but the slice form tolerates callers
// that model parallel segments. Absent vertices yield an empty result.
// Complexity: O(min(deg(a), deg(b))).
func (g *Graph) EdgeBetween(a, b string) []*Edge {
	va, vb := g.vertices[a], g.vertices[b]
	if va == nil || vb == nil {
		return nil
	}
	// Scan the smaller incidence list against the larger membership set.
	if vb.Degree() < va.Degree() {
		va, vb = vb, va
	}
	var out []*Edge
	for _, k := range va.incidence {
		if vb.hasIncident(k) {
			out = append(out, g.edges[k])
		}
	}

	return out
}

// RemoveEdge deletes the edge between a and b. If no such edge exists, a
// diagnostic warning is logged and the call returns normally — repeated
// deletes are expected in normal use. An endpoint whose adjacency becomes
// empty is pruned from the vertex registry.
// Complexity: O(deg(a) + deg(b) + E) due to order-list splicing.
func (g *Graph) RemoveEdge(a, b string) {
	k := NewEdgeKey(a, b)
	e, exists := g.edges[k]
	if !exists {
		g.logger.Printf("core: remove edge %s–%s: not found", k.A, k.B)

		return
	}

	// Drop from the edge registry and its order list.
	delete(g.edges, k)
	g.spliceEdgeOrder(k)

	// Detach from both endpoints, pruning any endpoint left isolated.
	for _, key := range []string{e.A, e.B} {
		v := g.vertices[key]
		v.detach(k)
		if v.Degree() == 0 {
			delete(g.vertices, key)
			g.spliceVertexOrder(key)
		}
	}
}

// RemoveVertex deletes the vertex with the given key together with all of
// its incident edges, applying RemoveEdge pruning to the far endpoints.
// An absent key logs a warning and returns normally.
// Complexity: O(deg(v) · E) worst case.
func (g *Graph) RemoveVertex(key string) {
	v, exists := g.vertices[key]
	if !exists {
		g.logger.Printf("core: remove vertex %s: not found", key)

		return
	}
	// Copy; RemoveEdge mutates the incidence list being walked.
	for _, k := range v.IncidentEdges() {
		g.RemoveEdge(k.A, k.B)
	}
	// An isolated vertex has no edges to cascade through; drop it directly.
	if _, still := g.vertices[key]; still {
		delete(g.vertices, key)
		g.spliceVertexOrder(key)
	}
}

// Neighbors returns the edges incident to the vertex with the given key in
// the order they were attached. Absent keys yield an empty result.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(key string) []*Edge {
	v := g.vertices[key]
	if v == nil {
		return nil
	}
	out := make([]*Edge, 0, len(v.incidence))
	for _, k := range v.incidence {
		out = append(out, g.edges[k])
	}

	return out
}

// Vertices returns all vertex keys in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		out = append(out, g.edges[k])
	}

	return out
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var total float64
	for _, e := range g.edges {
		total += e.Weight
	}

	return total
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Clear resets the graph to the empty state, preserving its options.
func (g *Graph) Clear() {
	g.vertices = make(map[string]*Vertex)
	g.vertexOrder = nil
	g.edges = make(map[EdgeKey]*Edge)
	g.edgeOrder = nil
}

// Internal helper methods:
////////////////////

// spliceVertexOrder removes key from the vertex order list.
func (g *Graph) spliceVertexOrder(key string) {
	for i, k := range g.vertexOrder {
		if k == key {
			g.vertexOrder = append(g.vertexOrder[:i], g.vertexOrder[i+1:]...)

			return
		}
	}
}

// spliceEdgeOrder removes k from the edge order list.
func (g *Graph) spliceEdgeOrder(k EdgeKey) {
	for i, ik := range g.edgeOrder {
		if ik == k {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)

			return
		}
	}
}
