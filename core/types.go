// Package core: type declarations for the Graph container.
//
// This file declares EdgeKey, Edge, Vertex, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"log"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexKey indicates that an empty vertex key was supplied.
	ErrEmptyVertexKey = errors.New("core: vertex key is empty")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same vertex.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// EdgeKey is the canonical identity of an undirected edge: the two endpoint
// keys in lexicographic order (A <= B). Equal endpoint pairs always produce
// equal EdgeKeys regardless of the order the caller names them, which makes
// EdgeKey usable directly as a map key for both edge storage and
// rejected-edge de-duplication.
type EdgeKey struct {
	// A is the lexicographically smaller endpoint key.
	A string

	// B is the lexicographically larger endpoint key.
	B string
}

// NewEdgeKey canonicalizes the unordered pair (a, b) into an EdgeKey.
// Complexity: O(1).
func NewEdgeKey(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}

	return EdgeKey{A: a, B: b}
}

// Other returns the endpoint opposite to key, and whether key is an
// endpoint of k at all.
func (k EdgeKey) Other(key string) (string, bool) {
	switch key {
	case k.A:
		return k.B, true
	case k.B:
		return k.A, true
	}

	return "", false
}

// Edge is an undirected connection between two vertices with a scalar
// weight supplied by the caller (typically a Euclidean segment length).
// Endpoints are stored canonically ordered; Edge carries no direction.
type Edge struct {
	// A is the lexicographically smaller endpoint key.
	A string

	// B is the lexicographically larger endpoint key.
	B string

	// Weight is the caller-supplied edge cost. Defaults to 0.
	Weight float64
}

// Key returns the canonical identity of this edge.
func (e *Edge) Key() EdgeKey {
	return EdgeKey{A: e.A, B: e.B}
}

// Other returns the endpoint opposite to key, and whether key is an
// endpoint of e at all.
func (e *Edge) Other(key string) (string, bool) {
	return e.Key().Other(key)
}

// Vertex is a node in the graph: an opaque caller-supplied key plus the
// set of incident edges, tracked by canonical EdgeKey in insertion order.
// Vertices are owned by their Graph; callers treat them as read-only.
type Vertex struct {
	// Key uniquely identifies this Vertex within its Graph.
	Key string

	// incidence lists incident EdgeKeys in insertion order.
	incidence []EdgeKey

	// incident is the membership set mirroring incidence.
	incident map[EdgeKey]struct{}
}

// Degree reports the number of incident edges.
func (v *Vertex) Degree() int {
	return len(v.incidence)
}

// IncidentEdges returns a copy of the incident EdgeKeys in the order the
// edges were attached.
func (v *Vertex) IncidentEdges() []EdgeKey {
	out := make([]EdgeKey, len(v.incidence))
	copy(out, v.incidence)

	return out
}

// hasIncident reports whether k is attached to this vertex.
func (v *Vertex) hasIncident(k EdgeKey) bool {
	_, ok := v.incident[k]

	return ok
}

// attach records k as incident; idempotent.
func (v *Vertex) attach(k EdgeKey) {
	if _, ok := v.incident[k]; ok {
		return
	}
	v.incident[k] = struct{}{}
	v.incidence = append(v.incidence, k)
}

// detach removes k from the incidence records; absent k is a no-op.
func (v *Vertex) detach(k EdgeKey) {
	if _, ok := v.incident[k]; !ok {
		return
	}
	delete(v.incident, k)
	for i, ik := range v.incidence {
		if ik == k {
			v.incidence = append(v.incidence[:i], v.incidence[i+1:]...)
			break
		}
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger sets the destination for non-fatal diagnostics (e.g. removing
// an absent edge). A nil logger has no effect; the default is log.Default().
func WithLogger(l *log.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// Graph is the core in-memory container: two insertion-ordered, identity-
// keyed registries (vertices by key, edges by canonical EdgeKey).
//
// Invariants maintained by every mutation:
//   - every edge's endpoints exist in the vertex registry;
//   - a vertex's incidence records exactly the registered edges naming it;
//   - a vertex whose adjacency becomes empty through edge removal is
//     pruned from the vertex registry.
//
// Graph performs no internal locking.
type Graph struct {
	logger *log.Logger

	// vertices maps vertex key → Vertex; vertexOrder preserves insertion.
	vertices    map[string]*Vertex
	vertexOrder []string

	// edges maps canonical EdgeKey → Edge; edgeOrder preserves insertion.
	edges     map[EdgeKey]*Edge
	edgeOrder []EdgeKey
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger:   log.Default(),
		vertices: make(map[string]*Vertex),
		edges:    make(map[EdgeKey]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
