// Package spanning: Forest type, configuration options and sentinel errors.
package spanning

import "errors"

// ErrGraphNil is returned when Build receives a nil graph.
var ErrGraphNil = errors.New("spanning: graph is nil")

// Forest is a cycle-free adjacency structure over a vertex subset: one
// tree per connected component reached by the covering edge set. Vertex
// and neighbor iteration both follow insertion order, which keeps every
// downstream traversal reproducible.
//
// A Forest is immutable once returned by Build.
type Forest struct {
	// order lists the covered vertices in the order they were requested.
	order []string

	// adj holds insertion-ordered neighbor lists per vertex.
	adj map[string][]string

	// index mirrors adj as membership sets for O(1) Adjacent checks.
	index map[string]map[string]struct{}

	// edges counts tree edges (each bidirectional link counted once).
	edges int
}

// newForest returns an empty Forest sized for n vertices.
func newForest(n int) *Forest {
	return &Forest{
		order: make([]string, 0, n),
		adj:   make(map[string][]string, n),
		index: make(map[string]map[string]struct{}, n),
	}
}

// addVertex registers key with an empty neighbor set; idempotent.
func (f *Forest) addVertex(key string) {
	if _, ok := f.index[key]; ok {
		return
	}
	f.order = append(f.order, key)
	f.index[key] = make(map[string]struct{})
}

// link records the tree edge a–b in both directions.
func (f *Forest) link(a, b string) {
	f.adj[a] = append(f.adj[a], b)
	f.adj[b] = append(f.adj[b], a)
	f.index[a][b] = struct{}{}
	f.index[b][a] = struct{}{}
	f.edges++
}

// Has reports whether key is covered by this forest.
func (f *Forest) Has(key string) bool {
	_, ok := f.index[key]

	return ok
}

// Adjacent reports whether a and b are joined by a tree edge.
func (f *Forest) Adjacent(a, b string) bool {
	_, ok := f.index[a][b]

	return ok
}

// Neighbors returns a copy of key's tree neighbors in the order the tree
// edges were accepted. Uncovered keys yield an empty result.
func (f *Forest) Neighbors(key string) []string {
	nbs := f.adj[key]
	if len(nbs) == 0 {
		return nil
	}
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out
}

// Vertices returns the covered vertex keys in request order.
func (f *Forest) Vertices() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)

	return out
}

// VertexCount returns the number of covered vertices.
func (f *Forest) VertexCount() int {
	return len(f.order)
}

// EdgeCount returns the number of tree edges.
func (f *Forest) EdgeCount() int {
	return f.edges
}

// Options configures how Build selects and orders edges.
// Use DefaultOptions() to get the default setup.
type Options struct {
	// Vertices restricts the forest to the given subset.
	// nil means every vertex currently in the graph, in insertion order.
	Vertices []string

	// MinWeight orders candidate edges by ascending weight before the
	// union-find sweep, producing a minimum spanning forest.
	MinWeight bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options covering the whole graph without weight
// minimization.
func DefaultOptions() Options {
	return Options{
		Vertices:  nil,
		MinWeight: false,
	}
}

// WithVertices restricts the forest to the given vertex subset, in the
// given order. Unknown and duplicate keys are skipped.
func WithVertices(keys ...string) Option {
	return func(o *Options) {
		o.Vertices = keys
	}
}

// WithMinWeight orders candidate edges by ascending weight (stable: ties
// keep discovery order), minimizing the forest's total weight.
func WithMinWeight() Option {
	return func(o *Options) {
		o.MinWeight = true
	}
}
