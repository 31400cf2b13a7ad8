// Package cycles: the extraction pipeline — vertex ordering, rejected-edge
// discovery, and iterative forest DFS.
package cycles

import (
	"sort"

	"github.com/katalvlaran/cyclebasis/core"
	"github.com/katalvlaran/cyclebasis/spanning"
)

// Extract returns every independent cycle of g, one per rejected edge of
// the spanning forest built over the requested vertices. The result count
// equals the circuit rank of the covered subgraph.
//
// Returns ErrGraphNil if g is nil.
// Complexity: O(E·(V+E)) worst case — one DFS per rejected edge.
func Extract(g *core.Graph, opts ...Option) ([]Cycle, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Resolve and order the vertex visitation sequence.
	requested := o.Vertices
	if requested == nil {
		requested = g.Vertices()
	}
	order := orderVertices(g, requested, o.Order)

	// 4. Build the spanning forest over that sequence.
	buildOpts := []spanning.Option{spanning.WithVertices(order...)}
	if o.MinWeight {
		buildOpts = append(buildOpts, spanning.WithMinWeight())
	}
	forest, err := spanning.Build(g, buildOpts...)
	if err != nil {
		return nil, err
	}

	// 5. Close each rejected edge through the forest; drop degenerates
	//    (no tree path, or ≤2 distinct vertices).
	rejected := rejectedEdges(g, forest)
	out := make([]Cycle, 0, len(rejected))
	for _, r := range rejected {
		if path := findPath(forest, r.from, r.to); len(path) > 2 {
			out = append(out, Cycle(path))
		}
	}

	return out, nil
}

// ExtractSubset returns the cycles of the subgraph induced by keys; edges
// leaving the subset never contribute. Options apply as in Extract.
func ExtractSubset(g *core.Graph, keys []string, opts ...Option) ([]Cycle, error) {
	return Extract(g, append(opts, WithVertices(keys...))...)
}

// orderVertices filters requested down to keys present in g and applies
// the visitation order. Degree sorts are stable, so equal-degree vertices
// keep their requested relative order.
func orderVertices(g *core.Graph, requested []string, order VisitOrder) []string {
	keys := make([]string, 0, len(requested))
	for _, k := range requested {
		if g.HasVertex(k) {
			keys = append(keys, k)
		}
	}

	switch order {
	case OrderDegreeDesc:
		sort.SliceStable(keys, func(i, j int) bool {
			return g.VertexByKey(keys[i]).Degree() > g.VertexByKey(keys[j]).Degree()
		})
	case OrderDegreeAsc:
		sort.SliceStable(keys, func(i, j int) bool {
			return g.VertexByKey(keys[i]).Degree() < g.VertexByKey(keys[j]).Degree()
		})
	}

	return keys
}

// rejectedEdge is the transient directed view of a non-tree edge: from is
// the endpoint that sighted it first during the forest scan.
type rejectedEdge struct {
	from string
	to   string
}

// rejectedEdges scans every forest vertex's incident graph edges and
// collects those whose far endpoint is not forest-adjacent. Each canonical
// pair is kept once, in first-sighting orientation, so no cycle is traced
// twice.
func rejectedEdges(g *core.Graph, f *spanning.Forest) []rejectedEdge {
	seen := make(map[core.EdgeKey]struct{})
	var out []rejectedEdge
	for _, v := range f.Vertices() {
		for _, e := range g.Neighbors(v) {
			other, ok := e.Other(v)
			if !ok || f.Adjacent(v, other) {
				continue
			}
			k := e.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, rejectedEdge{from: v, to: other})
		}
	}

	return out
}

// frame is one level of the explicit DFS stack: a vertex, its neighbor
// list (fetched once), and the index of the next neighbor to try.
type frame struct {
	key  string
	nbs  []string
	next int
}

// findPath depth-first-searches the forest from start to goal, returning
// the tree path start → … → goal, or nil when goal is unreachable. The
// explicit stack bounds depth on chain-shaped inputs; neighbors are tried
// in forest insertion order, matching the recursive traversal.
func findPath(f *spanning.Forest, start, goal string) []string {
	if !f.Has(start) || !f.Has(goal) {
		return nil
	}

	stack := []frame{{key: start, nbs: f.Neighbors(start)}}
	visited := map[string]struct{}{start: {}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.key == goal {
			path := make([]string, len(stack))
			for i := range stack {
				path[i] = stack[i].key
			}

			return path
		}

		// Advance to the next unvisited neighbor, or backtrack.
		pushed := false
		for top.next < len(top.nbs) {
			n := top.nbs[top.next]
			top.next++
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			stack = append(stack, frame{key: n, nbs: f.Neighbors(n)})
			pushed = true

			break
		}
		if !pushed {
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}
