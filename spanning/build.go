// Package spanning: the Build entry point.
package spanning

import (
	"sort"

	"github.com/katalvlaran/cyclebasis/core"
	"github.com/katalvlaran/cyclebasis/unionfind"
)

// Build constructs a spanning forest over g, restricted to the requested
// vertex subset (default: all vertices in insertion order). With
// WithMinWeight the result is a minimum spanning forest; otherwise edges
// are considered in discovery order.
//
// Returns ErrGraphNil if g is nil. The result always holds exactly
// |subset| − components tree edges.
//
// Complexity: O(E log E) weighted, O(E) otherwise, excluding union-find
// overhead.
func Build(g *core.Graph, opts ...Option) (*Forest, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Resolve the requested subset: default to the whole graph,
	//    drop unknown keys, collapse duplicates, keep caller order.
	requested := o.Vertices
	if requested == nil {
		requested = g.Vertices()
	}
	forest := newForest(len(requested))
	keys := make([]string, 0, len(requested))
	for _, k := range requested {
		if !g.HasVertex(k) || forest.Has(k) {
			continue
		}
		forest.addVertex(k)
		keys = append(keys, k)
	}

	// 4. Discover candidate edges: subset vertices in order, incident
	//    edges in adjacency insertion order, first sighting wins. Edges
	//    leaving the subset can never become tree edges.
	seen := make(map[core.EdgeKey]struct{}, g.EdgeCount())
	var candidates []*core.Edge
	for _, k := range keys {
		for _, e := range g.Neighbors(k) {
			ek := e.Key()
			if _, dup := seen[ek]; dup {
				continue
			}
			seen[ek] = struct{}{}
			if !forest.Has(e.A) || !forest.Has(e.B) {
				continue
			}
			candidates = append(candidates, e)
		}
	}

	// 5. Ascending weight order when requested; the stable sort keeps
	//    discovery order for equal weights.
	if o.MinWeight {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Weight < candidates[j].Weight
		})
	}

	// 6. Kruskal sweep: accept each edge that bridges two components.
	dsu := unionfind.New(keys)
	for _, e := range candidates {
		if dsu.Connected(e.A, e.B) {
			continue
		}
		dsu.Union(e.A, e.B)
		forest.link(e.A, e.B)
	}

	return forest, nil
}
