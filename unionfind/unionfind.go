// Package unionfind: the DisjointSet type and its operations.
package unionfind

// DisjointSet tracks a partition of a fixed string-element universe with
// near-constant-time Union and Connected queries. The zero value is not
// usable; construct with New.
type DisjointSet struct {
	// parent maps each element to its parent; roots point to themselves.
	parent map[string]string

	// rank bounds the depth of the tree rooted at each root element.
	rank map[string]int

	// components counts the current number of disjoint sets.
	components int
}

// New builds a DisjointSet over the given elements, each starting as its
// own singleton set. Duplicate elements are collapsed.
// Complexity: O(n).
func New(elements []string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(elements)),
		rank:   make(map[string]int, len(elements)),
	}
	for _, e := range elements {
		if _, seen := d.parent[e]; seen {
			continue
		}
		d.parent[e] = e
		d.rank[e] = 0
		d.components++
	}

	return d
}

// Len returns the number of registered elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Components returns the current number of disjoint sets.
func (d *DisjointSet) Components() int {
	return d.components
}

// Find resolves e to its set representative. The second result is false
// when e was never registered. Path compression shortens the walked chain
// but never changes which representative connected elements resolve to.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(e string) (string, bool) {
	if _, ok := d.parent[e]; !ok {
		return "", false
	}
	// Walk up until the root (parent[e] == e), re-pointing each step at
	// its grandparent along the way.
	for d.parent[e] != e {
		d.parent[e] = d.parent[d.parent[e]]
		e = d.parent[e]
	}

	return e, true
}

// Union merges the sets containing a and b, reporting whether a merge
// happened. Already-connected or unregistered elements make it a no-op.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(a, b string) bool {
	rootA, okA := d.Find(a)
	rootB, okB := d.Find(b)
	if !okA || !okB || rootA == rootB {
		return false
	}

	// Attach the shallower tree under the deeper root.
	if d.rank[rootA] < d.rank[rootB] {
		d.parent[rootA] = rootB
	} else {
		d.parent[rootB] = rootA
		if d.rank[rootA] == d.rank[rootB] {
			d.rank[rootA]++
		}
	}
	d.components--

	return true
}

// Connected reports whether a and b currently share a set. Unregistered
// elements are connected to nothing, not even themselves.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Connected(a, b string) bool {
	rootA, okA := d.Find(a)
	rootB, okB := d.Find(b)

	return okA && okB && rootA == rootB
}
