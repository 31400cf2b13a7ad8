// Package unionfind implements a disjoint-set structure over string
// elements, used by the spanning-forest builder for connectivity
// bookkeeping while deciding which edges join the forest.
//
// What & Why
//
//   - A DisjointSet tracks a partition of a fixed element universe.
//     Each element starts as its own singleton set; Union merges two sets;
//     Find resolves an element to its set representative; Connected asks
//     whether two elements currently share a set.
//
//   - In Kruskal-style forest construction, an edge whose endpoints are
//     already Connected would close a cycle — exactly the "rejected" edges
//     the cycle extractor later walks.
//
// Implementation
//
//   - Iterative Find with grandparent path compression: while walking to
//     the root, each visited element is re-pointed at its grandparent,
//     halving future path lengths. Compression never changes which
//     representative two connected elements resolve to, so Find remains a
//     pure query of the partition.
//
//   - Union by rank: the shallower tree is linked under the deeper root;
//     equal ranks increment the surviving root's rank. Only the internal
//     tree shape depends on this policy — the partition, and therefore
//     every Connected answer, does not.
//
//   - The element universe is fixed at construction. Unknown elements are
//     handled without error states: Find reports absence, Union is a
//     no-op, Connected is false.
//
// Complexity: Find/Union/Connected run in O(α(n)) amortized (inverse
// Ackermann, effectively constant); construction is O(n). Memory: O(n).
package unionfind
