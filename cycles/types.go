// Package cycles: result type, visitation orders, options and sentinels.
package cycles

import "errors"

// ErrGraphNil is returned when Extract receives a nil graph.
var ErrGraphNil = errors.New("cycles: graph is nil")

// Cycle is an ordered sequence of vertex keys forming a closed walk: the
// last key connects back to the first through the rejected edge that
// produced it. Every cycle holds more than two distinct keys and repeats
// none of them. Cycles are derived, transient outputs — never stored on
// the Graph.
type Cycle []string

// VisitOrder selects how vertices are ordered before the spanning forest
// is built. The order changes which spanning tree (and thus which specific
// cycles) are produced, never the cycle count.
type VisitOrder int

const (
	// OrderInsertion visits vertices in graph insertion order (no sort).
	OrderInsertion VisitOrder = iota

	// OrderDegreeDesc visits highest-degree vertices first; ties keep
	// insertion order.
	OrderDegreeDesc

	// OrderDegreeAsc visits lowest-degree vertices first; ties keep
	// insertion order.
	OrderDegreeAsc
)

// Options configures cycle extraction.
// Use DefaultOptions() to get the default setup.
type Options struct {
	// Order is the vertex visitation order applied before forest
	// construction. Default: OrderInsertion.
	Order VisitOrder

	// Vertices restricts extraction to the given subset; nil means the
	// whole graph.
	Vertices []string

	// MinWeight builds the forest weight-minimally, biasing the basis
	// toward cycles closed by heavy (long) edges.
	MinWeight bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options for full-graph extraction in insertion
// order without weight minimization.
func DefaultOptions() Options {
	return Options{
		Order:     OrderInsertion,
		Vertices:  nil,
		MinWeight: false,
	}
}

// WithVisitOrder sets the vertex visitation order.
func WithVisitOrder(order VisitOrder) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithVertices restricts extraction to the given vertex subset.
// Unknown and duplicate keys are skipped.
func WithVertices(keys ...string) Option {
	return func(o *Options) {
		o.Vertices = keys
	}
}

// WithMinWeight builds the underlying spanning forest weight-minimally.
func WithMinWeight() Option {
	return func(o *Options) {
		o.MinWeight = true
	}
}
