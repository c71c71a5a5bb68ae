// Package core: type declarations, sentinel errors, and the Graph
// constructor. Method implementations live in methods_nodes.go,
// methods_edges.go, and methods_adjacent.go.

package core

import (
	"errors"
	"math/rand"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateName indicates AddNode was called with a name already in use.
	ErrDuplicateName = errors.New("core: duplicate node name")

	// ErrMissingEndpoint indicates Connect referenced a non-existent node.
	ErrMissingEndpoint = errors.New("core: edge endpoint not found")

	// ErrSelfLoop indicates Connect was called with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered endpoint pair already has an edge.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates a toggle referenced a pair with no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrWeightRange indicates an invalid randomization range (min < 1 or min > max).
	ErrWeightRange = errors.New("core: invalid weight range")
)

// Node represents a building placed on the canvas.
//
// Name uniquely identifies this Node within its Graph. X and Y are canvas
// coordinates; any rendering handle belongs to the presentation layer's own
// side tables, never here.
type Node struct {
	// Name is the unique, case-sensitive identifier for this Node.
	Name string

	// X, Y is the node's 2D position.
	X float64
	Y float64
}

// Edge represents an undirected connection between two distinct nodes.
//
// Endpoints are stored in canonical order (A < B lexicographically), so the
// pair doubles as a deterministic, hashable identity. Edges reference nodes
// by name only; they hold no pointers into the node table.
type Edge struct {
	// A is the lexicographically smaller endpoint name.
	A string

	// B is the lexicographically larger endpoint name.
	B string

	// Distance is a positive travel-distance weight.
	Distance float64

	// Time is a positive travel-time weight, independent of Distance.
	Time float64

	// Accessible marks the edge as usable in accessible-only mode.
	Accessible bool

	// Closed temporarily removes the edge from traversal regardless of
	// other filters.
	Closed bool
}

// Other returns the endpoint opposite to name. If name is not an endpoint
// of e, the result is e.A (callers resolve edges through the Graph, which
// never hands out an edge for a foreign name).
func (e Edge) Other(name string) string {
	if name == e.A {
		return e.B
	}

	return e.A
}

// pairKey is the canonicalized unordered endpoint pair, a < b.
type pairKey struct {
	a, b string
}

// keyOf canonicalizes two endpoint names into a pairKey.
func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// Filter selects which edges Neighbors may cross. The zero value is the
// strictest useful policy: closed edges excluded, accessibility ignored.
type Filter struct {
	// AccessibleOnly excludes edges with Accessible == false.
	AccessibleOnly bool

	// AllowClosed includes edges with Closed == true; by default they are
	// excluded.
	AllowClosed bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithSeed makes RandomizeWeights deterministic for the given seed.
// Without it the Graph draws from an unpredictable source.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// Graph is the in-memory campus graph: a name→Node table and a
// canonical-pair→Edge table, guarded by a single RWMutex.
//
// The Graph exclusively owns all Node and Edge records; query methods return
// copies, and every mutation goes through a Graph method so the structural
// invariants hold at all times.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node
	edges map[pairKey]*Edge

	// rng feeds RandomizeWeights; seedable via WithSeed.
	rng *rand.Rand
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[pairKey]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return g
}
