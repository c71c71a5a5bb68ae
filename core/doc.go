// Package core defines the central Graph, Node, and Edge types for the
// campus navigation model, and provides thread-safe primitives for building,
// mutating, and querying an undirected weighted graph.
//
// What
//
//   - Node: a named building with a 2D canvas position. Identity is the
//     name (case-sensitive); positions carry no semantics beyond rendering
//     and hit-testing.
//   - Edge: an undirected link between two distinct nodes, stored exactly
//     once under a canonicalized (lexicographically ordered) endpoint pair.
//     Attributes: Distance and Time weights, an Accessible flag, and a
//     Closed flag that temporarily removes the edge from traversal.
//   - Graph: the aggregate owner of all nodes and edges. Callers receive
//     value copies from queries; mutation happens only through Graph methods.
//
// Structural invariants, always true:
//
//  1. Every edge's endpoints exist as nodes.
//  2. At most one edge per unordered endpoint pair (no multi-edges).
//  3. No self-loops.
//  4. Removing a node cascades to all incident edges.
//
// Filtering
//
//	Neighbors(name, Filter{...}) answers one-hop adjacency under two
//	independent exclusions combined with AND: closed edges are skipped
//	unless AllowClosed, and non-accessible edges are skipped when
//	AccessibleOnly. The result is sorted ascending for reproducibility.
//
// Concurrency
//
//	A single sync.RWMutex guards all state, so the model is safe to share
//	across goroutines even though the interactive editor drives it from a
//	single event loop.
//
// Errors
//
//	ErrDuplicateName   - AddNode with a name already present.
//	ErrMissingEndpoint - Connect with an endpoint that does not exist.
//	ErrSelfLoop        - Connect with identical endpoints.
//	ErrDuplicateEdge   - Connect when the pair already has an edge.
//	ErrEdgeNotFound    - toggle on an endpoint pair with no edge.
//	ErrWeightRange     - RandomizeWeights with an invalid [min,max] range.
//
// Every mutation either fully applies or fails without touching state.
// RemoveNode and Disconnect are deliberately forgiving: removing something
// that is already gone is a no-op, not an error.
package core
