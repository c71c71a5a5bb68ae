// Package hittest maps 2D pointer coordinates onto graph entities: NodeAt
// resolves a click to a node name, EdgeAt to an edge.
//
// Nodes hit within a fixed radius (squared-distance comparison), edges
// within a fixed threshold of their segment (geom.SegmentDistSq). Both
// defaults come from the canvas geometry the editor renders with and can be
// overridden per call via options.
//
// Iteration follows the model's sorted listings, and the first qualifying
// entity wins. Overlapping nodes are a degenerate layout, not a contract:
// which of several overlapping candidates is returned is unspecified.
//
// Complexity: O(V) for NodeAt, O(E) for EdgeAt.
package hittest
