// Package geom provides the small set of 2D primitives the spatial layer
// needs: points, squared distances, and the point-to-segment proximity test
// used for edge hit-testing.
//
// All comparisons operate on squared distances, so no square roots are taken
// anywhere in the package.
//
// Complexity: every function is O(1).
package geom
