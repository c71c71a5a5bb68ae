package hittest

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geom"
)

// Canvas geometry defaults shared with the renderer.
const (
	// DefaultNodeRadius is the node disc radius in canvas units.
	DefaultNodeRadius = 18.0

	// DefaultEdgeThreshold is how close a pointer must come to an edge
	// segment to count as a hit.
	DefaultEdgeThreshold = 6.0
)

// Option overrides the hit-test geometry per call.
type Option func(*Options)

// Options holds the hit-test tolerances.
type Options struct {
	// NodeRadius is the node hit radius; non-positive values fall back to
	// DefaultNodeRadius.
	NodeRadius float64

	// EdgeThreshold is the edge proximity threshold; non-positive values
	// fall back to DefaultEdgeThreshold.
	EdgeThreshold float64
}

// DefaultOptions returns the canvas defaults.
func DefaultOptions() Options {
	return Options{
		NodeRadius:    DefaultNodeRadius,
		EdgeThreshold: DefaultEdgeThreshold,
	}
}

// WithNodeRadius overrides the node hit radius.
func WithNodeRadius(r float64) Option {
	return func(o *Options) {
		if r > 0 {
			o.NodeRadius = r
		}
	}
}

// WithEdgeThreshold overrides the edge proximity threshold.
func WithEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.EdgeThreshold = t
		}
	}
}

// NodeAt returns the name of the first node whose position lies within the
// hit radius of (x, y), and whether one was found.
func NodeAt(g *core.Graph, x, y float64, opts ...Option) (string, bool) {
	if g == nil {
		return "", false
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := geom.Pt(x, y)
	r2 := o.NodeRadius * o.NodeRadius
	for _, n := range g.Nodes() {
		if geom.DistSq(p, geom.Pt(n.X, n.Y)) <= r2 {
			return n.Name, true
		}
	}

	return "", false
}

// EdgeAt returns a copy of the first edge whose segment between its endpoint
// positions lies within the threshold of (x, y), and whether one was found.
// Edges whose endpoints cannot be resolved to nodes are skipped; the model's
// invariants make that unreachable, but a stale snapshot taken across a
// mutation should degrade to a miss rather than a panic.
func EdgeAt(g *core.Graph, x, y float64, opts ...Option) (core.Edge, bool) {
	if g == nil {
		return core.Edge{}, false
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := geom.Pt(x, y)
	for _, e := range g.Edges() {
		na, okA := g.Node(e.A)
		nb, okB := g.Node(e.B)
		if !okA || !okB {
			continue
		}
		if geom.NearSegment(p, geom.Pt(na.X, na.Y), geom.Pt(nb.X, nb.Y), o.EdgeThreshold) {
			return e, true
		}
	}

	return core.Edge{}, false
}
