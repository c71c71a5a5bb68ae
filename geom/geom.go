package geom

// Point is a position on the canvas plane.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistSq returns the squared Euclidean distance between p and q.
func DistSq(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// SegmentDistSq returns the squared distance from point p to the segment a–b.
//
// If a and b coincide, the segment degenerates to a point and the squared
// distance to a is returned. Otherwise p is projected onto the infinite line
// through a and b via t = ((p-a)·(b-a)) / |b-a|², t is clamped to [0,1] to
// stay on the segment, and the squared distance to the clamped projection is
// returned. Endpoints and interior points are handled uniformly.
func SegmentDistSq(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		// degenerate segment: a single point
		return DistSq(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	proj := Point{X: a.X + t*dx, Y: a.Y + t*dy}

	return DistSq(p, proj)
}

// NearSegment reports whether p lies within threshold of the segment a–b.
// The comparison is inclusive and performed on squared values.
func NearSegment(p, a, b Point, threshold float64) bool {
	return SegmentDistSq(p, a, b) <= threshold*threshold
}
