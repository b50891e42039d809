package drafter

import "math"

// Intersection math for object snapping. All functions are pure and
// operate on document units. Tangent and endpoint contacts count as
// intersections; collinear overlaps do not produce candidate points
// (there is no single "the" intersection to snap to).

// segmentIntersection returns the intersection point of segments
// (a1,a2) and (b1,b2), if the segments cross or touch at a single
// point. Parallel and collinear pairs report no intersection.
func segmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	rx := a2.X - a1.X
	ry := a2.Y - a1.Y
	sx := b2.X - b1.X
	sy := b2.Y - b1.Y

	denom := rx*sy - ry*sx
	if math.Abs(denom) <= Epsilon {
		return Point{}, false
	}

	qpx := b1.X - a1.X
	qpy := b1.Y - a1.Y
	t := (qpx*sy - qpy*sx) / denom
	u := (qpx*ry - qpy*rx) / denom

	// Allow a small tolerance at the ends so endpoint touches register.
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return Point{}, false
	}
	return Point{X: a1.X + t*rx, Y: a1.Y + t*ry}, true
}

// segmentCircleIntersections returns the points where segment (p1,p2)
// meets the circle (center, r). Zero, one (tangent), or two points.
func segmentCircleIntersections(p1, p2, center Point, r float64) []Point {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	fx := p1.X - center.X
	fy := p1.Y - center.Y

	a := dx*dx + dy*dy
	if a <= Epsilon*Epsilon {
		// Degenerate segment: no usable intersection.
		return nil
	}
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - r*r

	disc := b*b - 4*a*c
	if disc < -Epsilon {
		return nil
	}
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)

	var out []Point
	for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		p := Point{X: p1.X + t*dx, Y: p1.Y + t*dy}
		// A tangent yields the same root twice; keep one.
		if len(out) == 1 && out[0].Near(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// circleCircleIntersections returns the points where two circles meet.
// Concentric, separate, and contained pairs report none; tangent pairs
// report one; crossing pairs report two.
func circleCircleIntersections(c1 Point, r1 float64, c2 Point, r2 float64) []Point {
	d := Distance(c1, c2)
	if d <= Epsilon {
		return nil // concentric
	}
	if d > r1+r2+Epsilon || d < math.Abs(r1-r2)-Epsilon {
		return nil // separate or contained
	}

	// Distance from c1 to the chord midpoint along the center line.
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	ux := (c2.X - c1.X) / d
	uy := (c2.Y - c1.Y) / d
	mx := c1.X + a*ux
	my := c1.Y + a*uy

	if h <= Epsilon {
		return []Point{{X: mx, Y: my}} // tangent
	}
	return []Point{
		{X: mx + h*uy, Y: my - h*ux},
		{X: mx - h*uy, Y: my + h*ux},
	}
}

// shapeIntersections returns every point where the boundaries of a and
// b cross or touch. Dispatches exhaustively over the kind pair: edges
// against edges, edges against circles, circles against circles.
func shapeIntersections(a, b Shape) []Point {
	var out []Point

	aEdges := a.edges()
	bEdges := b.edges()

	for _, ea := range aEdges {
		for _, eb := range bEdges {
			if p, ok := segmentIntersection(ea[0], ea[1], eb[0], eb[1]); ok {
				out = appendUniquePoint(out, p)
			}
		}
	}
	if b.Kind == ShapeCircle {
		for _, ea := range aEdges {
			for _, p := range segmentCircleIntersections(ea[0], ea[1], b.Center, b.Radius) {
				out = appendUniquePoint(out, p)
			}
		}
	}
	if a.Kind == ShapeCircle {
		for _, eb := range bEdges {
			for _, p := range segmentCircleIntersections(eb[0], eb[1], a.Center, a.Radius) {
				out = appendUniquePoint(out, p)
			}
		}
	}
	if a.Kind == ShapeCircle && b.Kind == ShapeCircle {
		for _, p := range circleCircleIntersections(a.Center, a.Radius, b.Center, b.Radius) {
			out = appendUniquePoint(out, p)
		}
	}
	return out
}

// appendUniquePoint appends p unless an Epsilon-equal point is already
// present. Shared rectangle corners otherwise show up once per edge.
func appendUniquePoint(pts []Point, p Point) []Point {
	for _, q := range pts {
		if q.Near(p) {
			return pts
		}
	}
	return append(pts, p)
}
