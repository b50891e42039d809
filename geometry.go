package drafter

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveRadius is returned by NewCircle when the radius is zero
// or negative. It is the only hard construction rejection in the
// geometry kernel; degenerate lines and rectangles are representable.
var ErrNonPositiveRadius = errors.New("drafter: circle radius must be positive")

// Shape is the single geometric value type for all kinds. A flat struct
// with a Kind tag is used instead of an interface hierarchy so consumers
// dispatch with an exhaustive switch and new kinds are added by
// extending the tag, not by subtyping.
//
// Only the fields for the active Kind are meaningful:
//
//   - ShapeLine: Start, End
//   - ShapeRect: X, Y, Width, Height (always normalized)
//   - ShapeCircle: Center, Radius (always > 0)
//
// Every Shape produced by the constructors below satisfies its kind's
// invariant; there is no way to hold an invalid Shape.
type Shape struct {
	Kind ShapeKind

	// Line fields
	Start, End Point

	// Rect fields: top-left origin, non-negative extents.
	X, Y, Width, Height float64

	// Circle fields
	Center Point
	Radius float64
}

// NewLine creates a line segment from a to b. Always succeeds; a
// zero-length line (a == b) is valid and has Length 0.
func NewLine(a, b Point) Shape {
	return Shape{Kind: ShapeLine, Start: a, End: b}
}

// NewRect creates a rectangle spanning the two corners, normalized to a
// top-left origin with non-negative extents. The result is identical
// regardless of which corner is passed first. Always succeeds; a
// zero-area rectangle is valid.
func NewRect(c1, c2 Point) Shape {
	return Shape{
		Kind:   ShapeRect,
		X:      math.Min(c1.X, c2.X),
		Y:      math.Min(c1.Y, c2.Y),
		Width:  math.Abs(c1.X - c2.X),
		Height: math.Abs(c1.Y - c2.Y),
	}
}

// NewCircle creates a circle. Fails with ErrNonPositiveRadius when
// radius <= 0; a zero-size circle is never representable.
func NewCircle(center Point, radius float64) (Shape, error) {
	if radius <= 0 {
		return Shape{}, fmt.Errorf("%w (got %g)", ErrNonPositiveRadius, radius)
	}
	return Shape{Kind: ShapeCircle, Center: center, Radius: radius}, nil
}

// Length returns the segment length for lines, the perimeter for
// rectangles, and the circumference for circles.
func (s Shape) Length() float64 {
	switch s.Kind {
	case ShapeLine:
		return Distance(s.Start, s.End)
	case ShapeRect:
		return s.Perimeter()
	case ShapeCircle:
		return s.Circumference()
	default:
		return 0
	}
}

// Midpoint returns the segment midpoint for lines, the center for
// rectangles, and the center for circles.
func (s Shape) Midpoint() Point {
	switch s.Kind {
	case ShapeLine:
		return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
	case ShapeRect:
		return Point{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
	case ShapeCircle:
		return s.Center
	default:
		return Point{}
	}
}

// Angle returns the direction of a line in radians, measured from the
// positive X axis, in (-π, π]. Zero for a zero-length line and for
// non-line kinds.
func (s Shape) Angle() float64 {
	if s.Kind != ShapeLine {
		return 0
	}
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// Area returns the enclosed area: Width*Height for rectangles, πr² for
// circles, zero for lines.
func (s Shape) Area() float64 {
	switch s.Kind {
	case ShapeRect:
		return s.Width * s.Height
	case ShapeCircle:
		return math.Pi * s.Radius * s.Radius
	default:
		return 0
	}
}

// Perimeter returns 2(w+h) for rectangles and the circumference for
// circles. For lines it returns the segment length, the sensible
// boundary measure for downstream takeoff totals.
func (s Shape) Perimeter() float64 {
	switch s.Kind {
	case ShapeRect:
		return 2 * (s.Width + s.Height)
	case ShapeCircle:
		return s.Circumference()
	case ShapeLine:
		return Distance(s.Start, s.End)
	default:
		return 0
	}
}

// Circumference returns 2πr for circles and zero for other kinds.
func (s Shape) Circumference() float64 {
	if s.Kind != ShapeCircle {
		return 0
	}
	return 2 * math.Pi * s.Radius
}

// Corners returns the four corners of a rectangle in clockwise order
// starting at the top-left. Nil for other kinds.
func (s Shape) Corners() []Point {
	if s.Kind != ShapeRect {
		return nil
	}
	return []Point{
		{s.X, s.Y},
		{s.X + s.Width, s.Y},
		{s.X + s.Width, s.Y + s.Height},
		{s.X, s.Y + s.Height},
	}
}

// edges returns the boundary segments of a shape usable for
// intersection tests: the segment itself for lines, the four sides for
// rectangles. Circles have no straight edges and return nil.
func (s Shape) edges() [][2]Point {
	switch s.Kind {
	case ShapeLine:
		return [][2]Point{{s.Start, s.End}}
	case ShapeRect:
		c := s.Corners()
		return [][2]Point{
			{c[0], c[1]},
			{c[1], c[2]},
			{c[2], c[3]},
			{c[3], c[0]},
		}
	default:
		return nil
	}
}

// endpointFeatures returns the endpoint-class snap features of a shape:
// the two ends of a line, the four corners of a rectangle. Circles have
// no endpoints.
func (s Shape) endpointFeatures() []Point {
	switch s.Kind {
	case ShapeLine:
		return []Point{s.Start, s.End}
	case ShapeRect:
		return s.Corners()
	default:
		return nil
	}
}

// midpointFeatures returns the midpoint-class snap features of a shape:
// the segment midpoint of a line, the four edge midpoints plus the
// center of a rectangle, and the center of a circle.
func (s Shape) midpointFeatures() []Point {
	switch s.Kind {
	case ShapeLine:
		return []Point{s.Midpoint()}
	case ShapeRect:
		c := s.Corners()
		return []Point{
			{(c[0].X + c[1].X) / 2, c[0].Y},
			{c[1].X, (c[1].Y + c[2].Y) / 2},
			{(c[3].X + c[2].X) / 2, c[2].Y},
			{c[0].X, (c[0].Y + c[3].Y) / 2},
			s.Midpoint(),
		}
	case ShapeCircle:
		return []Point{s.Center}
	default:
		return nil
	}
}
