package drafter

import "math"

// Epsilon is the tolerance, in document units (millimeters), used for
// coordinate equality checks throughout the engine.
const Epsilon = 1e-6

// Common ceiling-grid module sizes in millimeters.
const (
	GridFine   = 600.0
	GridCoarse = 1200.0
)

// Point is a position in document units (millimeters). Immutable value.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Near reports whether p and q coincide within Epsilon on both axes.
func (p Point) Near(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// ShapeKind distinguishes the geometric variant stored in a Shape.
type ShapeKind uint8

const (
	ShapeLine   ShapeKind = iota // two-point segment
	ShapeRect                    // axis-aligned, normalized rectangle
	ShapeCircle                  // center + positive radius
)

// String returns the lowercase name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ToolKind identifies a drawing tool.
type ToolKind uint8

const (
	ToolLine   ToolKind = iota // two-point segment tool
	ToolRect                   // corner-to-corner rectangle tool
	ToolCircle                 // center-to-rim circle tool
)

// String returns the lowercase name of the tool kind.
func (k ToolKind) String() string {
	switch k {
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Phase is the gesture state of a tool. A tool is always in exactly one
// phase; commit, rejection, and cancellation all return it to PhaseIdle
// so the next pointer press starts a fresh session.
type Phase uint8

const (
	PhaseIdle       Phase = iota // no gesture in progress
	PhaseAnchored                // first point captured, no movement yet
	PhasePreviewing              // live preview tracking the pointer
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnchored:
		return "anchored"
	case PhasePreviewing:
		return "previewing"
	default:
		return "unknown"
	}
}

// SnapSource identifies which rule (if any) adjusted a resolved point.
type SnapSource uint8

const (
	SnapNone               SnapSource = iota // point passed through unchanged
	SnapGrid                                 // rounded to the nearest grid multiple
	SnapOrthoHorizontal                      // projected onto the horizontal ray from the anchor
	SnapOrthoVertical                        // projected onto the vertical ray from the anchor
	SnapObjectEndpoint                       // pulled to an endpoint/corner of existing geometry
	SnapObjectMidpoint                       // pulled to a midpoint/center of existing geometry
	SnapObjectIntersection                   // pulled to an intersection of existing geometry
)

// String returns a short name for the snap source.
func (s SnapSource) String() string {
	switch s {
	case SnapNone:
		return "none"
	case SnapGrid:
		return "grid"
	case SnapOrthoHorizontal:
		return "ortho-h"
	case SnapOrthoVertical:
		return "ortho-v"
	case SnapObjectEndpoint:
		return "endpoint"
	case SnapObjectMidpoint:
		return "midpoint"
	case SnapObjectIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// IsObject reports whether the source is one of the object-snap kinds.
func (s SnapSource) IsObject() bool {
	return s == SnapObjectEndpoint || s == SnapObjectMidpoint || s == SnapObjectIntersection
}
