package drafter

import "math"

// SnapConfig controls how raw pointer positions are adjusted. It is
// owned by the application (toggled by the user, never by the engine)
// and passed explicitly into every Resolve call so the resolver stays a
// pure function.
type SnapConfig struct {
	GridEnabled       bool
	GridSize          float64 // grid module in document units, e.g. 600 or 1200
	OrthoEnabled      bool
	ObjectSnapEnabled bool
	SnapRadius        float64 // max pull distance for object snap
}

// DefaultSnapConfig returns the configuration used when no settings
// file is present: 600 mm grid on, object snap on with a 10 mm pull
// radius, ortho off.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		GridEnabled:       true,
		GridSize:          GridFine,
		ObjectSnapEnabled: true,
		SnapRadius:        10,
	}
}

// SnapResult is the outcome of one resolution: the possibly adjusted
// point and the rule that adjusted it.
type SnapResult struct {
	Point  Point
	Source SnapSource
}

// candidateKind orders object-snap candidates when distances tie:
// endpoints beat midpoints beat intersections.
type candidateKind uint8

const (
	candEndpoint candidateKind = iota
	candMidpoint
	candIntersection
)

func (k candidateKind) source() SnapSource {
	switch k {
	case candEndpoint:
		return SnapObjectEndpoint
	case candMidpoint:
		return SnapObjectMidpoint
	default:
		return SnapObjectIntersection
	}
}

type snapCandidate struct {
	point    Point
	kind     candidateKind
	refIndex int // index of the contributing reference (lower of the pair for intersections)
}

// Resolve adjusts a raw pointer position according to the active snap
// configuration. Exactly one rule applies per call, in priority order:
// object snap, then ortho (relative to anchor, when one exists), then
// grid, then pass-through. The priority mirrors what a drafting user
// expects: a feature of existing geometry is the most specific intent
// signal, an axis constraint the next, the grid the least.
//
// refs is a read-only snapshot of committed geometry; Resolve never
// mutates it and holds no state between calls, so it is safe to call
// once per pointer sample. anchor is the gesture's first point, or nil
// before one exists.
func Resolve(raw Point, cfg SnapConfig, refs []Shape, anchor *Point) SnapResult {
	if cfg.ObjectSnapEnabled && cfg.SnapRadius > 0 {
		if best, ok := nearestObjectCandidate(raw, cfg.SnapRadius, refs); ok {
			logger().Debug("object snap",
				"source", best.kind.source().String(),
				"ref", best.refIndex,
				"x", best.point.X, "y", best.point.Y)
			return SnapResult{Point: best.point, Source: best.kind.source()}
		}
	}

	if cfg.OrthoEnabled && anchor != nil {
		return resolveOrtho(raw, *anchor)
	}

	if cfg.GridEnabled && cfg.GridSize > 0 {
		return SnapResult{
			Point: Point{
				X: math.Round(raw.X/cfg.GridSize) * cfg.GridSize,
				Y: math.Round(raw.Y/cfg.GridSize) * cfg.GridSize,
			},
			Source: SnapGrid,
		}
	}

	return SnapResult{Point: raw, Source: SnapNone}
}

// resolveOrtho projects raw onto the axis-aligned ray from anchor with
// the smaller angular deviation: the smaller of |Δx|, |Δy| is zeroed.
// A tie resolves to horizontal. The result always satisfies
// y == anchor.y (horizontal) or x == anchor.x (vertical).
func resolveOrtho(raw, anchor Point) SnapResult {
	dx := raw.X - anchor.X
	dy := raw.Y - anchor.Y
	if math.Abs(dy) <= math.Abs(dx) {
		return SnapResult{Point: Point{X: raw.X, Y: anchor.Y}, Source: SnapOrthoHorizontal}
	}
	return SnapResult{Point: Point{X: anchor.X, Y: raw.Y}, Source: SnapOrthoVertical}
}

// nearestObjectCandidate scans the reference shapes for endpoint,
// midpoint, and pairwise-intersection features within radius of raw and
// returns the best one. Distance decides; ties fall to candidate kind
// (endpoint > midpoint > intersection), then to the lower reference
// index, so resolution is deterministic for identical input.
//
// The scan is O(n) over features plus O(n²) over reference pairs for
// intersections; n is the count of visible shapes, small by design.
func nearestObjectCandidate(raw Point, radius float64, refs []Shape) (snapCandidate, bool) {
	var best snapCandidate
	bestDist := math.Inf(1)
	found := false

	consider := func(c snapCandidate) {
		d := Distance(raw, c.point)
		if d > radius {
			return
		}
		if !found || better(c, d, best, bestDist) {
			best = c
			bestDist = d
			found = true
		}
	}

	for i, ref := range refs {
		for _, p := range ref.endpointFeatures() {
			consider(snapCandidate{point: p, kind: candEndpoint, refIndex: i})
		}
		for _, p := range ref.midpointFeatures() {
			consider(snapCandidate{point: p, kind: candMidpoint, refIndex: i})
		}
	}
	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			for _, p := range shapeIntersections(refs[i], refs[j]) {
				consider(snapCandidate{point: p, kind: candIntersection, refIndex: i})
			}
		}
	}
	return best, found
}

// better reports whether candidate c at distance d beats the current
// best. Distances within Epsilon are treated as equal so the kind and
// index tie-breaks stay deterministic under float noise.
func better(c snapCandidate, d float64, best snapCandidate, bestDist float64) bool {
	if d < bestDist-Epsilon {
		return true
	}
	if d > bestDist+Epsilon {
		return false
	}
	if c.kind != best.kind {
		return c.kind < best.kind
	}
	return c.refIndex < best.refIndex
}
