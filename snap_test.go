package drafter

import (
	"math"
	"testing"
)

func TestResolvePassThrough(t *testing.T) {
	cfg := SnapConfig{} // everything disabled
	raw := Point{123.456, 789.012}
	got := Resolve(raw, cfg, nil, nil)
	if got.Point != raw {
		t.Errorf("Resolve() point = %v, want raw %v", got.Point, raw)
	}
	if got.Source != SnapNone {
		t.Errorf("Resolve() source = %v, want SnapNone", got.Source)
	}
}

func TestResolveGrid(t *testing.T) {
	cfg := SnapConfig{GridEnabled: true, GridSize: 600}

	tests := []struct {
		name string
		raw  Point
		want Point
	}{
		{"rounds down", Point{280, 250}, Point{0, 0}},
		{"rounds up", Point{320, 310}, Point{600, 600}},
		{"independent axes", Point{280, 320}, Point{0, 600}},
		{"negative coordinates", Point{-280, -320}, Point{0, -600}},
		{"exact multiple unchanged", Point{1200, 1800}, Point{1200, 1800}},
		{"halfway rounds away from zero", Point{300, 900}, Point{600, 1200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw, cfg, nil, nil)
			if !got.Point.Near(tt.want) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.raw, got.Point, tt.want)
			}
			if got.Source != SnapGrid {
				t.Errorf("source = %v, want SnapGrid", got.Source)
			}
			// Resolved coordinates are always exact multiples of GridSize.
			if math.Mod(got.Point.X, cfg.GridSize) != 0 || math.Mod(got.Point.Y, cfg.GridSize) != 0 {
				t.Errorf("resolved point %v not on %v grid", got.Point, cfg.GridSize)
			}
		})
	}
}

func TestResolveGridIdempotent(t *testing.T) {
	cfg := SnapConfig{GridEnabled: true, GridSize: 1200}
	aligned := Point{3600, -2400}
	got := Resolve(aligned, cfg, nil, nil)
	if got.Point != aligned {
		t.Errorf("resolving an aligned point moved it: %v -> %v", aligned, got.Point)
	}
}

func TestResolveOrtho(t *testing.T) {
	cfg := SnapConfig{OrthoEnabled: true}
	anchor := Point{0, 0}

	tests := []struct {
		name   string
		raw    Point
		want   Point
		source SnapSource
	}{
		{"mostly horizontal", Point{100, 20}, Point{100, 0}, SnapOrthoHorizontal},
		{"mostly vertical", Point{20, 100}, Point{0, 100}, SnapOrthoVertical},
		{"tie resolves horizontal", Point{50, 50}, Point{50, 0}, SnapOrthoHorizontal},
		{"negative direction", Point{-80, 30}, Point{-80, 0}, SnapOrthoHorizontal},
		{"at anchor", Point{0, 0}, Point{0, 0}, SnapOrthoHorizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw, cfg, nil, &anchor)
			if !got.Point.Near(tt.want) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.raw, got.Point, tt.want)
			}
			if got.Source != tt.source {
				t.Errorf("source = %v, want %v", got.Source, tt.source)
			}
			// The result is always strictly axis-aligned with the anchor.
			if got.Point.X != anchor.X && got.Point.Y != anchor.Y {
				t.Errorf("resolved point %v aligned with neither axis of anchor %v", got.Point, anchor)
			}
		})
	}
}

func TestResolveOrthoRequiresAnchor(t *testing.T) {
	cfg := SnapConfig{OrthoEnabled: true, GridEnabled: true, GridSize: 600}
	// Without an anchor, ortho cannot apply; grid is the next tier.
	got := Resolve(Point{280, 250}, cfg, nil, nil)
	if got.Source != SnapGrid {
		t.Errorf("source = %v, want SnapGrid when anchor is nil", got.Source)
	}
}

func TestResolveObjectSnap(t *testing.T) {
	// The lines cross at (200, 0), which is the midpoint of neither.
	refs := []Shape{
		NewLine(Point{0, 0}, Point{1000, 0}),
		NewLine(Point{200, -800}, Point{200, 200}),
	}
	cfg := SnapConfig{ObjectSnapEnabled: true, SnapRadius: 20}

	tests := []struct {
		name   string
		raw    Point
		want   Point
		source SnapSource
	}{
		{"endpoint pull", Point{8, 5}, Point{0, 0}, SnapObjectEndpoint},
		{"far endpoint", Point{995, -8}, Point{1000, 0}, SnapObjectEndpoint},
		{"intersection pull", Point{205, 8}, Point{200, 0}, SnapObjectIntersection},
		{"intersection from other side", Point{193, -9}, Point{200, 0}, SnapObjectIntersection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw, cfg, refs, nil)
			if !got.Point.Near(tt.want) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.raw, got.Point, tt.want)
			}
			if got.Source != tt.source {
				t.Errorf("source = %v, want %v", got.Source, tt.source)
			}
		})
	}
}

func TestResolveObjectSnapMidpoint(t *testing.T) {
	refs := []Shape{NewLine(Point{0, 0}, Point{100, 0})}
	cfg := SnapConfig{ObjectSnapEnabled: true, SnapRadius: 15}
	got := Resolve(Point{52, 9}, cfg, refs, nil)
	if got.Source != SnapObjectMidpoint {
		t.Fatalf("source = %v, want SnapObjectMidpoint", got.Source)
	}
	if !got.Point.Near(Point{50, 0}) {
		t.Errorf("point = %v, want (50, 0)", got.Point)
	}
}

func TestResolveObjectSnapRadiusCutoff(t *testing.T) {
	refs := []Shape{NewLine(Point{0, 0}, Point{100, 0})}
	cfg := SnapConfig{ObjectSnapEnabled: true, SnapRadius: 5, GridEnabled: true, GridSize: 600}
	// Nearest feature is ~14 units away, outside the radius; falls to grid.
	got := Resolve(Point{10, 10}, cfg, refs, nil)
	if got.Source != SnapGrid {
		t.Errorf("source = %v, want SnapGrid fallthrough", got.Source)
	}
}

func TestResolveObjectSnapTieBreaks(t *testing.T) {
	t.Run("endpoint beats midpoint at equal distance", func(t *testing.T) {
		// Endpoint of one line and midpoint of another, both exactly at (0,0).
		refs := []Shape{
			NewLine(Point{-50, 0}, Point{50, 0}), // midpoint (0,0), index 0
			NewLine(Point{0, 0}, Point{0, 100}),  // endpoint (0,0), index 1
		}
		cfg := SnapConfig{ObjectSnapEnabled: true, SnapRadius: 10}
		got := Resolve(Point{3, 3}, cfg, refs, nil)
		if got.Source != SnapObjectEndpoint {
			t.Errorf("source = %v, want SnapObjectEndpoint to win the tie", got.Source)
		}
	})

	t.Run("lower reference index wins", func(t *testing.T) {
		// Identical endpoints from two references.
		refs := []Shape{
			NewLine(Point{0, 0}, Point{100, 0}),
			NewLine(Point{0, 0}, Point{0, 100}),
		}
		cfg := SnapConfig{ObjectSnapEnabled: true, SnapRadius: 10}
		got := Resolve(Point{2, 2}, cfg, refs, nil)
		if got.Source != SnapObjectEndpoint || !got.Point.Near(Point{0, 0}) {
			t.Errorf("got %+v, want endpoint (0,0)", got)
		}
	})
}

func TestResolvePriorityOrder(t *testing.T) {
	// All tiers active. The endpoint at (5,5) is within radius, so object
	// snap must win over both ortho and grid.
	refs := []Shape{NewLine(Point{5, 5}, Point{500, 500})}
	anchor := Point{0, 0}
	cfg := SnapConfig{
		ObjectSnapEnabled: true, SnapRadius: 20,
		OrthoEnabled: true,
		GridEnabled:  true, GridSize: 600,
	}
	got := Resolve(Point{10, 10}, cfg, refs, &anchor)
	if got.Source != SnapObjectEndpoint {
		t.Fatalf("source = %v, want SnapObjectEndpoint first", got.Source)
	}

	// Outside the object radius, ortho is next.
	got = Resolve(Point{300, 40}, cfg, refs, &anchor)
	if got.Source != SnapOrthoHorizontal {
		t.Fatalf("source = %v, want SnapOrthoHorizontal second", got.Source)
	}

	// With ortho off and nothing in radius, grid applies.
	cfg.OrthoEnabled = false
	got = Resolve(Point{300, 40}, cfg, refs, &anchor)
	if got.Source != SnapGrid {
		t.Fatalf("source = %v, want SnapGrid third", got.Source)
	}
}

func TestResolveDegenerateReferences(t *testing.T) {
	// Zero-length lines still expose their (coincident) endpoints but
	// produce no intersections; resolution must not panic or misbehave.
	refs := []Shape{
		NewLine(Point{50, 50}, Point{50, 50}),
		NewLine(Point{0, 0}, Point{100, 100}),
	}
	cfg := SnapConfig{ObjectSnapEnabled: true, SnapRadius: 10}
	got := Resolve(Point{52, 48}, cfg, refs, nil)
	if got.Source != SnapObjectEndpoint || !got.Point.Near(Point{50, 50}) {
		t.Errorf("got %+v, want endpoint (50,50) from degenerate line", got)
	}
}

func TestResolveDoesNotMutateReferences(t *testing.T) {
	refs := []Shape{NewLine(Point{0, 0}, Point{100, 0})}
	before := refs[0]
	cfg := SnapConfig{ObjectSnapEnabled: true, SnapRadius: 50}
	Resolve(Point{1, 1}, cfg, refs, nil)
	if refs[0] != before {
		t.Error("Resolve mutated the reference slice")
	}
}
