// Package drafter is the drawing-tool engine for a 2D building-layout
// editor: it turns raw, noisy pointer gestures into precise, validated
// geometry, optionally snapped to a grid, an axis, or existing shapes.
//
// The engine has three layers, leaves first: the geometry kernel
// (immutable [Shape] values with derived metrics), the snap resolver
// ([Resolve], a pure function combining object, ortho, and grid
// snapping deterministically), and the tool state machine ([Tool],
// which drives a gesture from anchor to committed shape or
// cancellation). A thin [Registry] routes pointer events to the active
// tool.
//
// # Quick start
//
// The simplest way to get an interactive surface is [Run], which wires
// a [Canvas] to an ebiten window:
//
//	cfg := drafter.DefaultSnapConfig()
//	doc := drafter.NewDocument()
//	reg := drafter.NewRegistry()
//	for _, kind := range []drafter.ToolKind{drafter.ToolLine, drafter.ToolRect, drafter.ToolCircle} {
//		reg.Register(drafter.NewTool(kind, &cfg, doc, doc))
//	}
//	canvas := drafter.NewCanvas(reg, doc, &cfg, 640, 480)
//	drafter.Run(canvas, drafter.RunConfig{Title: "Planner"})
//
// For headless use (tests, scripted layout), call the tool handlers
// directly or replay a JSON [GestureScript]; no rendering surface is
// required.
//
// # Units and validity
//
// All coordinates are in document units (millimeters). Every stored
// shape satisfies its kind's invariant by construction: rectangles are
// always normalized, circles always have positive radius, and the one
// hard rejection ([ErrNonPositiveRadius]) surfaces as "no shape
// created" rather than an error escaping the tool boundary. Degenerate
// zero-length lines and zero-area rectangles are accepted and commit
// silently.
//
// # Concurrency
//
// The engine is single-threaded and event-driven: one event is
// processed to completion before the next, on the goroutine that owns
// the application's input loop. Snap configuration is shared and
// user-toggled; the engine reads it per sample and never writes it.
package drafter
