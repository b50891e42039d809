package drafter

import (
	"errors"
	"fmt"
)

// ErrUnknownTool is returned by Registry.Activate for a kind that was
// never registered.
var ErrUnknownTool = errors.New("drafter: unknown tool")

// Registry maps tool kinds to their state machines and routes pointer
// events to the active one. Switching tools cancels any gesture in
// progress on the outgoing tool, so a half-drawn shape never leaks
// across a tool change.
type Registry struct {
	tools  map[ToolKind]*Tool
	active *Tool
}

// NewRegistry creates an empty registry with no active tool.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[ToolKind]*Tool)}
}

// Register adds a tool, replacing any previous tool of the same kind.
// The first registered tool becomes active.
func (r *Registry) Register(t *Tool) {
	r.tools[t.Kind] = t
	if r.active == nil {
		r.active = t
	}
}

// Activate makes the tool of the given kind active, cancelling any
// in-progress gesture on the previously active tool first.
func (r *Registry) Activate(kind ToolKind) error {
	t, ok := r.tools[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, kind)
	}
	if r.active != nil && r.active != t {
		r.active.HandleCancel()
	}
	r.active = t
	return nil
}

// Active returns the active tool, or nil when none is registered.
func (r *Registry) Active() *Tool {
	return r.active
}

// HandlePointerDown routes a press to the active tool.
func (r *Registry) HandlePointerDown(p Point) ToolResult {
	if r.active == nil {
		return ToolResult{}
	}
	return r.active.HandlePointerDown(p)
}

// HandlePointerMove routes a move to the active tool.
func (r *Registry) HandlePointerMove(p Point) ToolResult {
	if r.active == nil {
		return ToolResult{}
	}
	return r.active.HandlePointerMove(p)
}

// HandlePointerUp routes a release to the active tool.
func (r *Registry) HandlePointerUp(p Point) ToolResult {
	if r.active == nil {
		return ToolResult{}
	}
	return r.active.HandlePointerUp(p)
}

// HandleCancel routes a cancel signal to the active tool.
func (r *Registry) HandleCancel() ToolResult {
	if r.active == nil {
		return ToolResult{}
	}
	return r.active.HandleCancel()
}
