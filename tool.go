package drafter

import "time"

// ReferenceSource provides a fresh snapshot of the committed shapes for
// object-snap candidate generation. The engine re-reads it on every
// pointer sample rather than caching across a gesture, so concurrent
// document edits (a shape deleted mid-gesture) are tolerated: a feature
// that no longer exists simply stops producing candidates.
type ReferenceSource interface {
	Snapshot() []Shape
}

// CommitSink receives each finalized shape exactly once, at commit.
// The engine hands shapes off immediately and retains nothing.
type CommitSink interface {
	CommitShape(Shape)
}

// ToolEventType identifies a tool lifecycle event.
type ToolEventType uint8

const (
	ToolEventCommit ToolEventType = iota // a shape was finalized and handed to the sink
	ToolEventReject                      // final construction failed; nothing committed
	ToolEventCancel                      // gesture discarded by explicit cancel
)

// ToolEvent carries tool lifecycle data for an optional observer.
type ToolEvent struct {
	Type  ToolEventType
	Tool  ToolKind
	Shape *Shape // set for ToolEventCommit
	Err   error  // set for ToolEventReject
}

// EventSink observes tool lifecycle events. Optional; when set on a
// Tool it is invoked after the commit sink.
type EventSink interface {
	EmitToolEvent(ToolEvent)
}

// TimingFunc receives the duration of one engine operation ("down",
// "move", "up"). Purely observational; it never affects control flow.
type TimingFunc func(op string, d time.Duration)

// ToolResult is the outcome of one event-handling call. At most one of
// Committed and Rejected is set; Preview is set while a gesture has a
// constructible live shape.
type ToolResult struct {
	Preview   *Shape
	Committed *Shape
	Rejected  error
	Resolved  Point      // snapped position used for this event
	Snap      SnapSource // rule that produced Resolved
}

// session is the per-gesture state: created at pointer down, destroyed
// at commit, rejection, or cancel. Exactly one gesture may be in
// progress per Tool at a time.
type session struct {
	phase   Phase
	anchor  Point
	preview *Shape
}

// Tool is one drawing-tool state machine: Idle → Anchored → Previewing,
// returning to Idle after every commit, rejection, or cancellation.
// Line, rectangle, and circle tools share the skeleton and differ only
// in how the final shape is constructed from (anchor, end).
//
// A Tool is single-threaded: it assumes events arrive in order on one
// goroutine, matching the event-loop model of the host application.
type Tool struct {
	Kind   ToolKind
	Config *SnapConfig     // shared, user-toggled; read per sample, never written
	Refs   ReferenceSource // may be nil (no object-snap references)
	Sink   CommitSink      // may be nil (previews only)
	Events EventSink       // optional observer
	Timing TimingFunc      // optional timing side-channel

	sess session
}

// NewTool creates a tool of the given kind. cfg must not be nil; refs
// and sink may be.
func NewTool(kind ToolKind, cfg *SnapConfig, refs ReferenceSource, sink CommitSink) *Tool {
	return &Tool{Kind: kind, Config: cfg, Refs: refs, Sink: sink}
}

// Phase returns the tool's current gesture phase.
func (t *Tool) Phase() Phase {
	return t.sess.phase
}

// Preview returns the current live preview shape, or nil when the
// gesture has none (idle, just anchored, or momentarily degenerate).
func (t *Tool) Preview() *Shape {
	return t.sess.preview
}

func (t *Tool) snapshot() []Shape {
	if t.Refs == nil {
		return nil
	}
	return t.Refs.Snapshot()
}

func (t *Tool) emit(ev ToolEvent) {
	if t.Events != nil {
		t.Events.EmitToolEvent(ev)
	}
}

func (t *Tool) timed(op string, start time.Time) {
	if t.Timing != nil {
		t.Timing(op, time.Since(start))
	}
}

// HandlePointerDown starts a gesture: the point is resolved (without an
// anchor) and captured as the session anchor. A press while a gesture
// is already in progress is an input-ordering violation and is ignored.
func (t *Tool) HandlePointerDown(p Point) ToolResult {
	start := time.Now()
	defer t.timed("down", start)

	if t.sess.phase != PhaseIdle {
		return ToolResult{Preview: t.sess.preview}
	}

	res := Resolve(p, *t.Config, t.snapshot(), nil)
	t.sess = session{phase: PhaseAnchored, anchor: res.Point}
	return ToolResult{Resolved: res.Point, Snap: res.Source}
}

// HandlePointerMove advances a gesture: the point is resolved against
// the session anchor and a live preview is rebuilt. A momentarily
// unconstructible preview (zero-radius circle) withholds the preview
// without error. Moves with no gesture in progress are hover motion and
// produce nothing.
func (t *Tool) HandlePointerMove(p Point) ToolResult {
	start := time.Now()
	defer t.timed("move", start)

	if t.sess.phase == PhaseIdle {
		return ToolResult{}
	}

	res := Resolve(p, *t.Config, t.snapshot(), &t.sess.anchor)
	t.sess.phase = PhasePreviewing
	if shape, err := t.buildShape(t.sess.anchor, res.Point); err == nil {
		t.sess.preview = &shape
	} else {
		t.sess.preview = nil
	}
	return ToolResult{Preview: t.sess.preview, Resolved: res.Point, Snap: res.Source}
}

// HandlePointerUp finishes a gesture: the final point is resolved and
// the shape constructed. On success the shape is handed to the sink and
// the tool returns to idle; on construction failure (non-positive
// circle radius) nothing is committed, a rejection is reported, and the
// tool is immediately ready for a new press.
func (t *Tool) HandlePointerUp(p Point) ToolResult {
	start := time.Now()
	defer t.timed("up", start)

	if t.sess.phase == PhaseIdle {
		return ToolResult{}
	}

	res := Resolve(p, *t.Config, t.snapshot(), &t.sess.anchor)
	shape, err := t.buildShape(t.sess.anchor, res.Point)
	t.sess = session{}

	if err != nil {
		logger().Warn("commit rejected", "tool", t.Kind.String(), "err", err)
		t.emit(ToolEvent{Type: ToolEventReject, Tool: t.Kind, Err: err})
		return ToolResult{Rejected: err, Resolved: res.Point, Snap: res.Source}
	}

	if t.Sink != nil {
		t.Sink.CommitShape(shape)
	}
	logger().Info("shape committed", "tool", t.Kind.String(), "kind", shape.Kind.String())
	t.emit(ToolEvent{Type: ToolEventCommit, Tool: t.Kind, Shape: &shape})
	return ToolResult{Committed: &shape, Resolved: res.Point, Snap: res.Source}
}

// HandleCancel discards any gesture in progress without side effects:
// no shape is committed, the preview vanishes, and the next press
// starts a fresh session. Cancel while idle is a no-op.
func (t *Tool) HandleCancel() ToolResult {
	if t.sess.phase == PhaseIdle {
		return ToolResult{}
	}
	t.sess = session{}
	t.emit(ToolEvent{Type: ToolEventCancel, Tool: t.Kind})
	return ToolResult{}
}

// buildShape constructs the tool's shape from the anchor and the
// resolved end point. Only the circle can fail.
func (t *Tool) buildShape(anchor, end Point) (Shape, error) {
	switch t.Kind {
	case ToolLine:
		return NewLine(anchor, end), nil
	case ToolRect:
		return NewRect(anchor, end), nil
	case ToolCircle:
		return NewCircle(anchor, Distance(anchor, end))
	default:
		return NewLine(anchor, end), nil
	}
}
