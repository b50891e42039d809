package drafter

import "github.com/google/uuid"

// Entity is a committed shape with a stable identity, as stored in a
// Document and referenced by downstream consumers (costing, export,
// undo history).
type Entity struct {
	ID    uuid.UUID
	Shape Shape
}

// Document is the reference implementation of the engine's two
// collaborator interfaces: it accepts committed shapes (CommitSink) and
// serves read-only snapshots back to the snap resolver
// (ReferenceSource). Like the rest of the engine it is single-threaded
// and owned by the application's event loop.
type Document struct {
	entities []Entity
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CommitShape stores a finalized shape under a fresh UUID. Implements
// CommitSink.
func (d *Document) CommitShape(s Shape) {
	d.entities = append(d.entities, Entity{ID: uuid.New(), Shape: s})
}

// Snapshot returns a fresh copy of the committed shapes. Implements
// ReferenceSource; callers may hold the slice across an edit without
// observing it change underneath them.
func (d *Document) Snapshot() []Shape {
	out := make([]Shape, len(d.entities))
	for i, e := range d.entities {
		out[i] = e.Shape
	}
	return out
}

// Entities returns a copy of the committed entities in commit order.
func (d *Document) Entities() []Entity {
	out := make([]Entity, len(d.entities))
	copy(out, d.entities)
	return out
}

// Len returns the number of committed entities.
func (d *Document) Len() int {
	return len(d.entities)
}

// Remove deletes the entity with the given ID and reports whether it
// existed. Commit order of the remaining entities is preserved.
func (d *Document) Remove(id uuid.UUID) bool {
	for i, e := range d.entities {
		if e.ID == id {
			d.entities = append(d.entities[:i], d.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Totals are the aggregate takeoff metrics over a document, the
// quantities a costing or export step consumes.
type Totals struct {
	Area       float64 // summed rectangle and circle areas
	Perimeter  float64 // summed rectangle perimeters and circle circumferences
	LineLength float64 // summed line segment lengths
	Lines      int
	Rects      int
	Circles    int
}

// Totals computes aggregate metrics over all committed entities.
func (d *Document) Totals() Totals {
	var t Totals
	for _, e := range d.entities {
		switch e.Shape.Kind {
		case ShapeLine:
			t.Lines++
			t.LineLength += e.Shape.Length()
		case ShapeRect:
			t.Rects++
			t.Area += e.Shape.Area()
			t.Perimeter += e.Shape.Perimeter()
		case ShapeCircle:
			t.Circles++
			t.Area += e.Shape.Area()
			t.Perimeter += e.Shape.Circumference()
		}
	}
	return t
}
