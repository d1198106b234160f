package model

import "image"

// Template is the static definition of a custom posture tool: points plus
// the shapes, handles and hit zones defined over them.
type Template struct {
	Name string
	Icon image.Image // nil when the document has none

	// Points is sized by the document's point count. Every other element
	// refers to a point by its index here.
	Points []Point

	Segments []Segment
	Ellipses []Ellipse
	Angles   []Angle
	Handles  []Handle
	HitZones []HitZone
}

// NewTemplate creates a new empty template
func NewTemplate() *Template {
	return &Template{}
}

// PointCount returns the number of points
func (t *Template) PointCount() int {
	return len(t.Points)
}

// AddPoints appends n zero-valued points
func (t *Template) AddPoints(n int) {
	for i := 0; i < n; i++ {
		t.Points = append(t.Points, Point{})
	}
}

// Empty returns true if the template holds neither geometry nor metadata
func (t *Template) Empty() bool {
	return len(t.Points) == 0 &&
		len(t.Segments) == 0 &&
		len(t.Ellipses) == 0 &&
		len(t.Angles) == 0 &&
		len(t.Handles) == 0 &&
		len(t.HitZones) == 0 &&
		t.Name == "" &&
		t.Icon == nil
}

// HasGeometry returns true if any point or shape was defined
func (t *Template) HasGeometry() bool {
	return len(t.Points) > 0 ||
		len(t.Segments) > 0 ||
		len(t.Ellipses) > 0 ||
		len(t.Angles) > 0 ||
		len(t.Handles) > 0 ||
		len(t.HitZones) > 0
}

// Bounds returns the bounding box of all points
func (t *Template) Bounds() BBox {
	return NewBBoxFromPoints(t.Points...)
}

// HitTest returns the index of the first hit zone containing p, or -1.
func (t *Template) HitTest(p Point) int {
	for i, zone := range t.HitZones {
		if zone.Contains(t.Points, p) {
			return i
		}
	}
	return -1
}

// PointUpdate assigns Value to the point at Index.
type PointUpdate struct {
	Index int
	Value Point
}

// ApplyUpdates writes updates into t.Points. Updates whose index falls
// outside the point slice are not applied and are returned instead.
func (t *Template) ApplyUpdates(updates []PointUpdate) (rejected []PointUpdate) {
	for _, u := range updates {
		if u.Index < 0 || u.Index >= len(t.Points) {
			rejected = append(rejected, u)
			continue
		}
		t.Points[u.Index] = u.Value
	}
	return rejected
}
