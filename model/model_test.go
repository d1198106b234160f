package model

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBoxFromPoints(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want BBox
	}{
		{"none", nil, BBox{}},
		{"single", []Point{{10, 10}}, BBox{10, 10, 0, 0}},
		{"two", []Point{{10, 20}, {50, 70}}, BBox{10, 20, 40, 50}},
		{"reversed", []Point{{50, 70}, {10, 20}}, BBox{10, 20, 40, 50}},
		{"three", []Point{{0, 5}, {-5, 0}, {5, -5}}, BBox{-5, -5, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromPoints(tt.pts...)
			if got != tt.want {
				t.Errorf("NewBBoxFromPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxEdgesAndContains(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)

	if bbox.Right() != 110 {
		t.Errorf("Right() = %v, want 110", bbox.Right())
	}
	if bbox.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", bbox.Bottom())
	}
	if c := bbox.Center(); c != (Point{60, 45}) {
		t.Errorf("Center() = %+v, want {60 45}", c)
	}
	if !bbox.Contains(Point{10, 20}) {
		t.Error("expected corner to be contained")
	}
	if bbox.Contains(Point{111, 30}) {
		t.Error("expected point right of box to be outside")
	}
}

func TestBBoxUnionExpand(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 10, 10)

	if got, want := a.Union(b), NewBBox(0, 0, 15, 15); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got, want := a.Expand(2), NewBBox(-2, -2, 14, 14); got != want {
		t.Errorf("Expand() = %+v, want %+v", got, want)
	}
	if !(BBox{}).IsEmpty() {
		t.Error("zero BBox should be empty")
	}
}

// ============================================================================
// Enum Tests
// ============================================================================

func TestParseLineStyle(t *testing.T) {
	tests := []struct {
		in     string
		want   LineStyle
		wantOK bool
	}{
		{"Solid", LineStyleSolid, true},
		{"", LineStyleSolid, true},
		{"dash", LineStyleDash, true},
		{"Dashed", LineStyleDash, true},
		{"dotted", LineStyleSolid, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLineStyle(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLineStyle(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseConstraintKindRoundTrip(t *testing.T) {
	for kind, name := range constraintNames {
		got, ok := ParseConstraintKind(name)
		if !ok || got != kind {
			t.Errorf("ParseConstraintKind(%q) = %v, %v; want %v", name, got, ok, kind)
		}
		if kind.String() != name {
			t.Errorf("%d.String() = %q, want %q", kind, kind.String(), name)
		}
	}
	if _, ok := ParseConstraintKind("Teleport"); ok {
		t.Error("expected unknown constraint kind to be rejected")
	}
}

func TestParseHandleTypeAndPosition(t *testing.T) {
	if ht, ok := ParseHandleType("segment"); !ok || ht != HandleTypeSegment {
		t.Errorf("ParseHandleType(segment) = %v, %v", ht, ok)
	}
	if _, ok := ParseHandleType("Spline"); ok {
		t.Error("expected unknown handle type to be rejected")
	}
	if lp, ok := ParseLinePosition("AfterEnd"); !ok || lp != LinePositionAfterEnd {
		t.Errorf("ParseLinePosition(AfterEnd) = %v, %v", lp, ok)
	}
}

// ============================================================================
// Element Tests
// ============================================================================

func TestElementMeasures(t *testing.T) {
	points := []Point{{0, 0}, {3, 4}, {0, 10}}

	seg := Segment{Start: 0, End: 1}
	if seg.Length(points) != 5 {
		t.Errorf("Segment.Length() = %v, want 5", seg.Length(points))
	}

	ell := Ellipse{Center: 2, Radius: 0}
	if ell.RadiusLength(points) != 10 {
		t.Errorf("Ellipse.RadiusLength() = %v, want 10", ell.RadiusLength(points))
	}

	ang := Angle{Origin: 0, Leg1: 1, Leg2: 2}
	if diff := cmp.Diff([]int{0, 1, 2}, ang.PointRefs()); diff != "" {
		t.Errorf("Angle.PointRefs() mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlePointRefs(t *testing.T) {
	h := Handle{
		Type:      HandleTypePoint,
		Reference: 3,
		Constraint: &Constraint{
			Kind:   ConstraintLineSlide,
			Points: []int{0, 1},
		},
		Impacts: []Impact{
			{Kind: ImpactAlign, Points: []int{4, 5}},
			{Kind: ImpactPivot, Points: []int{2}},
		},
	}

	want := []int{3, 0, 1, 4, 5, 2}
	if diff := cmp.Diff(want, h.PointRefs()); diff != "" {
		t.Errorf("PointRefs() mismatch (-want +got):\n%s", diff)
	}

	seg := Handle{Type: HandleTypeSegment, Reference: 7}
	if refs := seg.PointRefs(); len(refs) != 0 {
		t.Errorf("segment handle PointRefs() = %v, want none", refs)
	}
}

// ============================================================================
// HitZone Tests
// ============================================================================

func TestPolygonContains(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {20, 20}}
	square := &Polygon{Points: []int{0, 1, 2, 3}}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{5, 5}, true},
		{"outside right", Point{15, 5}, false},
		{"outside above", Point{5, -1}, false},
		{"far away", Point{20, 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.Contains(points, tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if square.Kind() != HitZonePolygon || square.Kind().String() != "Polygon" {
		t.Errorf("Kind() = %v", square.Kind())
	}

	line := &Polygon{Points: []int{0, 1}}
	if line.Contains(points, Point{5, 0}) {
		t.Error("degenerate polygon should not contain anything")
	}
}

// ============================================================================
// Template Tests
// ============================================================================

func TestTemplateApplyUpdates(t *testing.T) {
	tpl := NewTemplate()
	tpl.AddPoints(3)

	rejected := tpl.ApplyUpdates([]PointUpdate{
		{Index: 0, Value: Point{1, 2}},
		{Index: 1, Value: Point{3, 4}},
		{Index: 5, Value: Point{9, 9}},
		{Index: -1, Value: Point{8, 8}},
	})

	want := []Point{{1, 2}, {3, 4}, {0, 0}}
	if diff := cmp.Diff(want, tpl.Points); diff != "" {
		t.Errorf("Points mismatch (-want +got):\n%s", diff)
	}
	if len(rejected) != 2 {
		t.Errorf("len(rejected) = %d, want 2", len(rejected))
	}
	if tpl.PointCount() != 3 {
		t.Errorf("PointCount() = %d, want 3", tpl.PointCount())
	}
}

func TestTemplateEmptyAndHitTest(t *testing.T) {
	tpl := NewTemplate()
	if !tpl.Empty() || tpl.HasGeometry() {
		t.Fatal("new template should be empty")
	}

	tpl.Points = []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tpl.HitZones = []HitZone{&Polygon{Points: []int{0, 1, 2, 3}}}

	if tpl.Empty() || !tpl.HasGeometry() {
		t.Error("template with points should not be empty")
	}
	if got := tpl.HitTest(Point{5, 5}); got != 0 {
		t.Errorf("HitTest(inside) = %d, want 0", got)
	}
	if got := tpl.HitTest(Point{50, 5}); got != -1 {
		t.Errorf("HitTest(outside) = %d, want -1", got)
	}
	if got, want := tpl.Bounds(), NewBBox(0, 0, 10, 10); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}
