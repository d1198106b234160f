package model

import "strings"

// LineStyle is the stroke pattern of a segment or ellipse
type LineStyle int

const (
	LineStyleSolid LineStyle = iota
	LineStyleDash
)

func (s LineStyle) String() string {
	switch s {
	case LineStyleDash:
		return "Dash"
	default:
		return "Solid"
	}
}

// ParseLineStyle converts a document style name. The second result is false
// for names it does not know.
func ParseLineStyle(s string) (LineStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid", "":
		return LineStyleSolid, true
	case "dash", "dashed":
		return LineStyleDash, true
	default:
		return LineStyleSolid, false
	}
}

// DefaultLineWidth is used when a segment or ellipse does not declare a width.
const DefaultLineWidth = 2

// Segment is a line between two points.
type Segment struct {
	Start      int
	End        int
	Name       string
	Style      LineStyle
	Width      int
	ArrowBegin bool
	ArrowEnd   bool
}

// PointRefs returns the point indices referenced by the segment.
func (s Segment) PointRefs() []int { return []int{s.Start, s.End} }

// Length returns the length of the segment for the given point positions.
func (s Segment) Length(points []Point) float64 {
	return points[s.Start].Distance(points[s.End])
}

// Ellipse is a circle defined by a center point and a point on its
// circumference.
type Ellipse struct {
	Center int
	Radius int
	Name   string
	Style  LineStyle
	Width  int
}

// PointRefs returns the point indices referenced by the ellipse.
func (e Ellipse) PointRefs() []int { return []int{e.Center, e.Radius} }

// RadiusLength returns the radius for the given point positions.
func (e Ellipse) RadiusLength(points []Point) float64 {
	return points[e.Center].Distance(points[e.Radius])
}

// DefaultAngleRadius is the arc radius used when an angle does not declare one.
const DefaultAngleRadius = 40

// Angle is a measured angle at Origin between the rays to Leg1 and Leg2.
type Angle struct {
	Origin        int
	Leg1          int
	Leg2          int
	Signed        bool
	CCW           bool
	Supplementary bool
	Radius        int
	Name          string
}

// PointRefs returns the point indices referenced by the angle.
func (a Angle) PointRefs() []int { return []int{a.Origin, a.Leg1, a.Leg2} }
