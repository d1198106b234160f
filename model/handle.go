package model

import "strings"

// HandleType tells what a handle's Reference indexes into
type HandleType int

const (
	HandleTypePoint HandleType = iota
	HandleTypeSegment
	HandleTypeEllipse
)

func (t HandleType) String() string {
	switch t {
	case HandleTypeSegment:
		return "Segment"
	case HandleTypeEllipse:
		return "Ellipse"
	default:
		return "Point"
	}
}

// ParseHandleType converts a document handle type name.
func ParseHandleType(s string) (HandleType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point", "":
		return HandleTypePoint, true
	case "segment":
		return HandleTypeSegment, true
	case "ellipse":
		return HandleTypeEllipse, true
	default:
		return HandleTypePoint, false
	}
}

// ConstraintKind enumerates the movement restrictions a handle can carry
type ConstraintKind int

const (
	ConstraintNone ConstraintKind = iota
	ConstraintLineSlide
	ConstraintVerticalSlide
	ConstraintHorizontalSlide
	ConstraintDistanceToPoint
	ConstraintRotationSteps
)

var constraintNames = map[ConstraintKind]string{
	ConstraintNone:            "None",
	ConstraintLineSlide:       "LineSlide",
	ConstraintVerticalSlide:   "VerticalSlide",
	ConstraintHorizontalSlide: "HorizontalSlide",
	ConstraintDistanceToPoint: "DistanceToPoint",
	ConstraintRotationSteps:   "RotationSteps",
}

func (k ConstraintKind) String() string {
	if name, ok := constraintNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseConstraintKind converts a document constraint type name.
func ParseConstraintKind(s string) (ConstraintKind, bool) {
	for k, name := range constraintNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return k, true
		}
	}
	return ConstraintNone, false
}

// LinePosition restricts where on a line a LineSlide handle may go
type LinePosition int

const (
	LinePositionAny LinePosition = iota
	LinePositionInbetween
	LinePositionBeforeStart
	LinePositionAfterEnd
)

func (p LinePosition) String() string {
	switch p {
	case LinePositionInbetween:
		return "Inbetween"
	case LinePositionBeforeStart:
		return "BeforeStart"
	case LinePositionAfterEnd:
		return "AfterEnd"
	default:
		return "Any"
	}
}

// ParseLinePosition converts a document line position name.
func ParseLinePosition(s string) (LinePosition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "":
		return LinePositionAny, true
	case "inbetween":
		return LinePositionInbetween, true
	case "beforestart":
		return LinePositionBeforeStart, true
	case "afterend":
		return LinePositionAfterEnd, true
	default:
		return LinePositionAny, false
	}
}

// Constraint restricts how a handle may be dragged.
//
// Points holds the referenced point indices in kind-specific order:
//   - LineSlide: line start, line end
//   - DistanceToPoint: the anchor point
//   - RotationSteps: rotation origin, reference leg
type Constraint struct {
	Kind     ConstraintKind
	Points   []int
	Position LinePosition
	Step     float64 // degrees, RotationSteps only
}

// ImpactKind enumerates the side effects moving a handle has on other points
type ImpactKind int

const (
	ImpactAlign ImpactKind = iota
	ImpactVerticalAlign
	ImpactHorizontalAlign
	ImpactPivot
	ImpactKeepAngle
)

var impactNames = map[ImpactKind]string{
	ImpactAlign:           "Align",
	ImpactVerticalAlign:   "VerticalAlign",
	ImpactHorizontalAlign: "HorizontalAlign",
	ImpactPivot:           "Pivot",
	ImpactKeepAngle:       "KeepAngle",
}

func (k ImpactKind) String() string {
	if name, ok := impactNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Impact is a follow-up adjustment applied when a handle moves.
type Impact struct {
	Kind   ImpactKind
	Points []int
}

// Handle is an interactive control. Reference indexes Points, Segments or
// Ellipses depending on Type.
type Handle struct {
	Type       HandleType
	Reference  int
	Trackable  bool
	Constraint *Constraint
	Impacts    []Impact
}

// PointRefs returns every point index the handle's constraint and impacts
// depend on, plus Reference itself for point handles.
func (h Handle) PointRefs() []int {
	var refs []int
	if h.Type == HandleTypePoint {
		refs = append(refs, h.Reference)
	}
	if h.Constraint != nil {
		refs = append(refs, h.Constraint.Points...)
	}
	for _, imp := range h.Impacts {
		refs = append(refs, imp.Points...)
	}
	return refs
}
