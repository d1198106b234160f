package posture

import (
	"fmt"

	"github.com/tsawler/posture/model"
	"github.com/tsawler/posture/reader"
)

// attrs reads attributes of the element under the reader and keeps the
// first error, so a constructor can read all of them before checking.
type attrs struct {
	r   *reader.Reader
	err error
}

func (a *attrs) str(name string) string {
	v, _ := a.r.Attr(name)
	return v
}

func (a *attrs) index(name string) int {
	if a.err != nil {
		return 0
	}
	n, err := a.r.AttrInt(name)
	a.err = err
	return n
}

func (a *attrs) intOr(name string, def int) int {
	if a.err != nil {
		return def
	}
	n, err := a.r.AttrIntDefault(name, def)
	a.err = err
	return n
}

func (a *attrs) floatOr(name string, def float64) float64 {
	if a.err != nil {
		return def
	}
	f, err := a.r.AttrFloatDefault(name, def)
	a.err = err
	return f
}

func (a *attrs) boolOr(name string, def bool) bool {
	if a.err != nil {
		return def
	}
	b, err := a.r.AttrBoolDefault(name, def)
	a.err = err
	return b
}

// indices reads the required index attributes names, in order.
func (a *attrs) indices(names []string) []int {
	out := make([]int, 0, len(names))
	for _, name := range names {
		out = append(out, a.index(name))
	}
	return out
}

func (p *parser) attrs() *attrs {
	return &attrs{r: p.r}
}

// lineStyle reads the style attribute. Unknown styles draw solid.
func (p *parser) lineStyle(a *attrs) model.LineStyle {
	s := a.str("style")
	style, ok := model.ParseLineStyle(s)
	if !ok {
		p.log.Debug("unknown line style", "element", p.r.Name(), "style", s)
	}
	return style
}

func (p *parser) readSegment() error {
	a := p.attrs()
	seg := model.Segment{
		Start:      a.index("point1"),
		End:        a.index("point2"),
		Name:       a.str("name"),
		Style:      p.lineStyle(a),
		Width:      a.intOr("width", model.DefaultLineWidth),
		ArrowBegin: a.boolOr("arrowBegin", false),
		ArrowEnd:   a.boolOr("arrowEnd", false),
	}
	if err := a.err; err != nil {
		return err
	}
	if err := p.checkPoints(seg.PointRefs()...); err != nil {
		return fmt.Errorf("segment %d: %w", len(p.tpl.Segments), err)
	}
	p.tpl.Segments = append(p.tpl.Segments, seg)
	return p.r.Skip()
}

func (p *parser) readEllipse() error {
	a := p.attrs()
	e := model.Ellipse{
		Center: a.index("center"),
		Radius: a.index("radius"),
		Name:   a.str("name"),
		Style:  p.lineStyle(a),
		Width:  a.intOr("width", model.DefaultLineWidth),
	}
	if err := a.err; err != nil {
		return err
	}
	if err := p.checkPoints(e.PointRefs()...); err != nil {
		return fmt.Errorf("ellipse %d: %w", len(p.tpl.Ellipses), err)
	}
	p.tpl.Ellipses = append(p.tpl.Ellipses, e)
	return p.r.Skip()
}

func (p *parser) readAngle() error {
	a := p.attrs()
	angle := model.Angle{
		Origin:        a.index("origin"),
		Leg1:          a.index("leg1"),
		Leg2:          a.index("leg2"),
		Signed:        a.boolOr("signed", false),
		CCW:           a.boolOr("ccw", true),
		Supplementary: a.boolOr("supplementary", false),
		Radius:        a.intOr("radius", model.DefaultAngleRadius),
		Name:          a.str("name"),
	}
	if err := a.err; err != nil {
		return err
	}
	if err := p.checkPoints(angle.PointRefs()...); err != nil {
		return fmt.Errorf("angle %d: %w", len(p.tpl.Angles), err)
	}
	p.tpl.Angles = append(p.tpl.Angles, angle)
	return p.r.Skip()
}

func (p *parser) readHandle() error {
	a := p.attrs()
	typ, ok := model.ParseHandleType(a.str("type"))
	if !ok {
		return fmt.Errorf("%w: handle type %q", reader.ErrInvalidValue, a.str("type"))
	}
	h := model.Handle{
		Type:      typ,
		Reference: a.index("reference"),
		Trackable: a.boolOr("trackable", false),
	}
	if err := a.err; err != nil {
		return err
	}
	if err := p.checkReference(h); err != nil {
		return fmt.Errorf("handle %d: %w", len(p.tpl.Handles), err)
	}

	if err := p.r.ReadStartElement("Handle"); err != nil {
		return err
	}
	for p.r.IsStartElement() {
		var err error
		switch p.r.Name() {
		case "Constraint":
			h.Constraint, err = p.readConstraint()
		case "Impacts":
			h.Impacts, err = p.readImpacts()
		default:
			err = p.skipUnparsed()
		}
		if err != nil {
			return fmt.Errorf("handle %d: %w", len(p.tpl.Handles), err)
		}
	}
	if err := p.r.ReadEndElement(); err != nil {
		return err
	}

	p.tpl.Handles = append(p.tpl.Handles, h)
	return nil
}

// checkReference verifies a handle's reference against the collection its
// type selects, as parsed so far.
func (p *parser) checkReference(h model.Handle) error {
	var n int
	switch h.Type {
	case model.HandleTypeSegment:
		n = len(p.tpl.Segments)
	case model.HandleTypeEllipse:
		n = len(p.tpl.Ellipses)
	default:
		return p.checkPoints(h.Reference)
	}
	if h.Reference < 0 || h.Reference >= n {
		return fmt.Errorf("%w: %s %d of %d", ErrIndexOutOfRange, h.Type, h.Reference, n)
	}
	return nil
}

// constraintAttrs lists the point attributes each constraint kind reads.
var constraintAttrs = map[model.ConstraintKind][]string{
	model.ConstraintLineSlide:       {"point1", "point2"},
	model.ConstraintVerticalSlide:   nil,
	model.ConstraintHorizontalSlide: nil,
	model.ConstraintDistanceToPoint: {"point"},
	model.ConstraintRotationSteps:   {"origin", "leg"},
}

// defaultRotationStep is the RotationSteps increment in degrees.
const defaultRotationStep = 15

// readConstraint returns nil for constraint types it does not know.
func (p *parser) readConstraint() (*model.Constraint, error) {
	a := p.attrs()
	typ := a.str("type")
	kind, ok := model.ParseConstraintKind(typ)
	names, known := constraintAttrs[kind]
	if !ok || !known {
		p.log.Debug("unknown constraint", "type", typ)
		return nil, p.skipUnparsed()
	}

	c := &model.Constraint{
		Kind:   kind,
		Points: a.indices(names),
	}
	switch kind {
	case model.ConstraintLineSlide:
		pos := a.str("position")
		c.Position, ok = model.ParseLinePosition(pos)
		if !ok {
			p.log.Debug("unknown line position", "position", pos)
		}
	case model.ConstraintRotationSteps:
		c.Step = a.floatOr("step", defaultRotationStep)
	}
	if err := a.err; err != nil {
		return nil, err
	}
	if err := p.checkPoints(c.Points...); err != nil {
		return nil, fmt.Errorf("constraint %s: %w", kind, err)
	}
	return c, p.r.Skip()
}

// impactAttrs maps impact element names to their kind and point attributes.
var impactAttrs = map[string]struct {
	kind   model.ImpactKind
	points []string
}{
	"Align":           {model.ImpactAlign, []string{"point1", "point2"}},
	"VerticalAlign":   {model.ImpactVerticalAlign, []string{"point"}},
	"HorizontalAlign": {model.ImpactHorizontalAlign, []string{"point"}},
	"Pivot":           {model.ImpactPivot, []string{"point"}},
	"KeepAngle":       {model.ImpactKeepAngle, []string{"origin", "leg"}},
}

func (p *parser) readImpacts() ([]model.Impact, error) {
	if err := p.r.ReadStartElement("Impacts"); err != nil {
		return nil, err
	}
	var impacts []model.Impact
	for p.r.IsStartElement() {
		name := p.r.Name()
		def, ok := impactAttrs[name]
		if !ok {
			if err := p.skipUnparsed(); err != nil {
				return nil, err
			}
			continue
		}

		a := p.attrs()
		imp := model.Impact{Kind: def.kind, Points: a.indices(def.points)}
		if err := a.err; err != nil {
			return nil, err
		}
		if err := p.checkPoints(imp.Points...); err != nil {
			return nil, fmt.Errorf("impact %s: %w", name, err)
		}
		if err := p.r.Skip(); err != nil {
			return nil, err
		}
		impacts = append(impacts, imp)
	}
	return impacts, p.r.ReadEndElement()
}

// readPolygon reads a polygon of <Point>index</Point> children. Polygons
// with fewer than three points enclose nothing and are dropped.
func (p *parser) readPolygon() (model.HitZone, error) {
	var refs []int
	err := p.parseList("Point", func() error {
		i, err := p.r.ReadElementInt("Point")
		if err != nil {
			return err
		}
		refs = append(refs, i)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := p.checkPoints(refs...); err != nil {
		return nil, fmt.Errorf("polygon %d: %w", len(p.tpl.HitZones), err)
	}
	if len(refs) < 3 {
		p.log.Debug("degenerate polygon", "points", len(refs))
		return nil, nil
	}
	return &model.Polygon{Points: refs}, nil
}
