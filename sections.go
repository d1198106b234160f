package posture

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tsawler/posture/icon"
	"github.com/tsawler/posture/internal/coords"
	"github.com/tsawler/posture/model"
	"github.com/tsawler/posture/reader"
)

// Load faults.
var (
	ErrIndexOutOfRange = errors.New("posture: index out of range")
	ErrTooManyPoints   = errors.New("posture: too many points")
)

// parser holds the state of a single load.
type parser struct {
	r       *reader.Reader
	tpl     *model.Template
	log     *slog.Logger
	options LoadOptions
}

// sectionFunc parses one top-level section. It is called with the reader
// on the section's start tag and must leave it after the matching end tag.
type sectionFunc func(*parser) error

// infoSections are the sections read in InfoOnly mode.
var infoSections = map[string]sectionFunc{
	"Name": (*parser).parseName,
	"Icon": (*parser).parseIcon,
}

// fullSections are the sections read in Full mode.
var fullSections = map[string]sectionFunc{
	"Name":                 (*parser).skip,
	"Icon":                 (*parser).skip,
	"PointCount":           (*parser).parsePointCount,
	"Segments":             (*parser).parseSegments,
	"Ellipses":             (*parser).parseEllipses,
	"Angles":               (*parser).parseAngles,
	"Handles":              (*parser).parseHandles,
	"HitZone":              (*parser).parseHitZone,
	"InitialConfiguration": (*parser).parseInitialConfiguration,
}

// parse reads the whole document into p.tpl.
func (p *parser) parse() error {
	if err := p.r.MoveToContent(); err != nil {
		return err
	}
	if name := p.r.Name(); name != RootElement {
		p.log.Debug("not a posture tool", "root", name)
		return nil
	}
	if err := p.r.ReadStartElement(RootElement); err != nil {
		return err
	}

	// FormatVersion has no effect on this version of the format.
	if _, err := p.r.ReadElementString("FormatVersion"); err != nil {
		return fmt.Errorf("format version: %w", err)
	}

	sections, fallback := fullSections, (*parser).skipUnparsed
	if p.options.mode == InfoOnly {
		sections, fallback = infoSections, (*parser).skip
	}

	for p.r.IsStartElement() {
		name := p.r.Name()
		fn, ok := sections[name]
		if !ok {
			fn = fallback
		}
		if err := fn(p); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
	}
	return p.r.ReadEndElement()
}

// skip discards the next element.
func (p *parser) skip() error {
	return p.r.Skip()
}

// skipUnparsed discards the next element and logs its markup.
func (p *parser) skipUnparsed() error {
	name := p.r.Name()
	outer, err := p.r.ReadOuterXML()
	if err != nil {
		return err
	}
	p.log.Debug("unparsed content", "element", name, "xml", outer)
	return nil
}

// parseList reads a container element whose children named item are
// handed to each. Other children are skipped.
func (p *parser) parseList(item string, each func() error) error {
	if err := p.r.ReadStartElement(""); err != nil {
		return err
	}
	for p.r.IsStartElement() {
		if p.r.Name() != item {
			if err := p.skipUnparsed(); err != nil {
				return err
			}
			continue
		}
		if err := each(); err != nil {
			return err
		}
	}
	return p.r.ReadEndElement()
}

func (p *parser) parseName() error {
	s, err := p.r.ReadElementString("Name")
	if err != nil {
		return err
	}
	p.tpl.Name = strings.TrimSpace(s)
	return nil
}

func (p *parser) parseIcon() error {
	s, err := p.r.ReadElementString("Icon")
	if err != nil {
		return err
	}
	img, err := icon.DecodeBase64(s, p.options.iconDecoder())
	if errors.Is(err, icon.ErrEmpty) {
		p.log.Debug("empty icon")
		return nil
	}
	if err != nil {
		return err
	}
	p.tpl.Icon = img
	return nil
}

func (p *parser) parsePointCount() error {
	n, err := p.r.ReadElementInt("PointCount")
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative point count %d", reader.ErrInvalidValue, n)
	}
	if total := len(p.tpl.Points) + n; p.options.maxPoints > 0 && total > p.options.maxPoints {
		return fmt.Errorf("%w: %d declared, limit is %d", ErrTooManyPoints, total, p.options.maxPoints)
	}
	p.tpl.AddPoints(n)
	return nil
}

func (p *parser) parseSegments() error {
	return p.parseList("Segment", p.readSegment)
}

func (p *parser) parseEllipses() error {
	return p.parseList("Ellipse", p.readEllipse)
}

func (p *parser) parseAngles() error {
	return p.parseList("Angle", p.readAngle)
}

func (p *parser) parseHandles() error {
	return p.parseList("Handle", p.readHandle)
}

// hitZoneVariants maps hit zone element names to their readers. A reader
// may return a nil zone to drop a degenerate shape.
var hitZoneVariants = map[string]func(*parser) (model.HitZone, error){
	"Polygon": (*parser).readPolygon,
}

func (p *parser) parseHitZone() error {
	if err := p.r.ReadStartElement("HitZone"); err != nil {
		return err
	}
	for p.r.IsStartElement() {
		read, ok := hitZoneVariants[p.r.Name()]
		if !ok {
			if err := p.skipUnparsed(); err != nil {
				return err
			}
			continue
		}
		zone, err := read(p)
		if err != nil {
			return err
		}
		if zone != nil {
			p.tpl.HitZones = append(p.tpl.HitZones, zone)
		}
	}
	return p.r.ReadEndElement()
}

// parseInitialConfiguration applies the points read before a fault too, so a
// broken section still yields its leading coordinates.
func (p *parser) parseInitialConfiguration() error {
	updates, err := p.readInitialConfiguration()
	for _, u := range p.tpl.ApplyUpdates(updates) {
		p.log.Debug("initial point out of range", "index", u.Index)
	}
	return err
}

// readInitialConfiguration returns one update per Point child, assigned by
// position. Points beyond the declared count are read but not returned. On
// error the updates read so far are returned with it.
func (p *parser) readInitialConfiguration() ([]model.PointUpdate, error) {
	var updates []model.PointUpdate
	index := 0
	err := p.parseList("Point", func() error {
		defer func() { index++ }()

		if index >= len(p.tpl.Points) {
			outer, err := p.r.ReadOuterXML()
			if err != nil {
				return err
			}
			p.log.Debug("surplus initial point", "index", index, "xml", outer)
			return nil
		}

		s, err := p.r.ReadElementString("Point")
		if err != nil {
			return err
		}
		pt, err := coords.ParsePoint(s)
		if err != nil {
			return fmt.Errorf("point %d: %w", index, err)
		}
		updates = append(updates, model.PointUpdate{Index: index, Value: pt})
		return nil
	})
	return updates, err
}

// checkPoints verifies that every index refers to a declared point.
func (p *parser) checkPoints(refs ...int) error {
	for _, i := range refs {
		if i < 0 || i >= len(p.tpl.Points) {
			return fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, i, len(p.tpl.Points))
		}
	}
	return nil
}
