package model

// HitZoneKind identifies the shape of a hit zone
type HitZoneKind int

const (
	HitZoneUnknown HitZoneKind = iota
	HitZonePolygon
)

func (k HitZoneKind) String() string {
	switch k {
	case HitZonePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// HitZone is a region over point indices used for hit-testing. The set of
// implementations is closed to this package.
type HitZone interface {
	Kind() HitZoneKind
	PointRefs() []int
	Contains(points []Point, p Point) bool
	hitZone()
}

// Polygon is a closed polygon through the referenced points, in order.
type Polygon struct {
	Points []int
}

func (pg *Polygon) Kind() HitZoneKind { return HitZonePolygon }
func (pg *Polygon) PointRefs() []int  { return pg.Points }
func (pg *Polygon) hitZone()          {}

// Contains tests p against the polygon using the even-odd rule.
func (pg *Polygon) Contains(points []Point, p Point) bool {
	n := len(pg.Points)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := points[pg.Points[i]]
		b := points[pg.Points[j]]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
