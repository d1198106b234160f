// Package coords converts points to and from the text form used in tool
// documents.
//
// The grammar is "<x>;<y>". Whitespace around either number is ignored and
// numbers use the syntax of strconv.ParseFloat, so the decimal separator is
// always a dot whatever the host locale.
package coords

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/posture/model"
)

// Separator splits the two components of a point.
const Separator = ";"

// ErrSyntax is returned for text that is not a coordinate pair.
var ErrSyntax = errors.New("coords: invalid point")

// ParsePoint parses "x;y".
func ParsePoint(s string) (model.Point, error) {
	xs, ys, ok := strings.Cut(s, Separator)
	if !ok {
		return model.Point{}, fmt.Errorf("%w: %q has no %q separator", ErrSyntax, s, Separator)
	}

	x, err := parseComponent(xs)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w: bad x in %q", ErrSyntax, s)
	}
	y, err := parseComponent(ys)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w: bad y in %q", ErrSyntax, s)
	}
	return model.Point{X: x, Y: y}, nil
}

// parseComponent parses one finite coordinate.
func parseComponent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrSyntax
	}
	return v, nil
}

// FormatPoint writes p in the form ParsePoint reads. The shortest
// representation that round-trips exactly is used for each component.
func FormatPoint(p model.Point) string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + Separator + strconv.FormatFloat(p.Y, 'g', -1, 64)
}
