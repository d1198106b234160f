package coords

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/posture/model"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    model.Point
		wantErr bool
	}{
		{"integers", "1;2", model.Point{X: 1, Y: 2}, false},
		{"decimals", "10.5;-3.25", model.Point{X: 10.5, Y: -3.25}, false},
		{"spaces", " 7 ; 8 ", model.Point{X: 7, Y: 8}, false},
		{"exponent", "1e2;2E-1", model.Point{X: 100, Y: 0.2}, false},
		{"no separator", "1,2", model.Point{}, true},
		{"missing y", "1;", model.Point{}, true},
		{"text", "a;b", model.Point{}, true},
		{"nan", "NaN;1", model.Point{}, true},
		{"inf", "1;+Inf", model.Point{}, true},
		{"empty", "", model.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("expected ErrSyntax, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePoint(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPoint(t *testing.T) {
	if got := FormatPoint(model.Point{X: 100, Y: 25.5}); got != "100;25.5" {
		t.Errorf("FormatPoint() = %q, want 100;25.5", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	points := []model.Point{
		{X: 0, Y: 0},
		{X: 1.0 / 3.0, Y: -2.0 / 7.0},
		{X: 1e-9, Y: 123456789.123},
		{X: -0.1, Y: math.MaxFloat32},
	}

	for _, p := range points {
		got, err := ParsePoint(FormatPoint(p))
		if err != nil {
			t.Fatalf("ParsePoint(FormatPoint(%v)) failed: %v", p, err)
		}
		if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12*math.Max(1, math.Abs(p.Y)) {
			t.Errorf("round trip of %+v gave %+v", p, got)
		}
	}
}
