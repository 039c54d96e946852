package jyotish

import (
	"errors"
	"math"
	"testing"

	"github.com/akhenakh/jyotish/frames"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		name   string
		lon    float64
		d      int
		sign   int
		degree float64
	}{
		{"D1 is the natal sign", 75.5, 1, 2, 15.5},
		{"D9 first part", 1.0, 9, 0, 1.0},
		{"D9 second part", 4.0, 9, 1, 4.0 - 10.0/3.0},
		{"D9 wraps through signs", 268.81451515, 9, 8, 2.14784849},
		{"D30 near the end", 359.9, 30, 11, 0.9},
		{"zero", 0, 12, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign, deg, err := Divide(frames.SiderealFromDegrees(tt.lon), tt.d)
			if err != nil {
				t.Fatalf("Divide: %v", err)
			}
			if sign != tt.sign || math.Abs(deg-tt.degree) > 1e-6 {
				t.Errorf("D%d(%.4f) = %d %.6f, want %d %.6f", tt.d, tt.lon, sign, deg, tt.sign, tt.degree)
			}
		})
	}
}

func TestDivideOutOfRange(t *testing.T) {
	for _, d := range []int{0, -3, 31, 60} {
		_, _, err := Divide(0, d)
		var de *DivisionError
		if !errors.As(err, &de) || de.Division != d {
			t.Errorf("Divide(_, %d) error = %v, want DivisionError", d, err)
		}
	}
}

func TestChartDivisional(t *testing.T) {
	c, err := Compute(delhiInput)
	if err != nil {
		t.Fatal(err)
	}
	d1, err := c.Divisional(1)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range c.Positions() {
		if d1[i].Body != p.Body || d1[i].Sign != SignOf(p.Sidereal.Degrees()) {
			t.Errorf("D1 %s in %s, natal sign %d", d1[i].Body, d1[i].SignName(), SignOf(p.Sidereal.Degrees()))
		}
	}
	if _, err := c.Divisional(31); err == nil {
		t.Error("D31 should fail")
	}
}
