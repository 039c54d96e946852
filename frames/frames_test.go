package frames

import (
	"math"
	"testing"

	"github.com/akhenakh/jyotish/timescale"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{twoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-18, 0},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		if got < 0 || got >= twoPi {
			t.Errorf("Normalize(%v) = %v, outside [0, 2π)", tt.in, got)
		}
		if math.Abs(got-tt.want) > 1e-12 && math.Abs(got-tt.want-twoPi) > 1e-12 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := NormalizeDegrees(-30); got != 330 {
		t.Errorf("NormalizeDegrees(-30) = %v, want 330", got)
	}
}

func TestNutationMeeus22a(t *testing.T) {
	// 1987 April 10, 0h TD
	n := ComputeNutation(2446895.5)
	tests := []struct {
		name    string
		got     float64
		want    float64
		epsilon float64
	}{
		{"DeltaPsi", n.DeltaPsi / arcsec2rad, -3.788, 0.01},
		{"DeltaEps", n.DeltaEps / arcsec2rad, 9.443, 0.01},
		{"EpsMean", n.EpsMean * rad2deg, 23.440946, 1e-5},
		{"EpsTrue", n.EpsTrue * rad2deg, 23 + 26.0/60 + 36.850/3600, 1e-5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.epsilon {
				t.Errorf("%s = %.6f, want %.6f (±%g)", tt.name, tt.got, tt.want, tt.epsilon)
			}
		})
	}
}

func TestPrecessionLongitude(t *testing.T) {
	if got := PrecessionLongitude(timescale.J2000); got != 0 {
		t.Errorf("precession at J2000 = %v, want 0", got)
	}
	got := PrecessionLongitude(timescale.J2000+timescale.DaysPerCentury) / arcsec2rad
	want := 5028.796195 + 1.1054348 + 0.00007964
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("precession after one century = %.6f\", want %.6f\"", got, want)
	}
}

func TestLahiriAyanamsa(t *testing.T) {
	tests := []struct {
		name string
		jd   float64
		want float64 // degrees
		eps  float64
	}{
		{"J2000", timescale.J2000, 23 + 51.0/60 + 45.0/3600, 1e-9},
		{"2024-01-01", timescale.CalendarToJD(2024, 1, 1, 0), 24.198, 0.002},
		{"1950-01-01", timescale.CalendarToJD(1950, 1, 1, 0), 23.164, 0.002},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LahiriAyanamsa(tt.jd).Degrees()
			if math.Abs(got-tt.want) > tt.eps {
				t.Errorf("ayanamsa = %.6f°, want %.6f° (±%g)", got, tt.want, tt.eps)
			}
		})
	}
}

func TestTropicalToSidereal(t *testing.T) {
	a := LahiriAyanamsa(timescale.J2000)
	tests := []struct {
		name string
		trop float64 // degrees
		want float64 // degrees
	}{
		{"wraps below zero", 10, 360 - (a.Degrees() - 10)},
		{"plain subtraction", 100, 100 - a.Degrees()},
		{"at ayanamsa", a.Degrees(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TropicalFromDegrees(tt.trop).Sidereal(a).Degrees()
			if math.Abs(got-tt.want) > 1e-9 && math.Abs(got-tt.want-360) > 1e-9 {
				t.Errorf("sidereal = %.9f, want %.9f", got, tt.want)
			}
		})
	}
}

func TestCustomAyanamsaModel(t *testing.T) {
	m := AyanamsaModel{J2000Arcsec: 85860}
	diff := Lahiri.At(timescale.J2000).Degrees() - m.At(timescale.J2000).Degrees()
	if math.Abs(diff-45.0/3600) > 1e-12 {
		t.Errorf("offset difference = %v°, want 45\"", diff)
	}
}

func TestSiderealOpposite(t *testing.T) {
	s := SiderealFromDegrees(300)
	if got := s.Opposite().Degrees(); math.Abs(got-120) > 1e-9 {
		t.Errorf("Opposite(300°) = %v, want 120", got)
	}
}

func TestEquatorialToEcliptic(t *testing.T) {
	eps := ObliquityJ2000
	// The celestial pole lies at ecliptic latitude 90° − ε.
	x, y, z := EquatorialToEcliptic(0, 0, 1, eps)
	lat := math.Atan2(z, math.Hypot(x, y))
	if math.Abs(lat-(math.Pi/2-eps)) > 1e-12 {
		t.Errorf("pole latitude = %v, want %v", lat, math.Pi/2-eps)
	}
}
