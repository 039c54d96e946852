// Package frames holds the reference-frame transforms between the moving
// equinox and the fixed sidereal zodiac: precession, nutation, obliquity
// and the Lahiri ayanamsa.
package frames

import "math"

const (
	twoPi      = 2 * math.Pi
	deg2rad    = math.Pi / 180.0
	rad2deg    = 180.0 / math.Pi
	arcsec2rad = math.Pi / (180.0 * 3600.0)
)

// Normalize wraps an angle in radians into [0, 2π).
func Normalize(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// math.Mod can return exactly 2π after adding to a tiny negative value.
	if a >= twoPi {
		a -= twoPi
	}
	return a
}

// NormalizeDegrees wraps an angle in degrees into [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0 {
		a += 360.0
	}
	if a >= 360.0 {
		a -= 360.0
	}
	return a
}

// Tropical is an ecliptic longitude in radians measured from the equinox
// of date.
type Tropical float64

// Sidereal is an ecliptic longitude in radians measured from the fixed
// sidereal origin. The only way to obtain one from a Tropical value is
// through an ayanamsa subtraction.
type Sidereal float64

// NewTropical returns the normalized tropical longitude for rad.
func NewTropical(rad float64) Tropical {
	return Tropical(Normalize(rad))
}

// TropicalFromDegrees returns the normalized tropical longitude for deg.
func TropicalFromDegrees(deg float64) Tropical {
	return NewTropical(deg * deg2rad)
}

// Radians returns the longitude in radians.
func (t Tropical) Radians() float64 { return float64(t) }

// Degrees returns the longitude in degrees within [0, 360).
func (t Tropical) Degrees() float64 { return NormalizeDegrees(float64(t) * rad2deg) }

// Sidereal subtracts the ayanamsa and wraps the result into [0, 2π).
func (t Tropical) Sidereal(a Ayanamsa) Sidereal {
	return Sidereal(Normalize(float64(t) - float64(a)))
}

// Radians returns the longitude in radians.
func (s Sidereal) Radians() float64 { return float64(s) }

// Degrees returns the longitude in degrees within [0, 360).
func (s Sidereal) Degrees() float64 { return NormalizeDegrees(float64(s) * rad2deg) }

// Opposite returns the antipodal sidereal longitude.
func (s Sidereal) Opposite() Sidereal {
	return Sidereal(Normalize(float64(s) + math.Pi))
}

// SiderealFromDegrees builds a sidereal longitude from degrees. It is meant
// for lookups keyed on an already sidereal value, such as a nakshatra
// boundary.
func SiderealFromDegrees(deg float64) Sidereal {
	return Sidereal(Normalize(deg * deg2rad))
}
