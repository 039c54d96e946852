package ephemeris

import (
	"math"

	"github.com/akhenakh/jyotish/frames"
)

// Vector is a rectangular ecliptic position in astronomical units.
type Vector struct {
	X, Y, Z float64
}

// Sub returns v − o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Neg returns −v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Norm returns the length of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Longitude returns atan2(y, x) wrapped into [0, 2π).
func (v Vector) Longitude() float64 {
	return frames.Normalize(math.Atan2(v.Y, v.X))
}

// Latitude returns the ecliptic latitude of v in radians.
func (v Vector) Latitude() float64 {
	return math.Atan2(v.Z, math.Hypot(v.X, v.Y))
}

// Ecliptic holds spherical ecliptic coordinates.
type Ecliptic struct {
	Longitude float64 // radians, [0, 2π)
	Latitude  float64 // radians
	Distance  float64 // AU
}

// ToEcliptic converts a rectangular vector to spherical coordinates.
func ToEcliptic(v Vector) Ecliptic {
	return Ecliptic{Longitude: v.Longitude(), Latitude: v.Latitude(), Distance: v.Norm()}
}

// FromSpherical builds a rectangular vector from longitude l, latitude b
// (radians) and radius r.
func FromSpherical(l, b, r float64) Vector {
	cb := math.Cos(b)
	return Vector{
		X: r * cb * math.Cos(l),
		Y: r * cb * math.Sin(l),
		Z: r * math.Sin(b),
	}
}
