package jyotish

import (
	"math"

	"github.com/akhenakh/jyotish/frames"
	"github.com/akhenakh/jyotish/timescale"
)

// ErrLocationNil is returned when the location is nil.
var ErrLocationNil = &ChartError{"location cannot be nil"}

// ErrInvalidLatitude is returned for a latitude outside [-90, 90].
var ErrInvalidLatitude = &ChartError{"invalid location latitude"}

// ErrInvalidLongitude is returned for a longitude outside [-180, 180].
var ErrInvalidLongitude = &ChartError{"invalid location longitude"}

// Location represents a birth place on Earth
type Location struct {
	Latitude  float64 // Latitude in degrees (North positive)
	Longitude float64 // Longitude in degrees (East positive)
	Altitude  float64 // Altitude in meters, informational only
}

// Validate checks the coordinate ranges.
func (loc *Location) Validate() error {
	if loc == nil {
		return ErrLocationNil
	}
	if math.IsNaN(loc.Latitude) || loc.Latitude < -90 || loc.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(loc.Longitude) || loc.Longitude < -180 || loc.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// Ascendant returns the tropical longitude of the eastern horizon for the
// instant. Sidereal time comes from UT and the obliquity from TT.
func (loc *Location) Ascendant(inst timescale.Instant) (frames.Tropical, error) {
	if err := loc.Validate(); err != nil {
		return 0, err
	}
	ramc := timescale.LocalSiderealTime(inst.JDUT, loc.Longitude)
	eps := frames.MeanObliquity(inst.JDTT)
	phi := loc.Latitude * deg2rad

	sinR, cosR := math.Sincos(ramc)
	sinE, cosE := math.Sincos(eps)
	asc := math.Atan2(cosR, -(sinR*cosE + math.Tan(phi)*sinE))
	return frames.NewTropical(asc), nil
}

// SiderealAscendant subtracts the model's ayanamsa from the ascendant.
func (loc *Location) SiderealAscendant(inst timescale.Instant, model frames.AyanamsaModel) (frames.Sidereal, error) {
	asc, err := loc.Ascendant(inst)
	if err != nil {
		return 0, err
	}
	return model.ToSidereal(asc, inst.JDTT), nil
}
