package ephemeris

import "github.com/akhenakh/jyotish/frames"

// SpeedOfLight in AU per day.
const SpeedOfLight = 173.144632674240

// Geocentric returns the geocentric vector of body at jdTT with a single
// light-time pass: the target is re-evaluated at jdTT − r/c while the
// Earth stays at jdTT. The Sun's geocentric vector is −Earth.
func Geocentric(src Source, body Body, jdTT float64) (Vector, error) {
	earth, err := src.Heliocentric(Earth, jdTT)
	if err != nil {
		return Vector{}, err
	}
	if body == Sun {
		return earth.Neg(), nil
	}

	p, err := src.Heliocentric(body, jdTT)
	if err != nil {
		return Vector{}, err
	}
	delay := p.Sub(earth).Norm() / SpeedOfLight

	p, err = src.Heliocentric(body, jdTT-delay)
	if err != nil {
		return Vector{}, err
	}
	return p.Sub(earth), nil
}

// GeocentricLongitude returns the tropical longitude of a planet or the Sun.
func GeocentricLongitude(src Source, body Body, jdTT float64) (frames.Tropical, error) {
	v, err := Geocentric(src, body, jdTT)
	if err != nil {
		return 0, err
	}
	return frames.Tropical(v.Longitude()), nil
}
