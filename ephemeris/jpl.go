package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/mshafiee/jpleph"

	"github.com/akhenakh/jyotish/frames"
)

// ErrOutsideEphemeris is returned when a JPL file does not cover the
// requested epoch.
var ErrOutsideEphemeris = errors.New("ephemeris: epoch outside JPL file range")

var jplBodies = map[Body]jpleph.Planet{
	Mercury: jpleph.Mercury,
	Venus:   jpleph.Venus,
	Earth:   jpleph.Earth,
	Mars:    jpleph.Mars,
	Jupiter: jpleph.Jupiter,
	Saturn:  jpleph.Saturn,
}

// pvReader is the part of *jpleph.Ephemeris used here.
type pvReader interface {
	CalculatePV(et float64, target jpleph.Planet, center jpleph.CenterBody, calcVelocity bool) (jpleph.Position, jpleph.Velocity, error)
	Close() error
}

// JPLSource reads heliocentric vectors from a JPL DE binary file. The ICRF
// equatorial vectors are rotated onto the J2000 ecliptic and then carried
// to the equinox of date by the precession in longitude.
//
// The reader seeks one file and keeps one record cache, so reads are
// serialized; a JPLSource is safe for concurrent use.
type JPLSource struct {
	mu  sync.Mutex
	eph pvReader
}

// OpenJPL opens a JPL DE binary ephemeris file.
func OpenJPL(path string) (*JPLSource, error) {
	eph, err := jpleph.NewEphemeris(path, false)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: open %s: %w", path, err)
	}
	return &JPLSource{eph: eph}, nil
}

// Close releases the underlying file.
func (s *JPLSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eph.Close()
}

// Heliocentric implements Source.
func (s *JPLSource) Heliocentric(body Body, jdTT float64) (Vector, error) {
	if body == Sun {
		return Vector{}, nil
	}
	target, ok := jplBodies[body]
	if !ok {
		return Vector{}, fmt.Errorf("ephemeris: no JPL target for %s", body)
	}
	s.mu.Lock()
	pos, _, err := s.eph.CalculatePV(jdTT, target, jpleph.CenterSun, false)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, jpleph.ErrOutsideRange) {
			return Vector{}, fmt.Errorf("%w: JD %.5f", ErrOutsideEphemeris, jdTT)
		}
		return Vector{}, fmt.Errorf("ephemeris: JPL %s: %w", body, err)
	}
	return icrfToEclipticOfDate(Vector{X: pos.X, Y: pos.Y, Z: pos.Z}, jdTT), nil
}

func icrfToEclipticOfDate(v Vector, jdTT float64) Vector {
	x, y, z := frames.EquatorialToEcliptic(v.X, v.Y, v.Z, frames.ObliquityJ2000)
	p := frames.PrecessionLongitude(jdTT)
	sinP, cosP := math.Sin(p), math.Cos(p)
	return Vector{X: x*cosP - y*sinP, Y: x*sinP + y*cosP, Z: z}
}
