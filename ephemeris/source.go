package ephemeris

import (
	"fmt"

	"github.com/akhenakh/jyotish/timescale"
)

// Source yields heliocentric rectangular positions referred to the ecliptic
// and equinox of date, in AU.
//
// Positions calls Heliocentric from several goroutines at once and a server
// shares one Source between requests, so implementations must be safe for
// concurrent use.
type Source interface {
	Heliocentric(body Body, jdTT float64) (Vector, error)
}

// SeriesSource evaluates the built-in periodic series. Its tables are
// read-only, so a single value is safe for concurrent use.
type SeriesSource struct{}

// Heliocentric implements Source. The Sun sits at the origin.
func (SeriesSource) Heliocentric(body Body, jdTT float64) (Vector, error) {
	if body == Sun {
		return Vector{}, nil
	}
	th, ok := theories[body]
	if !ok {
		return Vector{}, fmt.Errorf("ephemeris: no heliocentric theory for %s", body)
	}
	return th.position(timescale.Millennia(jdTT)), nil
}
