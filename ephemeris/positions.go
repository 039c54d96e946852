package ephemeris

import (
	"fmt"
	"math"

	"github.com/sourcegraph/conc/iter"

	"github.com/akhenakh/jyotish/frames"
)

// Position is one body's longitude in both frames for one instant.
type Position struct {
	Body     Body
	Tropical frames.Tropical
	Sidereal frames.Sidereal
}

// TropicalLongitude dispatches to the planetary, lunar or node theory.
// Ketu is never computed here; it is derived from Rahu in Positions.
func TropicalLongitude(src Source, body Body, jdTT float64) (frames.Tropical, error) {
	switch {
	case body == Moon:
		return MoonLongitude(jdTT), nil
	case body == Rahu:
		return TrueNode(jdTT), nil
	case body == Sun || body.IsPlanet():
		return GeocentricLongitude(src, body, jdTT)
	}
	return 0, fmt.Errorf("ephemeris: no longitude for %s", body)
}

// Positions computes every chart body at jdTT. Bodies are evaluated in
// parallel and returned in the order of Bodies; Ketu is Rahu's antipode.
func Positions(src Source, jdTT float64, model frames.AyanamsaModel) ([]Position, error) {
	ayan := model.At(jdTT)
	computed := []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu}

	out, err := iter.MapErr(computed, func(b *Body) (Position, error) {
		trop, err := TropicalLongitude(src, *b, jdTT)
		if err != nil {
			return Position{}, fmt.Errorf("ephemeris: %s: %w", *b, err)
		}
		return Position{Body: *b, Tropical: trop, Sidereal: trop.Sidereal(ayan)}, nil
	})
	if err != nil {
		return nil, err
	}

	rahu := out[len(out)-1]
	out = append(out, Position{
		Body:     Ketu,
		Tropical: frames.NewTropical(rahu.Tropical.Radians() + math.Pi),
		Sidereal: rahu.Sidereal.Opposite(),
	})
	return out, nil
}
