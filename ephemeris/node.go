package ephemeris

import (
	"math"

	"github.com/akhenakh/jyotish/frames"
	"github.com/akhenakh/jyotish/timescale"
)

// MeanNode returns the longitude of the Moon's mean ascending node.
func MeanNode(jdTT float64) frames.Tropical {
	t := timescale.Centuries(jdTT)
	om := 125.0445479 - 1934.1362891*t + 0.0020754*t*t + t*t*t/467441 - t*t*t*t/60616000
	return frames.TropicalFromDegrees(om)
}

// TrueNode returns the longitude of the Moon's true ascending node (Rahu):
// the mean node plus five periodic corrections.
func TrueNode(jdTT float64) frames.Tropical {
	a := newLunarArgs(jdTT)
	corr := -1.4979*math.Sin(2*(a.d-a.f)) -
		0.1500*math.Sin(a.m) -
		0.1226*math.Sin(2*a.d) +
		0.1176*math.Sin(2*a.f) -
		0.0801*math.Sin(2*(a.mp-a.f))
	return frames.NewTropical(MeanNode(jdTT).Radians() + corr*math.Pi/180.0)
}

// SouthNode returns Ketu, always the point opposite the true node.
func SouthNode(jdTT float64) frames.Tropical {
	return frames.NewTropical(TrueNode(jdTT).Radians() + math.Pi)
}
