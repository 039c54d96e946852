package ephemeris

import (
	"math"

	"github.com/akhenakh/jyotish/frames"
	"github.com/akhenakh/jyotish/timescale"
)

// lunarArgs are the fundamental arguments of the lunar theory, in radians.
type lunarArgs struct {
	t      float64 // Julian centuries TT
	lp     float64 // Moon's mean longitude L′
	d      float64 // mean elongation
	m      float64 // Sun's mean anomaly
	mp     float64 // Moon's mean anomaly
	f      float64 // argument of latitude
	a1, a2 float64 // Venus and Jupiter arguments
	e      float64 // Earth orbit eccentricity factor
}

func newLunarArgs(jdTT float64) *lunarArgs {
	t := timescale.Centuries(jdTT)
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	return &lunarArgs{
		t:  t,
		lp: deg(218.3164477 + 481267.88123421*t - 0.0015786*t2 + t3/538841 - t4/65194000),
		d:  deg(297.8501921 + 445267.1114034*t - 0.0018819*t2 + t3/545868 - t4/113065000),
		m:  deg(357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000),
		mp: deg(134.9633964 + 477198.8675055*t + 0.0087414*t2 + t3/69699 - t4/14712000),
		f:  deg(93.2720950 + 483202.0175233*t - 0.0036539*t2 - t3/3526000 + t4/863310000),
		a1: deg(119.75 + 131.849*t),
		a2: deg(53.09 + 479264.290*t),
		e:  1 - 0.002516*t - 0.0000074*t2,
	}
}

func deg(d float64) float64 {
	return frames.Normalize(d * math.Pi / 180.0)
}

// main sums the periodic table, scaling terms that involve the Sun's mean
// anomaly by E^|M|.
func (a *lunarArgs) main() float64 {
	sum := 0.0
	for _, t := range lunarMainTerms {
		amp := t.sl
		switch math.Abs(t.m) {
		case 1:
			amp *= a.e
		case 2:
			amp *= a.e * a.e
		}
		sum += amp * math.Sin(t.d*a.d+t.m*a.m+t.mp*a.mp+t.f*a.f)
	}
	return sum
}

func (a *lunarArgs) additive(terms []additiveTerm) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += t.amp * math.Sin(t.arg(a))
	}
	return sum
}

// MoonMeanLongitude returns the Moon's mean longitude L′ referred to the
// mean equinox of date.
func MoonMeanLongitude(jdTT float64) frames.Tropical {
	return frames.Tropical(newLunarArgs(jdTT).lp)
}

// MoonLongitude returns the Moon's geocentric tropical longitude. The main,
// planetary and secular tables are summed independently and added to the
// mean longitude.
func MoonLongitude(jdTT float64) frames.Tropical {
	a := newLunarArgs(jdTT)
	sigma := a.main() + a.additive(lunarPlanetaryTerms) + a.additive(lunarSecularTerms)
	return frames.NewTropical(a.lp + sigma*1e-6*math.Pi/180.0)
}
