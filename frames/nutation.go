package frames

import (
	"math"

	"github.com/akhenakh/jyotish/timescale"
)

// Nutation holds the nutation angles and obliquities, all in radians.
type Nutation struct {
	DeltaPsi float64 // nutation in longitude
	DeltaEps float64 // nutation in obliquity
	EpsMean  float64 // mean obliquity
	EpsTrue  float64 // true obliquity
}

type nutationTerm struct {
	d, m, mp, f, om float64
	psi0, psi1      float64 // sine coefficients, 0.0001"
	eps0, eps1      float64 // cosine coefficients, 0.0001"
}

// IAU 1980 series truncated at 0.0003".
var nutationTerms = []nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
	{2, 0, 0, 0, 0, 63, 0, 0, 0},
	{0, 0, 1, 0, 1, 63, 0.1, -33, 0},
	{2, 0, -1, 2, 2, -59, 0, 26, 0},
	{0, 0, -1, 0, 1, -58, -0.1, 32, 0},
	{0, 0, 1, 2, 1, -51, 0, 27, 0},
	{-2, 0, 2, 0, 0, 48, 0, 0, 0},
	{0, 0, -2, 2, 1, 46, 0, -24, 0},
	{2, 0, 0, 2, 2, -38, 0, 16, 0},
	{0, 0, 2, 2, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 29, 0, 0, 0},
	{-2, 0, 1, 2, 2, 29, 0, -12, 0},
	{0, 0, 0, 2, 0, 26, 0, 0, 0},
	{-2, 0, 0, 2, 0, -22, 0, 0, 0},
	{0, 0, -1, 2, 1, 21, 0, -10, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{2, 0, -1, 0, 1, 16, 0, -8, 0},
	{-2, 2, 0, 2, 2, -16, 0.1, 7, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{-2, 0, 1, 0, 1, -13, 0, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{0, 0, 2, -2, 0, 11, 0, 0, 0},
	{2, 0, -1, 2, 1, -10, 0, 5, 0},
	{2, 0, 1, 2, 2, -8, 0, 3, 0},
	{0, 1, 0, 2, 2, 7, 0, -3, 0},
	{-2, 1, 1, 0, 0, -7, 0, 0, 0},
	{0, -1, 0, 2, 2, -7, 0, 3, 0},
	{2, 0, 0, 2, 1, -7, 0, 3, 0},
	{2, 0, 1, 0, 0, 6, 0, 0, 0},
	{-2, 0, 2, 2, 2, 6, 0, -3, 0},
	{-2, 0, 1, 2, 1, 6, 0, -3, 0},
	{2, 0, -2, 0, 1, -6, 0, 3, 0},
	{2, 0, 0, 0, 1, -6, 0, 3, 0},
	{0, -1, 1, 0, 0, 5, 0, 0, 0},
	{-2, -1, 0, 2, 1, -5, 0, 3, 0},
	{-2, 0, 0, 0, 1, -5, 0, 3, 0},
	{0, 0, 2, 2, 1, -5, 0, 3, 0},
	{-2, 0, 2, 0, 1, 4, 0, 0, 0},
	{-2, 1, 0, 2, 1, 4, 0, 0, 0},
	{0, 0, 1, -2, 0, 4, 0, 0, 0},
	{-1, 0, 1, 0, 0, -4, 0, 0, 0},
	{-2, 1, 0, 0, 0, -4, 0, 0, 0},
	{1, 0, 0, 0, 0, -4, 0, 0, 0},
	{0, 0, 1, 2, 0, 3, 0, 0, 0},
	{0, 0, -2, 2, 2, -3, 0, 0, 0},
	{-1, -1, 1, 0, 0, -3, 0, 0, 0},
	{0, 1, 1, 0, 0, -3, 0, 0, 0},
	{0, -1, 1, 2, 2, -3, 0, 0, 0},
	{2, -1, -1, 2, 2, -3, 0, 0, 0},
	{0, 0, 3, 2, 2, -3, 0, 0, 0},
	{2, -1, 0, 2, 2, -3, 0, 0, 0},
}

// ComputeNutation evaluates the nutation series for a Julian Day in TT.
func ComputeNutation(jdTT float64) Nutation {
	t := timescale.Centuries(jdTT)
	t2 := t * t
	t3 := t2 * t

	d := (297.85036 + 445267.111480*t - 0.0019142*t2 + t3/189474.0) * deg2rad
	m := (357.52772 + 35999.050340*t - 0.0001603*t2 - t3/300000.0) * deg2rad
	mp := (134.96298 + 477198.867398*t + 0.0086972*t2 + t3/56250.0) * deg2rad
	f := (93.27191 + 483202.017538*t - 0.0036825*t2 + t3/327270.0) * deg2rad
	om := (125.04452 - 1934.136261*t + 0.0020708*t2 + t3/450000.0) * deg2rad

	var dpsi, deps float64
	for _, n := range nutationTerms {
		arg := n.d*d + n.m*m + n.mp*mp + n.f*f + n.om*om
		dpsi += (n.psi0 + n.psi1*t) * math.Sin(arg)
		deps += (n.eps0 + n.eps1*t) * math.Cos(arg)
	}
	dpsi *= 1e-4 * arcsec2rad
	deps *= 1e-4 * arcsec2rad

	eps0 := MeanObliquity(jdTT)
	return Nutation{
		DeltaPsi: dpsi,
		DeltaEps: deps,
		EpsMean:  eps0,
		EpsTrue:  eps0 + deps,
	}
}

// Apparent adds the nutation in longitude to a tropical longitude.
func (n Nutation) Apparent(t Tropical) Tropical {
	return NewTropical(float64(t) + n.DeltaPsi)
}

func sincos(a float64) (float64, float64) {
	return math.Sin(a), math.Cos(a)
}
