package ephemeris

import "math"

// term is one periodic component A·cos(B + C·τ), with A in 1e-8 units.
type term struct {
	a, b, c float64
}

// series holds one term list per power of τ.
type series [][]term

// eval sums Σ τ^i Σ A cos(B + C τ) over every power i.
func (s series) eval(tau float64) float64 {
	sum := 0.0
	pow := 1.0
	for _, terms := range s {
		partial := 0.0
		for _, t := range terms {
			partial += t.a * math.Cos(t.b+t.c*tau)
		}
		sum += partial * pow
		pow *= tau
	}
	return sum * 1e-8
}

// planetTheory is the heliocentric longitude, latitude and radius series of
// one planet, referred to the ecliptic and equinox of date.
type planetTheory struct {
	l, b, r series
}

// position evaluates the theory at tau Julian millennia from J2000 (TT) and
// returns the heliocentric rectangular vector.
func (p *planetTheory) position(tau float64) Vector {
	return FromSpherical(p.l.eval(tau), p.b.eval(tau), p.r.eval(tau))
}
