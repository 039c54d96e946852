package jyotish

import (
	"fmt"
	"math"

	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/ephemeris"
	"github.com/akhenakh/jyotish/frames"
	"github.com/akhenakh/jyotish/timescale"
)

// Ingress is a body entering a new nakshatra.
type Ingress struct {
	Body ephemeris.Body
	JD   float64 // JD TT of the crossing
	Date string  // YYYY-MM-DD
	From dasha.Nakshatra
	To   dasha.Nakshatra
}

// TransitSearch configures FindIngresses.
type TransitSearch struct {
	Source   ephemeris.Source     // nil for the built-in series
	Ayanamsa frames.AyanamsaModel // zero for Lahiri
	Mode     dasha.Mode
}

// siderealAt returns the body's sidereal longitude at jdTT.
func (s TransitSearch) siderealAt(body ephemeris.Body, jdTT float64) (frames.Sidereal, error) {
	target := body
	if body == ephemeris.Ketu {
		target = ephemeris.Rahu
	}
	trop, err := ephemeris.TropicalLongitude(s.Source, target, jdTT)
	if err != nil {
		return 0, err
	}
	sid := s.Ayanamsa.ToSidereal(trop, jdTT)
	if body == ephemeris.Ketu {
		sid = sid.Opposite()
	}
	return sid, nil
}

func (s TransitSearch) mansionAt(body ephemeris.Body, jdTT float64) (dasha.Nakshatra, error) {
	sid, err := s.siderealAt(body, jdTT)
	if err != nil {
		return dasha.Nakshatra{}, err
	}
	return dasha.Resolve(sid, s.Mode), nil
}

// findIngress bisects [t1, t2] for the instant the mansion index leaves
// from. The result is accurate to about a second.
func (s TransitSearch) findIngress(body ephemeris.Body, t1, t2 float64, from int) (float64, error) {
	const tolerance = 1.0 / timescale.SecondsPerDay
	for i := 0; i < 50 && math.Abs(t2-t1) > tolerance; i++ {
		tmid := (t1 + t2) / 2
		n, err := s.mansionAt(body, tmid)
		if err != nil {
			return 0, err
		}
		if n.Index == from {
			t1 = tmid
		} else {
			t2 = tmid
		}
	}
	return t2, nil
}

// FindIngresses returns every nakshatra change of body between startJD and
// endJD (TT), in time order. Retrograde motion produces backward ingresses.
func (s TransitSearch) FindIngresses(body ephemeris.Body, startJD, endJD float64) ([]Ingress, error) {
	const (
		stepSize     = 0.25 // days, well under the Moon's ~1 day per mansion
		maxIngresses = 10000
	)
	if s.Source == nil {
		s.Source = ephemeris.SeriesSource{}
	}
	if s.Ayanamsa.J2000Arcsec == 0 {
		s.Ayanamsa = frames.Lahiri
	}
	if endJD <= startJD {
		return nil, fmt.Errorf("ingress search: end %.5f is not after start %.5f", endJD, startJD)
	}

	var out []Ingress
	last, err := s.mansionAt(body, startJD)
	if err != nil {
		return nil, fmt.Errorf("mansion calculation failed at jd=%f: %w", startJD, err)
	}
	prevT := startJD

	for t := startJD + stepSize; prevT < endJD; t += stepSize {
		if t > endJD {
			t = endJD
		}
		n, err := s.mansionAt(body, t)
		if err != nil {
			return nil, fmt.Errorf("mansion calculation failed at jd=%f: %w", t, err)
		}
		if n.Index != last.Index {
			jd, err := s.findIngress(body, prevT, t, last.Index)
			if err != nil {
				return nil, err
			}
			to, err := s.mansionAt(body, jd)
			if err != nil {
				return nil, err
			}
			out = append(out, Ingress{
				Body: body,
				JD:   jd,
				Date: timescale.FormatJD(jd),
				From: last,
				To:   to,
			})
			if len(out) >= maxIngresses {
				break
			}
		}
		last = n
		prevT = t
	}
	return out, nil
}
