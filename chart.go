// Package jyotish computes sidereal birth charts: body longitudes, the
// ascendant, whole-sign houses, the birth nakshatra and the Vimshottari
// dasha hierarchy for one civil instant and place.
package jyotish

import (
	"fmt"

	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/ephemeris"
	"github.com/akhenakh/jyotish/frames"
	"github.com/akhenakh/jyotish/timescale"
)

// Input is everything needed to build a chart.
type Input struct {
	Civil    timescale.Civil
	Location Location
	Mode     dasha.Mode

	// Ayanamsa defaults to Lahiri when its offset is zero.
	Ayanamsa frames.AyanamsaModel
	// Source defaults to the built-in series when nil.
	Source ephemeris.Source
}

// Chart is the computed aggregate for one instant. It is immutable once
// built; accessors return copies.
type Chart struct {
	instant   timescale.Instant
	location  Location
	mode      dasha.Mode
	ayanamsa  frames.Ayanamsa
	ascendant frames.Sidereal
	houses    [12]House
	positions []ephemeris.Position
	nakshatra dasha.Nakshatra
	timeline  *dasha.Timeline
	nutation  frames.Nutation
}

// Compute runs the full pipeline: civil time to instant, body positions,
// ascendant, houses, nakshatra and dasha timeline.
func Compute(in Input) (*Chart, error) {
	inst, err := timescale.CivilToInstant(in.Civil)
	if err != nil {
		return nil, err
	}
	return ComputeAt(inst, in)
}

// ComputeAt builds a chart for an already resolved instant; in.Civil is
// ignored.
func ComputeAt(inst timescale.Instant, in Input) (*Chart, error) {
	if err := in.Location.Validate(); err != nil {
		return nil, err
	}
	model := in.Ayanamsa
	if model.J2000Arcsec == 0 {
		model = frames.Lahiri
	}
	src := in.Source
	if src == nil {
		src = ephemeris.SeriesSource{}
	}

	positions, err := ephemeris.Positions(src, inst.JDTT, model)
	if err != nil {
		return nil, fmt.Errorf("jyotish: positions: %w", err)
	}
	asc, err := in.Location.SiderealAscendant(inst, model)
	if err != nil {
		return nil, err
	}

	var moon frames.Sidereal
	for _, p := range positions {
		if p.Body == ephemeris.Moon {
			moon = p.Sidereal
		}
	}
	tl := dasha.Build(inst.JDTT, moon, in.Mode)

	return &Chart{
		instant:   inst,
		location:  in.Location,
		mode:      in.Mode,
		ayanamsa:  model.At(inst.JDTT),
		ascendant: asc,
		houses:    wholeSignHouses(asc),
		positions: positions,
		nakshatra: tl.Nakshatra,
		timeline:  tl,
		nutation:  frames.ComputeNutation(inst.JDTT),
	}, nil
}

// Instant returns the chart's moment in TT and UT.
func (c *Chart) Instant() timescale.Instant { return c.instant }

// Nutation returns the nutation angles and obliquities at the chart instant.
// They are reported alongside the mean-equinox longitudes and do not enter
// the ayanamsa.
func (c *Chart) Nutation() frames.Nutation { return c.nutation }

// Location returns the birth place.
func (c *Chart) Location() Location { return c.location }

// Mode returns the dasha mode used for the nakshatra and every period.
func (c *Chart) Mode() dasha.Mode { return c.mode }

// Ayanamsa returns the ayanamsa applied at the chart instant.
func (c *Chart) Ayanamsa() frames.Ayanamsa { return c.ayanamsa }

// Ascendant returns the sidereal ascendant.
func (c *Chart) Ascendant() frames.Sidereal { return c.ascendant }

// Houses returns the twelve whole-sign houses, first house first.
func (c *Chart) Houses() []House {
	hs := c.houses
	return hs[:]
}

// Positions returns every body in chart order.
func (c *Chart) Positions() []ephemeris.Position {
	out := make([]ephemeris.Position, len(c.positions))
	copy(out, c.positions)
	return out
}

// Position returns one body's position.
func (c *Chart) Position(b ephemeris.Body) (ephemeris.Position, bool) {
	for _, p := range c.positions {
		if p.Body == b {
			return p, true
		}
	}
	return ephemeris.Position{}, false
}

// Nakshatra returns the birth mansion resolved under the chart's mode.
func (c *Chart) Nakshatra() dasha.Nakshatra { return c.nakshatra }

// PlanetHouse returns the whole-sign house (1..12) of a body, or 0 when the
// body is not part of the chart.
func (c *Chart) PlanetHouse(b ephemeris.Body) int {
	p, ok := c.Position(b)
	if !ok {
		return 0
	}
	return houseOf(c.ascendant, p.Sidereal)
}

// Divisional places every body in the D-division chart.
func (c *Chart) Divisional(d int) ([]DivisionalPosition, error) {
	return divisional(c.positions, d)
}

// Periods returns the raw periods at a level.
func (c *Chart) Periods(level dasha.Level) []dasha.Period {
	return c.timeline.Periods(level)
}

// Mahadashas returns the nine top-level periods.
func (c *Chart) Mahadashas() []PeriodRecord {
	return periodRecords(c.timeline.Periods(dasha.Mahadasha))
}

// Antardashas returns the 81 second-level periods.
func (c *Chart) Antardashas() []PeriodRecord {
	return periodRecords(c.timeline.Periods(dasha.Antardasha))
}

// Pratyantardashas returns the 729 third-level periods.
func (c *Chart) Pratyantardashas() []PeriodRecord {
	return periodRecords(c.timeline.Periods(dasha.Pratyantardasha))
}

func (c *Chart) current(level dasha.Level, jdTT float64) (PeriodRecord, bool) {
	p, ok := c.timeline.At(level, jdTT)
	if !ok {
		return PeriodRecord{}, false
	}
	return newPeriodRecord(p), true
}

// CurrentMahadasha returns the mahadasha active at jdTT, if any.
func (c *Chart) CurrentMahadasha(jdTT float64) (PeriodRecord, bool) {
	return c.current(dasha.Mahadasha, jdTT)
}

// CurrentAntardasha returns the antardasha active at jdTT, if any.
func (c *Chart) CurrentAntardasha(jdTT float64) (PeriodRecord, bool) {
	return c.current(dasha.Antardasha, jdTT)
}

// CurrentPratyantardasha returns the pratyantardasha active at jdTT, if any.
func (c *Chart) CurrentPratyantardasha(jdTT float64) (PeriodRecord, bool) {
	return c.current(dasha.Pratyantardasha, jdTT)
}
