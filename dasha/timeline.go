package dasha

import "github.com/akhenakh/jyotish/frames"

// Timeline is the full Vimshottari hierarchy anchored to a birth instant:
// nine mahadashas, each holding nine antardashas, each holding nine
// pratyantardashas.
type Timeline struct {
	Birth      float64 // JD TT
	Mode       Mode
	Nakshatra  Nakshatra
	Mahadashas []Period
}

// Build resolves the birth nakshatra from the sidereal Moon and lays out the
// hierarchy. The first mahadasha belongs to the nakshatra's lord and starts
// before birth by the elapsed fraction of that lord's full span.
func Build(birthJD float64, moon frames.Sidereal, mode Mode) *Timeline {
	nak := Resolve(moon, mode)
	elapsed := nak.Fraction * nak.Lord.Years() * SiderealYear
	start := birthJD - elapsed

	return &Timeline{
		Birth:      birthJD,
		Mode:       mode,
		Nakshatra:  nak,
		Mahadashas: subdivide(start, start+CycleDays, nak.Lord, Mahadasha, [3]Lord{}, mode),
	}
}

// Start returns the beginning of the first mahadasha.
func (t *Timeline) Start() float64 {
	return t.Mahadashas[0].Start
}

// End returns the end of the last mahadasha.
func (t *Timeline) End() float64 {
	return t.Mahadashas[len(t.Mahadashas)-1].End
}

// Periods returns every period at the given level in chronological order.
func (t *Timeline) Periods(level Level) []Period {
	switch level {
	case Mahadasha:
		return t.Mahadashas
	case Antardasha:
		out := make([]Period, 0, 81)
		for _, m := range t.Mahadashas {
			out = append(out, m.Sub...)
		}
		return out
	case Pratyantardasha:
		out := make([]Period, 0, 729)
		for _, m := range t.Mahadashas {
			for _, a := range m.Sub {
				out = append(out, a.Sub...)
			}
		}
		return out
	}
	return nil
}

// At returns the period at the given level active at jd. The boolean is
// false when jd lies outside the timeline.
func (t *Timeline) At(level Level, jd float64) (Period, bool) {
	if level < Mahadasha || level > Pratyantardasha {
		return Period{}, false
	}
	p, ok := find(t.Mahadashas, jd)
	for l := Mahadasha; ok && l < level; l++ {
		p, ok = find(p.Sub, jd)
	}
	return p, ok
}

// CurrentMahadasha returns the mahadasha active at jd.
func (t *Timeline) CurrentMahadasha(jd float64) (Period, bool) {
	return t.At(Mahadasha, jd)
}

// CurrentAntardasha returns the antardasha active at jd.
func (t *Timeline) CurrentAntardasha(jd float64) (Period, bool) {
	return t.At(Antardasha, jd)
}

// CurrentPratyantardasha returns the pratyantardasha active at jd.
func (t *Timeline) CurrentPratyantardasha(jd float64) (Period, bool) {
	return t.At(Pratyantardasha, jd)
}
