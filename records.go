package jyotish

import (
	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/timescale"
)

// PeriodRecord is the flat, printable form of one dasha period.
type PeriodRecord struct {
	Level           string  `json:"level"`
	Mahadasha       string  `json:"mahadasha"`
	Antardasha      string  `json:"antardasha,omitempty"`
	Pratyantardasha string  `json:"pratyantardasha,omitempty"`
	StartJD         float64 `json:"start_jd"`
	EndJD           float64 `json:"end_jd"`
	Start           string  `json:"start"` // YYYY-MM-DD
	End             string  `json:"end"`
	Mode            string  `json:"mode"`
}

func newPeriodRecord(p dasha.Period) PeriodRecord {
	r := PeriodRecord{
		Level:     p.Level.String(),
		Mahadasha: p.Path[0].String(),
		StartJD:   p.Start,
		EndJD:     p.End,
		Start:     timescale.FormatJD(p.Start),
		End:       timescale.FormatJD(p.End),
		Mode:      p.Mode.String(),
	}
	if p.Level >= dasha.Antardasha {
		r.Antardasha = p.Path[1].String()
	}
	if p.Level >= dasha.Pratyantardasha {
		r.Pratyantardasha = p.Path[2].String()
	}
	return r
}

func periodRecords(ps []dasha.Period) []PeriodRecord {
	out := make([]PeriodRecord, len(ps))
	for i, p := range ps {
		out[i] = newPeriodRecord(p)
	}
	return out
}

// BodyView is a body's longitudes in degrees. Apparent is the tropical
// longitude with the nutation in longitude added.
type BodyView struct {
	Body     string  `json:"body"`
	Tropical float64 `json:"tropical"`
	Apparent float64 `json:"apparent"`
	Sidereal float64 `json:"sidereal"`
	Sign     string  `json:"sign"`
	House    int     `json:"house"`
}

// NutationView holds the nutation terms, Δψ and Δε in arcseconds and the
// obliquities in degrees.
type NutationView struct {
	Longitude     float64 `json:"longitude_arcsec"`
	Obliquity     float64 `json:"obliquity_arcsec"`
	MeanObliquity float64 `json:"mean_obliquity"`
	TrueObliquity float64 `json:"true_obliquity"`
}

// NakshatraView is the resolved birth mansion.
type NakshatraView struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Pada     int     `json:"pada"`
	Lord     string  `json:"lord"`
	Fraction float64 `json:"fraction"`
}

// ChartView is the serializable form of a Chart. Angles are degrees in
// [0, 360).
type ChartView struct {
	JDTT             float64        `json:"jd_tt"`
	JDUT             float64        `json:"jd_ut"`
	Ayanamsa         float64        `json:"ayanamsa"`
	Ascendant        float64        `json:"ascendant"`
	AscendantSign    string         `json:"ascendant_sign"`
	Bodies           []BodyView     `json:"bodies"`
	Nakshatra        NakshatraView  `json:"nakshatra"`
	Nutation         NutationView   `json:"nutation"`
	Mode             string         `json:"mode"`
	Mahadashas       []PeriodRecord `json:"mahadashas"`
	Antardashas      []PeriodRecord `json:"antardashas"`
	Pratyantardashas []PeriodRecord `json:"pratyantardashas,omitempty"`
}

// View flattens the chart. Pratyantardashas are included only when full is
// set since there are 729 of them.
func (c *Chart) View(full bool) ChartView {
	v := ChartView{
		JDTT:          c.instant.JDTT,
		JDUT:          c.instant.JDUT,
		Ayanamsa:      c.ayanamsa.Degrees(),
		Ascendant:     c.ascendant.Degrees(),
		AscendantSign: SignNames[c.houses[0].Sign],
		Nakshatra: NakshatraView{
			Index:    c.nakshatra.Index,
			Name:     c.nakshatra.Name,
			Pada:     c.nakshatra.Pada,
			Lord:     c.nakshatra.Lord.String(),
			Fraction: c.nakshatra.Fraction,
		},
		Nutation: NutationView{
			Longitude:     c.nutation.DeltaPsi * rad2deg * 3600,
			Obliquity:     c.nutation.DeltaEps * rad2deg * 3600,
			MeanObliquity: c.nutation.EpsMean * rad2deg,
			TrueObliquity: c.nutation.EpsTrue * rad2deg,
		},
		Mode:        c.mode.String(),
		Mahadashas:  c.Mahadashas(),
		Antardashas: c.Antardashas(),
	}
	for _, p := range c.positions {
		v.Bodies = append(v.Bodies, BodyView{
			Body:     p.Body.String(),
			Tropical: p.Tropical.Degrees(),
			Apparent: c.nutation.Apparent(p.Tropical).Degrees(),
			Sidereal: p.Sidereal.Degrees(),
			Sign:     SignNames[SignOf(p.Sidereal.Degrees())],
			House:    houseOf(c.ascendant, p.Sidereal),
		})
	}
	if full {
		v.Pratyantardashas = c.Pratyantardashas()
	}
	return v
}
