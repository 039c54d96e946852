package frames

// Ayanamsa is the offset in radians between the tropical and sidereal
// zodiac origins at some instant.
type Ayanamsa float64

// Degrees returns the ayanamsa in degrees.
func (a Ayanamsa) Degrees() float64 { return float64(a) * rad2deg }

// LahiriJ2000Arcsec is the Lahiri (Chitra Paksha) ayanamsa at J2000,
// 23°51′45″.
const LahiriJ2000Arcsec = 23*3600 + 51*60 + 45

// AyanamsaModel computes the ayanamsa as a fixed J2000 offset plus the
// general precession in longitude since J2000.
type AyanamsaModel struct {
	J2000Arcsec float64
}

// Lahiri is the default ayanamsa model.
var Lahiri = AyanamsaModel{J2000Arcsec: LahiriJ2000Arcsec}

// At returns the ayanamsa for a Julian Day in TT.
func (m AyanamsaModel) At(jdTT float64) Ayanamsa {
	return Ayanamsa(m.J2000Arcsec*arcsec2rad + PrecessionLongitude(jdTT))
}

// ToSidereal converts a tropical longitude at jdTT into the sidereal frame.
func (m AyanamsaModel) ToSidereal(t Tropical, jdTT float64) Sidereal {
	return t.Sidereal(m.At(jdTT))
}

// LahiriAyanamsa returns the Lahiri ayanamsa for a Julian Day in TT.
func LahiriAyanamsa(jdTT float64) Ayanamsa {
	return Lahiri.At(jdTT)
}
