package dasha

import (
	"math"

	"github.com/akhenakh/jyotish/frames"
)

const (
	// MansionSpan is the width of one nakshatra in degrees (13°20′).
	MansionSpan = 360.0 / 27.0

	// PadaSpan is the width of one quarter of a nakshatra.
	PadaSpan = MansionSpan / 4.0
)

// MansionNames are the 27 nakshatras from 0° sidereal.
var MansionNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// MansionLord returns the ruler of nakshatra index i; the nine lords repeat
// three times around the zodiac.
func MansionLord(i int) Lord {
	return Lords[i%9]
}

// Nakshatra is the resolved lunar mansion for a longitude.
type Nakshatra struct {
	Index    int     // 0..26
	Name     string  // mansion name
	Pada     int     // 1..4
	Lord     Lord    // ruling lord
	Fraction float64 // elapsed fraction of the mansion, [0, 1)
}

// Resolve maps a sidereal longitude onto its nakshatra. Indexing is
// floor-based, so a longitude exactly on a boundary belongs to the mansion
// that starts there.
func Resolve(lon frames.Sidereal, mode Mode) Nakshatra {
	deg := frames.NormalizeDegrees(mode.adjust(lon.Degrees()))

	idx := int(math.Floor(deg / MansionSpan))
	if idx > 26 {
		idx = 26
	}
	rem := deg - float64(idx)*MansionSpan
	frac := rem / MansionSpan
	if frac < 0 {
		frac = 0
	}
	if frac >= 1 {
		frac = math.Nextafter(1, 0)
	}
	pada := int(math.Floor(rem/PadaSpan)) + 1
	if pada < 1 {
		pada = 1
	}
	if pada > 4 {
		pada = 4
	}
	return Nakshatra{
		Index:    idx,
		Name:     MansionNames[idx],
		Pada:     pada,
		Lord:     MansionLord(idx),
		Fraction: frac,
	}
}

// MansionStart returns the sidereal longitude in degrees where nakshatra i
// begins.
func MansionStart(i int) float64 {
	return float64(i%27) * MansionSpan
}
