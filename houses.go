package jyotish

import "github.com/akhenakh/jyotish/frames"

// House is one whole-sign house.
type House struct {
	Number int             // 1..12
	Sign   int             // 0 = Aries
	Cusp   frames.Sidereal // start of the sign
}

// SignName returns the house's sign name.
func (h House) SignName() string {
	return SignNames[h.Sign]
}

// wholeSignHouses lays out twelve houses, the first on the ascendant's sign.
func wholeSignHouses(asc frames.Sidereal) [12]House {
	first := SignOf(asc.Degrees())
	var hs [12]House
	for i := range hs {
		sign := (first + i) % 12
		hs[i] = House{
			Number: i + 1,
			Sign:   sign,
			Cusp:   frames.SiderealFromDegrees(float64(sign) * SignSpan),
		}
	}
	return hs
}

// houseOf returns the 1-based whole-sign house of lon counted from the
// ascendant's sign.
func houseOf(asc, lon frames.Sidereal) int {
	ascSign := SignOf(asc.Degrees())
	sign := SignOf(lon.Degrees())
	return (sign-ascSign+12)%12 + 1
}
