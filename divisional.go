package jyotish

import (
	"math"

	"github.com/akhenakh/jyotish/ephemeris"
	"github.com/akhenakh/jyotish/frames"
)

// MaxDivision is the highest supported divisional chart.
const MaxDivision = 30

// DivisionalPosition is a body placed in a divisional chart.
type DivisionalPosition struct {
	Body   ephemeris.Body
	Sign   int     // 0 = Aries
	Degree float64 // natal degrees elapsed within the part, [0, 30/d)
}

// SignName returns the sign name.
func (d DivisionalPosition) SignName() string {
	return SignNames[d.Sign]
}

// Divide maps a sidereal longitude into the D-division: the zodiac is cut
// into 12·d equal parts and the parts cycle through the signs from Aries.
func Divide(lon frames.Sidereal, d int) (sign int, degree float64, err error) {
	if d < 1 || d > MaxDivision {
		return 0, 0, &DivisionError{Division: d}
	}
	part := 360.0 / float64(12*d)
	x := lon.Degrees() / part
	idx := math.Floor(x)
	sign = int(idx) % 12
	degree = (x - idx) * SignSpan / float64(d)
	return sign, degree, nil
}

// divisional places every position in the D-division.
func divisional(ps []ephemeris.Position, d int) ([]DivisionalPosition, error) {
	if d < 1 || d > MaxDivision {
		return nil, &DivisionError{Division: d}
	}
	out := make([]DivisionalPosition, len(ps))
	for i, p := range ps {
		sign, deg, err := Divide(p.Sidereal, d)
		if err != nil {
			return nil, err
		}
		out[i] = DivisionalPosition{Body: p.Body, Sign: sign, Degree: deg}
	}
	return out, nil
}
