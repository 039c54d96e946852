package jyotish

import "math"

// Angular constants
const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// SignSpan is the width of one zodiac sign in degrees.
	SignSpan = 30.0
)

// SignNames are the twelve sidereal signs from 0°.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf returns the sign index (0 = Aries) holding a longitude in degrees.
func SignOf(deg float64) int {
	s := int(math.Floor(deg / SignSpan))
	if s > 11 {
		s = 11
	}
	if s < 0 {
		s = 0
	}
	return s
}
