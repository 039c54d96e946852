package timescale

import "math"

const (
	twoPi   = 2 * math.Pi
	deg2rad = math.Pi / 180.0
)

// GreenwichSiderealTime returns the mean sidereal time at Greenwich, in
// radians within [0, 2π), for a Julian Day in UT.
func GreenwichSiderealTime(jdUT float64) float64 {
	t := Centuries(jdUT)

	gmstDeg := 280.46061837 +
		360.98564736629*(jdUT-J2000) +
		0.000387933*t*t -
		t*t*t/38710000.0

	gmstDeg = math.Mod(gmstDeg, 360.0)
	if gmstDeg < 0 {
		gmstDeg += 360.0
	}
	return gmstDeg * deg2rad
}

// LocalSiderealTime adds the observer's east longitude (degrees) to GMST.
func LocalSiderealTime(jdUT, longitudeDeg float64) float64 {
	lst := math.Mod(GreenwichSiderealTime(jdUT)+longitudeDeg*deg2rad, twoPi)
	if lst < 0 {
		lst += twoPi
	}
	return lst
}
