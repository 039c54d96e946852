package frames

import "github.com/akhenakh/jyotish/timescale"

// PrecessionLongitude returns the general precession in longitude
// accumulated since J2000, in radians (IAU 2006).
func PrecessionLongitude(jdTT float64) float64 {
	t := timescale.Centuries(jdTT)
	psi := 5028.796195*t + 1.1054348*t*t + 0.00007964*t*t*t
	return psi * arcsec2rad
}

// MeanObliquity returns the mean obliquity of the ecliptic in radians.
func MeanObliquity(jdTT float64) float64 {
	t := timescale.Centuries(jdTT)
	eps := 84381.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return eps * arcsec2rad
}

// ObliquityJ2000 is the IAU 2006 obliquity of the ecliptic at J2000,
// the rotation between the ICRF equator and the J2000 ecliptic.
const ObliquityJ2000 = 84381.406 * arcsec2rad

// EquatorialToEcliptic rotates an equatorial rectangular vector about the
// x axis by the obliquity eps.
func EquatorialToEcliptic(x, y, z, eps float64) (float64, float64, float64) {
	sinE, cosE := sincos(eps)
	return x, y*cosE + z*sinE, -y*sinE + z*cosE
}
