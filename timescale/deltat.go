package timescale

// deltaTSegment is one independently fitted ΔT polynomial. Segments are
// evaluated with their own coefficients only, so adjacent fits may disagree
// slightly at the boundary.
type deltaTSegment struct {
	until float64 // exclusive upper bound in decimal years
	eval  func(y float64) float64
}

// Espenak & Meeus polynomial fits (NASA eclipse pages), seconds.
var deltaTSegments = []deltaTSegment{
	{-500, func(y float64) float64 {
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}},
	{500, func(y float64) float64 {
		u := y / 100
		return poly(u, 10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521)
	}},
	{1600, func(y float64) float64 {
		u := (y - 1000) / 100
		return poly(u, 1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073)
	}},
	{1700, func(y float64) float64 {
		t := y - 1600
		return poly(t, 120, -0.9808, -0.01532, 1.0/7129)
	}},
	{1800, func(y float64) float64 {
		t := y - 1700
		return poly(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000)
	}},
	{1860, func(y float64) float64 {
		t := y - 1800
		return poly(t, 13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436, 0.0000121272, -0.0000001699, 0.000000000875)
	}},
	{1900, func(y float64) float64 {
		t := y - 1860
		return poly(t, 7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174)
	}},
	{1920, func(y float64) float64 {
		t := y - 1900
		return poly(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	}},
	{1941, func(y float64) float64 {
		t := y - 1920
		return poly(t, 21.20, 0.84493, -0.076100, 0.0020936)
	}},
	{1961, func(y float64) float64 {
		t := y - 1950
		return poly(t, 29.07, 0.407, -1.0/233, 1.0/2547)
	}},
	{1986, func(y float64) float64 {
		t := y - 1975
		return poly(t, 45.45, 1.067, -1.0/260, -1.0/718)
	}},
	{2005, func(y float64) float64 {
		t := y - 2000
		return poly(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	}},
	{2050, func(y float64) float64 {
		t := y - 2000
		return poly(t, 62.92, 0.32217, 0.005589)
	}},
	{2150, func(y float64) float64 {
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	}},
}

func deltaTLongTerm(y float64) float64 {
	u := (y - 1820) / 100
	return -20 + 32*u*u
}

// DeltaT returns TT − UT in seconds for the given Julian Day (UT).
func DeltaT(jdUT float64) float64 {
	y := DecimalYear(jdUT)
	for _, s := range deltaTSegments {
		if y < s.until {
			return s.eval(y)
		}
	}
	return deltaTLongTerm(y)
}

// poly evaluates c[0] + c[1]x + c[2]x² + ... with Horner's scheme.
func poly(x float64, c ...float64) float64 {
	r := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}
