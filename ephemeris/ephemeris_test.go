package ephemeris

import (
	"math"
	"testing"

	"github.com/akhenakh/jyotish/frames"
	"github.com/akhenakh/jyotish/timescale"
)

const rad2deg = 180.0 / math.Pi

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return math.Abs(d)
}

func TestEarthHeliocentric(t *testing.T) {
	// 1992 October 13.0 TD
	v, err := SeriesSource{}.Heliocentric(Earth, 2448908.5)
	if err != nil {
		t.Fatal(err)
	}
	e := ToEcliptic(v)
	tests := []struct {
		name    string
		got     float64
		want    float64
		epsilon float64
	}{
		{"L", e.Longitude * rad2deg, 19.907372, 1e-5},
		{"B", e.Latitude * rad2deg, -0.000179, 1e-5},
		{"R", e.Distance, 0.99760775, 1e-7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.epsilon {
				t.Errorf("%s = %.7f, want %.7f (±%g)", tt.name, tt.got, tt.want, tt.epsilon)
			}
		})
	}
}

func TestPlanetsAtJ2000(t *testing.T) {
	tests := []struct {
		body Body
		lon  float64
		dist float64
	}{
		{Mercury, 253.783, 0.4665},
		{Venus, 182.604, 0.7202},
		{Mars, 359.447, 1.3912},
		{Jupiter, 36.295, 4.9654},
		{Saturn, 45.722, 9.1837},
	}
	for _, tt := range tests {
		t.Run(tt.body.String(), func(t *testing.T) {
			v, err := SeriesSource{}.Heliocentric(tt.body, timescale.J2000)
			if err != nil {
				t.Fatal(err)
			}
			e := ToEcliptic(v)
			if d := angleDiff(e.Longitude*rad2deg, tt.lon); d > 0.01 {
				t.Errorf("longitude = %.4f, want %.4f", e.Longitude*rad2deg, tt.lon)
			}
			if math.Abs(e.Distance-tt.dist) > 0.001 {
				t.Errorf("distance = %.4f, want %.4f", e.Distance, tt.dist)
			}
		})
	}
}

func TestGeocentricLongitudes(t *testing.T) {
	tests := []struct {
		name string
		body Body
		jd   float64
		want float64
		eps  float64
	}{
		{"Sun 1992 Oct 13", Sun, 2448908.5, 199.907372, 1e-4},
		{"Venus 1992 Dec 20", Venus, 2448976.5, 313.08102, 1e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeocentricLongitude(SeriesSource{}, tt.body, tt.jd)
			if err != nil {
				t.Fatal(err)
			}
			if d := angleDiff(got.Degrees(), tt.want); d > tt.eps {
				t.Errorf("λ = %.6f, want %.6f (±%g)", got.Degrees(), tt.want, tt.eps)
			}
		})
	}
}

type call struct {
	body Body
	jd   float64
}

type linearSource struct {
	calls []call
	speed float64
}

func (s *linearSource) Heliocentric(body Body, jd float64) (Vector, error) {
	s.calls = append(s.calls, call{body, jd})
	if body == Earth {
		return Vector{}, nil
	}
	return Vector{X: 10, Y: s.speed * (jd - 2451545.0)}, nil
}

func TestGeocentricSingleLightTimePass(t *testing.T) {
	src := &linearSource{speed: 0.01}
	v, err := Geocentric(src, Mars, 2451545.0)
	if err != nil {
		t.Fatal(err)
	}
	delay := 10 / SpeedOfLight
	if math.Abs(v.Y-(-0.01*delay)) > 1e-10 {
		t.Errorf("Y = %g, want %g", v.Y, -0.01*delay)
	}
	want := []call{{Earth, 2451545.0}, {Mars, 2451545.0}, {Mars, 2451545.0 - delay}}
	if len(src.calls) != len(want) {
		t.Fatalf("got %d evaluations, want %d", len(src.calls), len(want))
	}
	for i, c := range want {
		if src.calls[i] != c {
			t.Errorf("evaluation %d = %+v, want %+v", i, src.calls[i], c)
		}
	}
}

func TestSunIsNegatedEarth(t *testing.T) {
	jd := 2460000.5
	earth, _ := SeriesSource{}.Heliocentric(Earth, jd)
	sun, err := Geocentric(SeriesSource{}, Sun, jd)
	if err != nil {
		t.Fatal(err)
	}
	if sun != earth.Neg() {
		t.Errorf("Sun = %+v, want %+v", sun, earth.Neg())
	}
}

func TestMoonLongitude(t *testing.T) {
	// 1992 April 12, 0h TD
	jd := 2448724.5
	if got := MoonLongitude(jd).Degrees(); math.Abs(got-133.162655) > 1e-5 {
		t.Errorf("λ = %.6f, want 133.162655", got)
	}
	if got := MoonMeanLongitude(jd).Degrees(); math.Abs(got-134.290182) > 1e-5 {
		t.Errorf("L′ = %.6f, want 134.290182", got)
	}
}

func TestNodes(t *testing.T) {
	jd := 2448724.5
	if got := MeanNode(jd).Degrees(); math.Abs(got-274.400656) > 1e-5 {
		t.Errorf("mean node = %.6f, want 274.400656", got)
	}
	if got := TrueNode(jd).Degrees(); math.Abs(got-273.737529) > 1e-5 {
		t.Errorf("true node = %.6f, want 273.737529", got)
	}
	for _, jd := range []float64{2415020.5, 2451545.0, 2469807.5} {
		diff := angleDiff(SouthNode(jd).Degrees(), TrueNode(jd).Degrees())
		if math.Abs(diff-180) > 1e-9 {
			t.Errorf("JD %.1f: Ketu − Rahu = %v, want 180", jd, diff)
		}
		if d := angleDiff(TrueNode(jd).Degrees(), MeanNode(jd).Degrees()); d > 2 {
			t.Errorf("JD %.1f: true node %.3f° from mean node", jd, d)
		}
	}
}

func TestPositions(t *testing.T) {
	jd := timescale.CalendarToJD(1985, 6, 15, 8.25)
	first, err := Positions(SeriesSource{}, jd, frames.Lahiri)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(Bodies) {
		t.Fatalf("got %d positions, want %d", len(first), len(Bodies))
	}
	for i, p := range first {
		if p.Body != Bodies[i] {
			t.Errorf("position %d is %s, want %s", i, p.Body, Bodies[i])
		}
		s := p.Sidereal.Radians()
		if s < 0 || s >= 2*math.Pi {
			t.Errorf("%s sidereal %v outside [0, 2π)", p.Body, s)
		}
	}

	rahu, ketu := first[7], first[8]
	if d := angleDiff(ketu.Sidereal.Degrees(), rahu.Sidereal.Degrees()); math.Abs(d-180) > 1e-9 {
		t.Errorf("Ketu − Rahu = %v, want 180", d)
	}

	ayan := frames.Lahiri.At(jd).Degrees()
	for _, p := range first {
		if d := angleDiff(p.Tropical.Degrees()-p.Sidereal.Degrees(), ayan); d > 1e-9 {
			t.Errorf("%s: tropical − sidereal differs from ayanamsa by %v", p.Body, d)
		}
	}

	again, err := Positions(SeriesSource{}, jd, frames.Lahiri)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("run 2 differs at %d: %+v vs %+v", i, first[i], again[i])
		}
	}
}

func TestParseBody(t *testing.T) {
	b, err := ParseBody("jupiter")
	if err != nil || b != Jupiter {
		t.Errorf("ParseBody(jupiter) = %v, %v", b, err)
	}
	if _, err := ParseBody("Pluto"); err == nil {
		t.Error("ParseBody(Pluto) should fail")
	}
	if Body(42).String() != "Body(42)" {
		t.Errorf("Body(42).String() = %q", Body(42).String())
	}
}

func TestTropicalLongitudeDispatch(t *testing.T) {
	for _, b := range Bodies {
		want := b >= Mercury && b <= Saturn
		if b.IsPlanet() != want {
			t.Errorf("%s.IsPlanet() = %v", b, b.IsPlanet())
		}
	}
	if Earth.IsPlanet() {
		t.Error("Earth is not a chart planet")
	}
	for _, b := range []Body{Earth, Ketu} {
		if _, err := TropicalLongitude(SeriesSource{}, b, timescale.J2000); err == nil {
			t.Errorf("TropicalLongitude(%s) should fail", b)
		}
	}
}

func TestICRFRotation(t *testing.T) {
	// The ICRF north pole maps to ecliptic latitude 90° − ε at J2000.
	v := icrfToEclipticOfDate(Vector{Z: 1}, timescale.J2000)
	if got, want := v.Latitude(), math.Pi/2-frames.ObliquityJ2000; math.Abs(got-want) > 1e-12 {
		t.Errorf("latitude = %v, want %v", got, want)
	}
	// Precession moves longitudes forward by the precession angle.
	jd := timescale.J2000 + timescale.DaysPerCentury
	u := icrfToEclipticOfDate(Vector{X: 1}, jd)
	if d := angleDiff(u.Longitude()*rad2deg, frames.PrecessionLongitude(jd)*rad2deg); d > 1e-9 {
		t.Errorf("equinox longitude off by %v°", d)
	}
}
