package jyotish

import (
	"errors"
	"math"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/ephemeris"
	"github.com/akhenakh/jyotish/timescale"
)

// New Delhi, 1990-05-15 08:30 IST.
var delhiInput = Input{
	Civil:    timescale.Civil{Year: 1990, Month: 5, Day: 15, Hour: 8, Minute: 30, UTCOffset: 5.5},
	Location: Location{Latitude: 28.6139, Longitude: 77.2090},
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return math.Abs(d)
}

func TestComputeDelhi(t *testing.T) {
	c, err := Compute(delhiInput)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	inst := c.Instant()
	if math.Abs(inst.JDUT-2448026.625) > 1e-9 {
		t.Errorf("JDUT = %.9f, want 2448026.625", inst.JDUT)
	}
	if math.Abs(inst.DeltaT()-57.135) > 0.01 {
		t.Errorf("ΔT = %.3f, want 57.135", inst.DeltaT())
	}

	tests := []struct {
		name    string
		got     float64
		want    float64
		epsilon float64
	}{
		{"Ayanamsa", c.Ayanamsa().Degrees(), 23.727944, 1e-5},
		{"Ascendant", c.Ascendant().Degrees(), 73.920779, 1e-3},
	}
	sidereal := map[ephemeris.Body]float64{
		ephemeris.Sun:     30.30895,
		ephemeris.Moon:    268.81452,
		ephemeris.Mercury: 14.33714,
		ephemeris.Venus:   348.66377,
		ephemeris.Mars:    324.32650,
		ephemeris.Jupiter: 75.74375,
		ephemeris.Saturn:  271.52217,
		ephemeris.Rahu:    286.77235,
		ephemeris.Ketu:    106.77235,
	}
	for b, want := range sidereal {
		p, ok := c.Position(b)
		if !ok {
			t.Fatalf("missing %s", b)
		}
		tests = append(tests, struct {
			name    string
			got     float64
			want    float64
			epsilon float64
		}{b.String(), p.Sidereal.Degrees(), want, 1e-3})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if angleDiff(tt.got, tt.want) > tt.epsilon {
				t.Errorf("%s = %.5f, want %.5f (±%.0e)", tt.name, tt.got, tt.want, tt.epsilon)
			}
		})
	}
}

func TestChartNakshatraAndDasha(t *testing.T) {
	c, err := Compute(delhiInput)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	n := c.Nakshatra()
	if n.Index != 20 || n.Name != "Uttara Ashadha" || n.Pada != 1 || n.Lord != dasha.Sun {
		t.Errorf("nakshatra = %+v, want Uttara Ashadha pada 1 ruled by Sun", n)
	}
	if math.Abs(n.Fraction-0.16109) > 1e-4 {
		t.Errorf("fraction = %.5f, want 0.16109", n.Fraction)
	}

	maha := c.Mahadashas()
	if len(maha) != 9 {
		t.Fatalf("got %d mahadashas", len(maha))
	}
	want := []struct{ lord, start, end string }{
		{"Sun", "1989-05-27", "1995-05-27"},
		{"Moon", "1995-05-27", "2005-05-27"},
		{"Mars", "2005-05-27", "2012-05-26"},
		{"Rahu", "2012-05-26", "2030-05-27"},
	}
	for i, w := range want {
		if maha[i].Mahadasha != w.lord || maha[i].Start != w.start || maha[i].End != w.end {
			t.Errorf("mahadasha %d = %s %s..%s, want %s %s..%s", i, maha[i].Mahadasha, maha[i].Start, maha[i].End, w.lord, w.start, w.end)
		}
	}
	if len(c.Antardashas()) != 81 || len(c.Pratyantardashas()) != 729 {
		t.Errorf("period counts = %d/%d, want 81/729", len(c.Antardashas()), len(c.Pratyantardashas()))
	}

	birth := c.Instant().JDTT
	m, ok := c.CurrentMahadasha(birth)
	if !ok || m.Mahadasha != "Sun" {
		t.Errorf("mahadasha at birth = %+v, %v", m, ok)
	}
	a, ok := c.CurrentAntardasha(birth)
	if !ok || a.Mahadasha != "Sun" || a.Antardasha == "" {
		t.Errorf("antardasha at birth = %+v, %v", a, ok)
	}
	p, ok := c.CurrentPratyantardasha(birth)
	if !ok || p.Antardasha != a.Antardasha || p.Pratyantardasha == "" {
		t.Errorf("pratyantardasha at birth = %+v, %v", p, ok)
	}

	if _, ok := c.CurrentMahadasha(maha[8].EndJD); ok {
		t.Error("lookup at the cycle end should be none")
	}
	if next, ok := c.CurrentMahadasha(maha[0].EndJD); !ok || next.Mahadasha != "Moon" {
		t.Errorf("lookup at first boundary = %+v, want Moon", next)
	}
}

func TestChartHouses(t *testing.T) {
	c, err := Compute(delhiInput)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	hs := c.Houses()
	if len(hs) != 12 {
		t.Fatalf("got %d houses", len(hs))
	}
	if hs[0].SignName() != "Gemini" || hs[11].SignName() != "Taurus" {
		t.Errorf("houses start %s end %s, want Gemini..Taurus", hs[0].SignName(), hs[11].SignName())
	}
	for i, h := range hs {
		if h.Number != i+1 {
			t.Errorf("house %d numbered %d", i, h.Number)
		}
	}

	houses := map[ephemeris.Body]int{
		ephemeris.Sun:     12,
		ephemeris.Moon:    7,
		ephemeris.Jupiter: 1,
		ephemeris.Mars:    9,
		ephemeris.Venus:   10,
	}
	for b, want := range houses {
		if got := c.PlanetHouse(b); got != want {
			t.Errorf("PlanetHouse(%s) = %d, want %d", b, got, want)
		}
	}
	if got := c.PlanetHouse(ephemeris.Earth); got != 0 {
		t.Errorf("PlanetHouse(Earth) = %d, want 0", got)
	}
}

func TestChartModes(t *testing.T) {
	in := delhiInput
	in.Mode = dasha.CompatibilityAdjusted
	c, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if c.Mode() != dasha.CompatibilityAdjusted {
		t.Errorf("mode = %v", c.Mode())
	}
	// 0.25° is far from a boundary here, so the mansion is unchanged.
	if c.Nakshatra().Index != 20 {
		t.Errorf("index = %d, want 20", c.Nakshatra().Index)
	}
	for _, r := range c.Mahadashas() {
		if r.Mode != "compatibility" {
			t.Fatalf("record %+v lost the mode", r)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, err := Compute(delhiInput)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(delhiInput)
	if err != nil {
		t.Fatal(err)
	}
	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("position %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
	if a.Ascendant() != b.Ascendant() {
		t.Error("ascendant differs between runs")
	}
	ra, rb := a.Pratyantardashas(), b.Pratyantardashas()
	for i := range ra {
		if ra[i] != rb[i] {
			t.Fatalf("period %d differs", i)
		}
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	in := delhiInput
	in.Civil.Day = 31
	in.Civil.Month = 4
	_, err := Compute(in)
	var ce *timescale.CalendarError
	if !errors.As(err, &ce) || ce.Field != "day" {
		t.Errorf("April 31 error = %v, want day CalendarError", err)
	}

	in = delhiInput
	in.Location.Latitude = 91
	if _, err := Compute(in); !errors.Is(err, ErrInvalidLatitude) {
		t.Errorf("latitude 91 error = %v, want ErrInvalidLatitude", err)
	}
	in = delhiInput
	in.Location.Longitude = -181
	if _, err := Compute(in); !errors.Is(err, ErrInvalidLongitude) {
		t.Errorf("longitude -181 error = %v, want ErrInvalidLongitude", err)
	}
}

func TestChartView(t *testing.T) {
	c, err := Compute(delhiInput)
	if err != nil {
		t.Fatal(err)
	}
	v := c.View(false)
	if len(v.Bodies) != 9 || v.Bodies[0].Body != "Sun" || v.Bodies[8].Body != "Ketu" {
		t.Errorf("bodies = %+v", v.Bodies)
	}
	if v.AscendantSign != "Gemini" || v.Nakshatra.Name != "Uttara Ashadha" || v.Nakshatra.Lord != "Sun" {
		t.Errorf("view = %+v", v)
	}
	if v.Pratyantardashas != nil {
		t.Error("short view should omit pratyantardashas")
	}
	if got := len(c.View(true).Pratyantardashas); got != 729 {
		t.Errorf("full view has %d pratyantardashas", got)
	}
	for _, b := range v.Bodies {
		if b.Sidereal < 0 || b.Sidereal >= 360 || b.House < 1 || b.House > 12 {
			t.Errorf("body %+v out of range", b)
		}
	}
}

func TestChartNutation(t *testing.T) {
	c, err := Compute(delhiInput)
	if err != nil {
		t.Fatal(err)
	}
	n := c.Nutation()
	v := c.View(false).Nutation

	if math.Abs(v.Longitude) > 20 || math.Abs(v.Obliquity) > 10 {
		t.Errorf("nutation out of range: %+v", v)
	}
	if math.Abs(v.MeanObliquity-23.44054) > 1e-4 {
		t.Errorf("mean obliquity = %f", v.MeanObliquity)
	}
	if d := (v.TrueObliquity - v.MeanObliquity) * 3600; math.Abs(d-v.Obliquity) > 1e-9 {
		t.Errorf("true - mean obliquity = %f\", want %f\"", d, v.Obliquity)
	}
	if math.Abs(n.DeltaPsi*rad2deg*3600-v.Longitude) > 1e-9 {
		t.Errorf("view Δψ = %f, chart Δψ = %f", v.Longitude, n.DeltaPsi*rad2deg*3600)
	}
	for _, b := range c.View(false).Bodies {
		if d := (math.Mod(b.Apparent-b.Tropical+540, 360) - 180) * 3600; math.Abs(d-v.Longitude) > 1e-6 {
			t.Errorf("%s apparent - tropical = %f\", want Δψ %f\"", b.Body, d, v.Longitude)
		}
	}
}

// countingSource counts Heliocentric calls on a shared series source.
type countingSource struct {
	calls atomic.Int64
	src   ephemeris.SeriesSource
}

func (c *countingSource) Heliocentric(b ephemeris.Body, jdTT float64) (ephemeris.Vector, error) {
	c.calls.Add(1)
	return c.src.Heliocentric(b, jdTT)
}

func TestComputeConcurrentSharedSource(t *testing.T) {
	src := &countingSource{}
	in := delhiInput
	in.Source = src

	inst, err := timescale.CivilToInstant(in.Civil)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := ComputeAt(inst, in)
	if err != nil {
		t.Fatal(err)
	}
	want := ref.View(true)

	const workers = 24
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := ComputeAt(inst, in)
			if err != nil {
				t.Errorf("ComputeAt: %v", err)
				return
			}
			if got := c.View(true); !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent chart differs from the sequential one")
			}
		}()
	}
	wg.Wait()

	perChart := src.calls.Load() / (workers + 1)
	if perChart == 0 || src.calls.Load()%(workers+1) != 0 {
		t.Errorf("%d source calls for %d charts", src.calls.Load(), workers+1)
	}
}
