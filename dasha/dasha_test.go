package dasha

import (
	"math"
	"testing"

	"github.com/akhenakh/jyotish/frames"
)

const birth = 2451545.0

func TestLordCycle(t *testing.T) {
	total := 0.0
	l := Ketu
	for i := 0; i < 9; i++ {
		if l != Lords[i] {
			t.Errorf("lord %d = %v, want %v", i, l, Lords[i])
		}
		total += l.Years()
		l = l.Next()
	}
	if l != Ketu {
		t.Errorf("Mercury.Next() cycle ended at %v, want Ketu", l)
	}
	if total != CycleYears {
		t.Errorf("sum of years = %v, want %v", total, CycleYears)
	}
	if got, err := ParseLord("saturn"); err != nil || got != Saturn {
		t.Errorf("ParseLord(saturn) = %v, %v", got, err)
	}
	if _, err := ParseLord("pluto"); err == nil {
		t.Error("ParseLord(pluto) should fail")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		lon   float64
		mode  Mode
		index int
		pada  int
		lord  Lord
	}{
		{"zero", 0, Astronomical, 0, 1, Ketu},
		{"mid ashwini", 20.0 / 3.0, Astronomical, 0, 3, Ketu},
		{"bharani start", MansionSpan + 1e-9, Astronomical, 1, 1, Venus},
		{"rohini", 45, Astronomical, 3, 2, Moon},
		{"magha repeats ketu", 9*MansionSpan + 1e-9, Astronomical, 9, 1, Ketu},
		{"revati end", 359.999, Astronomical, 26, 4, Mercury},
		{"compat moves back", 13.4, CompatibilityAdjusted, 0, 4, Ketu},
		{"compat wraps", 0.1, CompatibilityAdjusted, 26, 4, Mercury},
		{"astro same longitude", 13.4, Astronomical, 1, 1, Venus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Resolve(frames.SiderealFromDegrees(tt.lon), tt.mode)
			if n.Index != tt.index || n.Pada != tt.pada || n.Lord != tt.lord {
				t.Errorf("Resolve(%v) = %d/%d/%v, want %d/%d/%v", tt.lon, n.Index, n.Pada, n.Lord, tt.index, tt.pada, tt.lord)
			}
			if n.Name != MansionNames[tt.index] {
				t.Errorf("name = %q, want %q", n.Name, MansionNames[tt.index])
			}
			if n.Fraction < 0 || n.Fraction >= 1 {
				t.Errorf("fraction %v outside [0,1)", n.Fraction)
			}
		})
	}
}

func TestPadaBoundaries(t *testing.T) {
	start := 5 * MansionSpan
	for p := 0; p < 4; p++ {
		lo := start + float64(p)*PadaSpan + 1e-7
		hi := start + float64(p+1)*PadaSpan - 1e-7
		for _, lon := range []float64{lo, hi} {
			n := Resolve(frames.SiderealFromDegrees(lon), Astronomical)
			if n.Index != 5 || n.Pada != p+1 {
				t.Errorf("Resolve(%.7f) = mansion %d pada %d, want 5/%d", lon, n.Index, n.Pada, p+1)
			}
		}
	}
}

func TestBuildFromMansionStart(t *testing.T) {
	tl := Build(birth, frames.SiderealFromDegrees(0), Astronomical)

	first := tl.Mahadashas[0]
	if first.Lord() != Ketu {
		t.Fatalf("first lord = %v, want Ketu", first.Lord())
	}
	if math.Abs(first.Start-birth) > 1e-9 {
		t.Errorf("first start = %.9f, want %.9f", first.Start, birth)
	}
	if math.Abs(first.Days()-2556.794541028) > 1e-6 {
		t.Errorf("Ketu span = %.9f days, want 2556.794541028", first.Days())
	}
	second := tl.Mahadashas[1]
	if second.Lord() != Venus || math.Abs(second.Days()-20*SiderealYear) > 1e-6 {
		t.Errorf("second = %v %.6f days, want Venus %.6f", second.Lord(), second.Days(), 20*SiderealYear)
	}
}

func TestBuildBackdatesElapsedFraction(t *testing.T) {
	tl := Build(birth, frames.SiderealFromDegrees(MansionSpan/2), Astronomical)
	want := birth - 3.5*SiderealYear
	if got := tl.Start(); math.Abs(got-want) > 1e-6 {
		t.Errorf("start = %.6f, want %.6f", got, want)
	}
	if p, ok := tl.CurrentMahadasha(birth); !ok || p.Lord() != Ketu {
		t.Errorf("mahadasha at birth = %v %v, want Ketu", p, ok)
	}
}

func TestPartition(t *testing.T) {
	tl := Build(birth, frames.SiderealFromDegrees(123.456), Astronomical)

	if math.Abs(tl.End()-tl.Start()-CycleDays) > 1e-6 {
		t.Errorf("cycle span = %.6f, want %.6f", tl.End()-tl.Start(), CycleDays)
	}

	counts := map[Level]int{Mahadasha: 9, Antardasha: 81, Pratyantardasha: 729}
	for level, n := range counts {
		ps := tl.Periods(level)
		if len(ps) != n {
			t.Fatalf("%v count = %d, want %d", level, len(ps), n)
		}
		for i := 1; i < len(ps); i++ {
			if ps[i].Start != ps[i-1].End {
				t.Errorf("%v %d: start %.9f != previous end %.9f", level, i, ps[i].Start, ps[i-1].End)
			}
		}
		if ps[0].Start != tl.Start() || ps[len(ps)-1].End != tl.End() {
			t.Errorf("%v does not cover the cycle", level)
		}
	}

	for _, m := range tl.Mahadashas {
		if m.Sub[0].Lord() != m.Lord() {
			t.Errorf("antardashas of %v start at %v", m.Lord(), m.Sub[0].Lord())
		}
		if m.Sub[8].End != m.End {
			t.Errorf("antardashas of %v end at %.9f, want %.9f", m.Lord(), m.Sub[8].End, m.End)
		}
		seen := map[Lord]bool{}
		for _, a := range m.Sub {
			seen[a.Lord()] = true
			if a.Path[0] != m.Lord() {
				t.Errorf("antardasha path %v does not start at %v", a.Path, m.Lord())
			}
			if a.Sub[0].Lord() != a.Lord() || a.Sub[8].End != a.End {
				t.Errorf("pratyantardashas of %v misaligned", a)
			}
		}
		if len(seen) != 9 {
			t.Errorf("mahadasha %v covers %d lords, want 9", m.Lord(), len(seen))
		}
	}
}

func TestLookupHalfOpen(t *testing.T) {
	tl := Build(birth, frames.SiderealFromDegrees(200), Astronomical)
	boundary := tl.Mahadashas[1].Start

	if p, ok := tl.CurrentMahadasha(boundary); !ok || p.Lord() != tl.Mahadashas[1].Lord() {
		t.Errorf("at boundary got %v, want %v", p.Lord(), tl.Mahadashas[1].Lord())
	}
	before := math.Nextafter(boundary, 0)
	if p, ok := tl.CurrentMahadasha(before); !ok || p.Lord() != tl.Mahadashas[0].Lord() {
		t.Errorf("before boundary got %v, want %v", p.Lord(), tl.Mahadashas[0].Lord())
	}

	for _, jd := range []float64{tl.Start() - 1, tl.End(), tl.End() + 100} {
		for _, level := range []Level{Mahadasha, Antardasha, Pratyantardasha} {
			if _, ok := tl.At(level, jd); ok {
				t.Errorf("%v at %.3f should be none", level, jd)
			}
		}
	}

	p, ok := tl.CurrentPratyantardasha(birth + 1000)
	if !ok {
		t.Fatal("no pratyantardasha inside the cycle")
	}
	a, _ := tl.CurrentAntardasha(birth + 1000)
	m, _ := tl.CurrentMahadasha(birth + 1000)
	if p.Path[0] != m.Lord() || p.Path[1] != a.Lord() {
		t.Errorf("path %v inconsistent with %v/%v", p.Path, m.Lord(), a.Lord())
	}
}

func TestModeChangesTimeline(t *testing.T) {
	moon := frames.SiderealFromDegrees(13.4)
	astro := Build(birth, moon, Astronomical)
	compat := Build(birth, moon, CompatibilityAdjusted)

	if astro.Mahadashas[0].Lord() != Venus || compat.Mahadashas[0].Lord() != Ketu {
		t.Errorf("first lords = %v/%v, want Venus/Ketu", astro.Mahadashas[0].Lord(), compat.Mahadashas[0].Lord())
	}
	for _, p := range compat.Periods(Pratyantardasha) {
		if p.Mode != CompatibilityAdjusted {
			t.Fatalf("period %v lost its mode", p)
		}
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"astronomical": Astronomical, "Compatibility": CompatibilityAdjusted, "": Astronomical} {
		if got, err := ParseMode(in); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("raman"); err == nil {
		t.Error("ParseMode(raman) should fail")
	}
}

func TestModeSensitivityNearBoundary(t *testing.T) {
	for _, lon := range []float64{20, 100, 250.5} {
		a := Resolve(frames.SiderealFromDegrees(lon), Astronomical)
		c := Resolve(frames.SiderealFromDegrees(lon), CompatibilityAdjusted)
		if a.Index != c.Index {
			t.Errorf("%.1f°: index %d vs %d far from a boundary", lon, a.Index, c.Index)
		}
		if a.Fraction == c.Fraction {
			t.Errorf("%.1f°: fractions should differ", lon)
		}
	}
	// Within 0.25° past a boundary the index moves back one mansion.
	for i := 1; i < 27; i++ {
		lon := MansionStart(i) + 0.1
		a := Resolve(frames.SiderealFromDegrees(lon), Astronomical)
		c := Resolve(frames.SiderealFromDegrees(lon), CompatibilityAdjusted)
		if a.Index != i || c.Index != i-1 {
			t.Errorf("%.3f°: indices %d/%d, want %d/%d", lon, a.Index, c.Index, i, i-1)
		}
	}
}
