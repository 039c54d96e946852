package server

import (
	"context"
	"strings"
	"testing"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/internal/store"
	"github.com/akhenakh/jyotish/timescale"
)

func TestChartPageRender(t *testing.T) {
	c, err := jyotish.Compute(jyotish.Input{
		Civil:    timescale.Civil{Year: 1990, Month: 5, Day: 15, Hour: 8, Minute: 30, UTCOffset: 5.5},
		Location: jyotish.Location{Latitude: 28.6139, Longitude: 77.2090},
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	rec := store.Record{
		ID:    "a&b",
		Name:  `<script>alert("x")</script>`,
		Birth: "1990-05-15 08:30 +05:30 28.6139 77.2090",
	}

	var sb strings.Builder
	// 2000-01-01 falls in the Moon mahadasha.
	if err := chartPage(rec, c, 2451545.0).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := sb.String()

	if strings.Contains(html, "<script>") {
		t.Errorf("name was not escaped: %.300s", html)
	}
	for _, want := range []string{
		"<title>&lt;script&gt;",
		`src="/charts/a&amp;b/wheel.svg"`,
		"tr.current{background:#fff3c4}",
		"Uttara Ashadha",
		"<h2>Antardashas of Moon</h2>",
		`<tr class="current"><td>Moon</td><td>1995-05-27</td><td>2005-05-27</td></tr>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page lacks %q", want)
		}
	}
	if n := strings.Count(html, `class="current"`); n != 2 {
		t.Errorf("%d current rows, want one mahadasha and one antardasha", n)
	}

	sb.Reset()
	if err := chartPage(rec, c, 2300000).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(sb.String(), "Antardashas of") || strings.Contains(sb.String(), `class="current"`) {
		t.Error("no period should be current before birth")
	}
}
