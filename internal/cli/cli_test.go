package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/internal/store"
)

var delhiLine = []string{"1990-05-15", "08:30", "+05:30", "28.6139", "77.2090"}

// resetFlags restores every flag to its default so commands can run
// repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func chartJSON(t *testing.T, args ...string) jyotish.ChartView {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	var v jyotish.ChartView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, out)
	}
	return v
}

func TestChartJSON(t *testing.T) {
	v := chartJSON(t, append(append([]string{"chart"}, delhiLine...), "--json")...)

	if v.Nakshatra.Name != "Uttara Ashadha" || v.Nakshatra.Pada != 1 {
		t.Errorf("nakshatra = %+v", v.Nakshatra)
	}
	if v.AscendantSign != "Gemini" {
		t.Errorf("ascendant sign = %s", v.AscendantSign)
	}
	if v.Mode != "astronomical" {
		t.Errorf("mode = %s", v.Mode)
	}
	if math.Abs(v.JDUT-2448026.625) > 1e-6 {
		t.Errorf("JD UT = %f", v.JDUT)
	}
	if len(v.Pratyantardashas) != 0 {
		t.Errorf("pratyantardashas without --full: %d", len(v.Pratyantardashas))
	}

	full := chartJSON(t, append(append([]string{"chart"}, delhiLine...), "--json", "--full")...)
	if len(full.Pratyantardashas) != 729 {
		t.Errorf("pratyantardashas with --full: %d", len(full.Pratyantardashas))
	}
}

func TestChartModeSelection(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", append([]string{"chart", "--json"}, delhiLine...), "astronomical"},
		{"flag", append([]string{"chart", "--json", "--mode", "compatibility"}, delhiLine...), "compatibility"},
		{"line wins over flag", append(append([]string{"chart", "--json", "--mode", "compatibility"}, delhiLine...), "astronomical"), "astronomical"},
		{"flag form", []string{"chart", "--json", "--mode", "compat", "--date", "1990-05-15", "--time", "08:30", "--offset", "+05:30", "--lat", "28.6139", "--lon", "77.2090"}, "compatibility"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := chartJSON(t, tt.args...); v.Mode != tt.want {
				t.Errorf("mode = %s, want %s", v.Mode, tt.want)
			}
		})
	}
}

func TestChartTable(t *testing.T) {
	out, err := execute(t, "chart", "--name", "Delhi", "--date", "1990-05-15", "--time", "08:30",
		"--offset", "+05:30", "--lat", "28.6139", "--lon", "77.2090", "--division", "9")
	if err != nil {
		t.Fatalf("chart: %v\n%s", err, out)
	}
	for _, want := range []string{"Birth chart of Delhi", "Gemini", "Uttara Ashadha", "Mahadashas", "Sun", "1989-05-27", "D9", "Sagittarius"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestChartErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no birth", []string{"chart"}},
		{"bad month", []string{"chart", "1990-13-15", "08:30", "+05:30", "28.6", "77.2"}},
		{"bad latitude", []string{"chart", "1990-05-15", "08:30", "+05:30", "95", "77.2"}},
		{"bad division", append([]string{"chart", "--division", "31"}, delhiLine...)},
		{"bad mode", append([]string{"chart", "--mode", "raman"}, delhiLine...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestDashaCommand(t *testing.T) {
	out, err := execute(t, append([]string{"dasha", "--at", "2000-01-01", "--level", "3"}, delhiLine...)...)
	if err != nil {
		t.Fatalf("dasha: %v\n%s", err, out)
	}
	for _, want := range []string{"Uttara Ashadha", "Running:", "Antardashas of Moon", "Pratyantardashas of Moon/"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, append([]string{"dasha", "--at", "1500-01-01"}, delhiLine...)...)
	if err != nil {
		t.Fatalf("dasha before the timeline: %v", err)
	}
	if !strings.Contains(out, "No dasha is running") {
		t.Errorf("output = %s", out)
	}

	if _, err := execute(t, append([]string{"dasha", "--level", "4"}, delhiLine...)...); err == nil {
		t.Error("expected error for --level 4")
	}
	if _, err := execute(t, append([]string{"dasha", "--at", "soon"}, delhiLine...)...); err == nil {
		t.Error("expected error for --at soon")
	}
}

func TestWithin(t *testing.T) {
	b, err := jyotish.ParseBirthData(strings.Join(delhiLine, " "))
	if err != nil {
		t.Fatal(err)
	}
	c, err := jyotish.Compute(b.Input())
	if err != nil {
		t.Fatal(err)
	}
	maha := c.Mahadashas()[1]
	antars := within(c.Antardashas(), maha)
	if len(antars) != 9 {
		t.Fatalf("antardashas of %s: %d", maha.Mahadasha, len(antars))
	}
	if antars[0].StartJD != maha.StartJD || antars[8].EndJD != maha.EndJD {
		t.Errorf("antardashas do not span %s", maha.Mahadasha)
	}
	if got := within(c.Pratyantardashas(), antars[3]); len(got) != 9 {
		t.Errorf("pratyantardashas: %d", len(got))
	}
}

func TestWheelCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.svg")
	out, err := execute(t, append([]string{"wheel", "-o", path}, delhiLine...)...)
	if err != nil {
		t.Fatalf("wheel: %v\n%s", err, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<svg") || !strings.Contains(string(data), "Uttara Ashadha") {
		t.Errorf("unexpected SVG: %.80s", data)
	}

	out, err = execute(t, append([]string{"wheel", "-o", "-"}, delhiLine...)...)
	if err != nil || !strings.HasPrefix(out, "<svg") {
		t.Errorf("wheel to stdout: %v %.80s", err, out)
	}
}

func TestIngressCommand(t *testing.T) {
	out, err := execute(t, "ingress", "--body", "Moon", "--from", "2000-01-01", "--days", "10")
	if err != nil {
		t.Fatalf("ingress: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Moon nakshatra ingresses") || !strings.Contains(out, "2000-01-0") {
		t.Errorf("output = %s", out)
	}
	// 12 to 15 degrees a day
	lines := strings.Count(strings.TrimSpace(out), "\n") - 1
	if lines < 9 || lines > 12 {
		t.Errorf("%d ingress rows:\n%s", lines, out)
	}

	if _, err := execute(t, "ingress", "--body", "Pluto"); err == nil {
		t.Error("expected error for unknown body")
	}
	if _, err := execute(t, "ingress", "--days", "0"); err == nil {
		t.Error("expected error for empty window")
	}
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jyotish.toml")

	if out, err := execute(t, "config", "init", path); err != nil || !strings.Contains(out, path) {
		t.Fatalf("config init: %v %s", err, out)
	}
	if _, err := execute(t, "config", "init", path); err == nil {
		t.Error("config init must not overwrite")
	}

	out, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"j2000_arcsec", "astronomical", "series"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}

	custom := filepath.Join(dir, "compat.toml")
	if err := os.WriteFile(custom, []byte("[dasha]\nmode = 'compatibility'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v := chartJSON(t, append([]string{"--config", custom, "chart", "--json"}, delhiLine...)...)
	if v.Mode != "compatibility" {
		t.Errorf("mode from config file = %s", v.Mode)
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "births.json")
	records := `[
  {"name": "Delhi", "date": "1990-05-15", "time": "08:30", "utc_offset": "+05:30", "latitude": 28.6139, "longitude": 77.209},
  {"name": "London", "date": "1985-11-02", "time": "14:05", "utc_offset": "Z", "latitude": 51.5074, "longitude": -0.1278, "mode": "compatibility"}
]`
	if err := os.WriteFile(batch, []byte(records), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "batch", batch, "--at", "2000-01-01")
	if err != nil {
		t.Fatalf("batch: %v\n%s", err, out)
	}
	for _, want := range []string{"Delhi", "London", "Uttara Ashadha", "Moon"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	db := filepath.Join(dir, "charts.db")
	cfg := filepath.Join(dir, "store.toml")
	if err := os.WriteFile(cfg, []byte("[store]\ndriver = 'sqlite'\ndsn = '"+db+"'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if out, err := execute(t, "--config", cfg, "batch", batch, "--save"); err != nil {
		t.Fatalf("batch --save: %v\n%s", err, out)
	}
	st, err := store.Open(context.Background(), "sqlite", db)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	recs, err := st.List(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Errorf("stored %d charts, want 2", len(recs))
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"name": "x", "date": "1990-02-30", "latitude": 1, "longitude": 1}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "batch", bad); err == nil {
		t.Error("expected error for an impossible date")
	}
}

func TestParseWhen(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2000-01-01", 2451544.5, false},
		{"2451545.0", 2451545.0, false},
		{"1990-05-15", 2448026.5, false},
		{"tomorrow", 0, true},
	}
	for _, tt := range tests {
		got, err := parseWhen(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseWhen(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && math.Abs(got.JDUT-tt.want) > 1e-9 {
			t.Errorf("parseWhen(%q) = %f, want %f", tt.in, got.JDUT, tt.want)
		}
	}
}
