package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/dasha"
)

var chartCmd = &cobra.Command{
	Use:   "chart [YYYY-MM-DD HH:MM ±HH:MM LAT LON [MODE]]",
	Short: "Compute a birth chart",
	Example: `  jyotish chart 1990-05-15 08:30 +05:30 28.6139 77.2090
  jyotish chart --date 1990-05-15 --time 08:30 --offset +05:30 --lat 28.6139 --lon 77.2090 --json`,
	RunE: runChart,
}

func init() {
	addBirthFlags(chartCmd)
	chartCmd.Flags().Bool("json", false, "print the chart as JSON")
	chartCmd.Flags().Bool("full", false, "include pratyantardashas in JSON output")
	chartCmd.Flags().Int("division", 0, "also print the given divisional chart (1-30)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b, err := readBirth(cmd, args, cfg)
	if err != nil {
		return err
	}
	c, err := computeChart(b, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		full, _ := cmd.Flags().GetBool("full")
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(c.View(full))
	}

	printChart(out, b, c)

	if d, _ := cmd.Flags().GetInt("division"); d != 0 {
		ps, err := c.Divisional(d)
		if err != nil {
			return err
		}
		t := newTable("Body", "Sign", "Degree")
		for _, p := range ps {
			t.add(p.Body.String(), p.SignName(), fmt.Sprintf("%.4f", p.Degree))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("D%d", d)))
		fmt.Fprint(out, t)
	}
	return nil
}

func printChart(w io.Writer, b *jyotish.BirthData, c *jyotish.Chart) {
	inst := c.Instant()
	title := "Birth chart"
	if b.Name != "" {
		title += " of " + b.Name
	}
	fmt.Fprintln(w, styleTitle.Render(title))
	fmt.Fprintln(w, field("Birth", b.Line()))
	fmt.Fprintln(w, field("JD", fmt.Sprintf("%.6f UT, %.6f TT (ΔT %.1fs)", inst.JDUT, inst.JDTT, inst.DeltaT())))
	fmt.Fprintln(w, field("Ayanamsa", fmt.Sprintf("%.6f°", c.Ayanamsa().Degrees())))
	asc := c.Ascendant().Degrees()
	fmt.Fprintln(w, field("Ascendant", fmt.Sprintf("%.4f° %s", asc, jyotish.SignNames[jyotish.SignOf(asc)])))
	fmt.Fprintln(w)

	t := newTable("Body", "Tropical", "Sidereal", "Sign", "House", "Nakshatra")
	for _, p := range c.Positions() {
		sid := p.Sidereal.Degrees()
		nk := dasha.Resolve(p.Sidereal, c.Mode())
		t.add(p.Body.String(),
			fmt.Sprintf("%.4f", p.Tropical.Degrees()),
			fmt.Sprintf("%.4f", sid),
			jyotish.SignNames[jyotish.SignOf(sid)],
			fmt.Sprint(c.PlanetHouse(p.Body)),
			fmt.Sprintf("%s %d", nk.Name, nk.Pada))
	}
	fmt.Fprint(w, t)
	fmt.Fprintln(w)

	nk := c.Nakshatra()
	fmt.Fprintln(w, field("Birth nakshatra", fmt.Sprintf("%s, pada %d, lord %s (%.1f%% elapsed)", nk.Name, nk.Pada, nk.Lord, nk.Fraction*100)))
	fmt.Fprintln(w, field("Dasha mode", c.Mode().String()))
	fmt.Fprintln(w)

	now, _ := parseWhen("")
	printPeriods(w, "Mahadashas", c.Mahadashas(), now.JDTT)
}

func printPeriods(w io.Writer, title string, ps []jyotish.PeriodRecord, jdTT float64) {
	fmt.Fprintln(w, styleTitle.Render(title))
	t := newTable("Period", "Start", "End")
	for _, p := range ps {
		i := t.add(periodLabel(p), p.Start, p.End)
		if p.StartJD <= jdTT && jdTT < p.EndJD {
			t.highlight[i] = true
		}
	}
	fmt.Fprint(w, t)
}

func periodLabel(p jyotish.PeriodRecord) string {
	label := p.Mahadasha
	if p.Antardasha != "" {
		label += "/" + p.Antardasha
	}
	if p.Pratyantardasha != "" {
		label += "/" + p.Pratyantardasha
	}
	return label
}
