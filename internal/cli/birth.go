package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/internal/config"
	"github.com/akhenakh/jyotish/timescale"
)

// addBirthFlags registers the flag form of a birth record.
func addBirthFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "name of the native")
	f.String("date", "", "birth date YYYY-MM-DD")
	f.String("time", "00:00", "local clock time HH:MM[:SS]")
	f.String("offset", "Z", "UTC offset of the clock time, e.g. +05:30")
	f.Float64("lat", 0, "latitude in degrees, north positive")
	f.Float64("lon", 0, "longitude in degrees, east positive")
}

// readBirth builds birth data from the positional line or the flags. A
// line without a mode field and the flag form use the configured mode.
func readBirth(cmd *cobra.Command, args []string, cfg config.Config) (*jyotish.BirthData, error) {
	name, _ := cmd.Flags().GetString("name")

	if len(args) > 0 {
		line := strings.Join(args, " ")
		b, err := jyotish.ParseBirthData(line)
		if err != nil {
			return nil, err
		}
		if len(strings.Fields(line)) == 5 {
			b.Mode = cfg.DashaMode()
		}
		if name != "" {
			b.Name = name
		}
		return b, nil
	}

	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		return nil, fmt.Errorf("a birth line or --date is required")
	}
	clock, _ := cmd.Flags().GetString("time")
	offset, _ := cmd.Flags().GetString("offset")
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")

	r := jyotish.BirthRecord{
		Name:      name,
		Date:      date,
		Time:      clock,
		UTCOffset: offset,
		Latitude:  lat,
		Longitude: lon,
		Mode:      cfg.DashaMode().String(),
	}
	return r.ToBirthData()
}

// computeChart applies the configured ayanamsa and ephemeris to b.
func computeChart(b *jyotish.BirthData, cfg config.Config) (*jyotish.Chart, error) {
	src, closeSrc, err := cfg.OpenSource()
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	in := b.Input()
	in.Ayanamsa = cfg.AyanamsaModel()
	in.Source = src
	return jyotish.Compute(in)
}

// parseWhen accepts YYYY-MM-DD (0h UT) or a Julian day number (UT). An
// empty value is now.
func parseWhen(s string) (timescale.Instant, error) {
	if s == "" {
		return timescale.FromUT(timescale.JulianDate(time.Now())), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return timescale.FromUT(timescale.JulianDate(t)), nil
	}
	jd, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return timescale.Instant{}, fmt.Errorf("invalid instant %q: want YYYY-MM-DD or a Julian day", s)
	}
	return timescale.FromUT(jd), nil
}
