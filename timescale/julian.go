// Package timescale converts civil date-times into the astronomical time
// scales used by the ephemeris: Julian Day in Universal Time and in
// Terrestrial Time, coupled by an empirical ΔT model.
package timescale

import (
	"fmt"
	"math"
	"time"
)

const (
	// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT).
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century.
	DaysPerCentury = 36525.0

	// DaysPerMillennium is the length of a Julian millennium.
	DaysPerMillennium = 365250.0

	// SecondsPerDay converts ΔT seconds into day fractions.
	SecondsPerDay = 86400.0
)

// CalendarToJD converts a Gregorian calendar date plus fractional hours of
// the day into a Julian Day. The proleptic Gregorian calendar is used for
// every date, so the result is continuous across the 1582 reform.
func CalendarToJD(year, month, day int, hour float64) float64 {
	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100.0)
	b := 2 - a + math.Floor(a/4.0)
	jdDay := math.Floor(365.25*(y+4716.0)) +
		math.Floor(30.6001*(m+1.0)) +
		float64(day) + b - 1524.5
	return jdDay + hour/24.0
}

// JulianDate returns the Julian Day (UT) of t.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	h := float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0 +
		float64(t.Nanosecond())/3.6e12
	return CalendarToJD(t.Year(), int(t.Month()), t.Day(), h)
}

// Date is a calendar date with a fractional day of month.
type Date struct {
	Year  int
	Month int
	Day   float64
}

// JDToCalendar inverts CalendarToJD.
func JDToCalendar(jd float64) Date {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	alpha := math.Floor((z - 1867216.25) / 36524.25)
	a := z + 1 + alpha - math.Floor(alpha/4.0)

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e) + f
	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}
	return Date{Year: int(year), Month: int(month), Day: day}
}

// String formats the date as YYYY-MM-DD, dropping the day fraction.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, int(math.Floor(d.Day)))
}

// FormatJD formats a Julian Day as a YYYY-MM-DD calendar date.
func FormatJD(jd float64) string {
	return JDToCalendar(jd).String()
}

// Centuries returns Julian centuries elapsed since J2000 for jd.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// Millennia returns Julian millennia elapsed since J2000 for jd.
func Millennia(jd float64) float64 {
	return (jd - J2000) / DaysPerMillennium
}

// DecimalYear maps a Julian Day onto a fractional year.
func DecimalYear(jd float64) float64 {
	return 2000.0 + (jd-J2000)/365.25
}
