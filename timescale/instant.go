package timescale

import (
	"fmt"
	"math"
)

// Instant is one astronomical moment carried in both Terrestrial Time and
// Universal Time. Ephemeris series consume JDTT; sidereal time and the
// ascendant consume JDUT.
type Instant struct {
	JDTT float64
	JDUT float64
}

// FromUT builds an Instant from a Julian Day in UT.
func FromUT(jdUT float64) Instant {
	return Instant{JDTT: jdUT + DeltaT(jdUT)/SecondsPerDay, JDUT: jdUT}
}

// DeltaT returns the TT − UT offset carried by the instant, in seconds.
func (i Instant) DeltaT() float64 {
	return (i.JDTT - i.JDUT) * SecondsPerDay
}

// Civil is a local civil date-time with its offset from UTC in hours.
type Civil struct {
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Second    float64
	UTCOffset float64 // hours east of Greenwich, fractional allowed
}

// CalendarError reports a civil field outside its calendar range.
type CalendarError struct {
	Field string
	Value float64
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("timescale: %s out of range: %g", e.Field, e.Value)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// Validate rejects out-of-range fields. Nothing is wrapped silently.
func (c Civil) Validate() error {
	if c.Month < 1 || c.Month > 12 {
		return &CalendarError{Field: "month", Value: float64(c.Month)}
	}
	if c.Day < 1 || c.Day > DaysInMonth(c.Year, c.Month) {
		return &CalendarError{Field: "day", Value: float64(c.Day)}
	}
	if c.Hour < 0 || c.Hour > 23 {
		return &CalendarError{Field: "hour", Value: float64(c.Hour)}
	}
	if c.Minute < 0 || c.Minute > 59 {
		return &CalendarError{Field: "minute", Value: float64(c.Minute)}
	}
	if math.IsNaN(c.Second) || c.Second < 0 || c.Second >= 60 {
		return &CalendarError{Field: "second", Value: c.Second}
	}
	if math.IsNaN(c.UTCOffset) || c.UTCOffset < -14 || c.UTCOffset > 14 {
		return &CalendarError{Field: "utc offset", Value: c.UTCOffset}
	}
	return nil
}

// UTHours returns the UT clock time of c in hours. The value may fall
// outside [0, 24) when the UTC offset carries into the previous or next day.
func (c Civil) UTHours() float64 {
	return float64(c.Hour) + float64(c.Minute)/60.0 + c.Second/3600.0 - c.UTCOffset
}

// CivilToInstant converts a validated civil date-time into an Instant.
// Hour overflow from the UTC offset becomes a day carry through the Julian
// Day arithmetic, so month and year ends roll over correctly.
func CivilToInstant(c Civil) (Instant, error) {
	if err := c.Validate(); err != nil {
		return Instant{}, err
	}
	jdUT := CalendarToJD(c.Year, c.Month, c.Day, c.UTHours())
	return FromUT(jdUT), nil
}
