package jyotish

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/timescale"
)

// BirthData is a parsed birth record ready for Compute.
type BirthData struct {
	// Line 0 (optional name)
	Name string

	Civil    timescale.Civil
	Location Location
	Mode     dasha.Mode
}

// Input returns the chart input for the record. The ayanamsa and source
// are left to their defaults.
func (b *BirthData) Input() Input {
	return Input{Civil: b.Civil, Location: b.Location, Mode: b.Mode}
}

// Line formats the data line without the name.
func (b *BirthData) Line() string {
	c := b.Civil
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%s %s %s %s %s",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, formatSeconds(c.Second),
		FormatUTCOffset(c.UTCOffset),
		strconv.FormatFloat(b.Location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(b.Location.Longitude, 'f', -1, 64), b.Mode)
}

// formatSeconds keeps every fractional digit and pads the integer part
// to two digits.
func formatSeconds(sec float64) string {
	s := strconv.FormatFloat(sec, 'f', -1, 64)
	if sec < 10 {
		s = "0" + s
	}
	return s
}

// String formats the record in the format accepted by ParseBirthData.
func (b *BirthData) String() string {
	if b.Name != "" {
		return b.Name + "\n" + b.Line()
	}
	return b.Line()
}

// ParseBirthData parses a one-line birth record, optionally preceded by a
// name line:
//
//	Name
//	YYYY-MM-DD HH:MM[:SS] ±HH:MM LAT LON [MODE]
//
// Latitude is north positive, longitude east positive, and MODE is
// "astronomical" (default) or "compatibility".
func ParseBirthData(input string) (*BirthData, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	if len(lines) < 1 || len(lines) > 2 || lines[0] == "" {
		return nil, fmt.Errorf("invalid birth data: must contain 1 or 2 lines")
	}

	b := &BirthData{}
	data := lines[0]
	if len(lines) == 2 {
		b.Name = lines[0]
		data = lines[1]
	}

	fields := strings.Fields(data)
	if len(fields) < 5 || len(fields) > 6 {
		return nil, fmt.Errorf("invalid birth data: expected 5 or 6 fields, got %d", len(fields))
	}

	var err error
	if b.Civil.Year, b.Civil.Month, b.Civil.Day, err = parseDate(fields[0]); err != nil {
		return nil, err
	}
	if b.Civil.Hour, b.Civil.Minute, b.Civil.Second, err = parseClock(fields[1]); err != nil {
		return nil, err
	}
	if b.Civil.UTCOffset, err = ParseUTCOffset(fields[2]); err != nil {
		return nil, err
	}
	if b.Location.Latitude, err = parseCoordinate("latitude", fields[3]); err != nil {
		return nil, err
	}
	if b.Location.Longitude, err = parseCoordinate("longitude", fields[4]); err != nil {
		return nil, err
	}
	if len(fields) == 6 {
		if b.Mode, err = dasha.ParseMode(fields[5]); err != nil {
			return nil, &InputError{Field: "mode", Value: fields[5], Message: err.Error()}
		}
	}

	if err := b.Civil.Validate(); err != nil {
		return nil, fmt.Errorf("invalid birth data: %w", err)
	}
	if err := b.Location.Validate(); err != nil {
		return nil, fmt.Errorf("invalid birth data: %w", err)
	}
	return b, nil
}

// BirthRecord is one element of a JSON batch of births.
type BirthRecord struct {
	Name      string  `json:"name,omitempty"`
	Date      string  `json:"date"`       // YYYY-MM-DD
	Time      string  `json:"time"`       // HH:MM[:SS]
	UTCOffset string  `json:"utc_offset"` // ±HH:MM
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Mode      string  `json:"mode,omitempty"`
}

// ParseBirthRecords parses a JSON byte slice containing an array of birth
// records.
func ParseBirthRecords(jsonData []byte) ([]BirthRecord, error) {
	var records []BirthRecord
	err := json.Unmarshal(jsonData, &records)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling birth records JSON: %w", err)
	}
	return records, nil
}

// ToBirthData validates the record and converts it.
func (r *BirthRecord) ToBirthData() (*BirthData, error) {
	b := &BirthData{Name: r.Name}

	var err error
	if b.Civil.Year, b.Civil.Month, b.Civil.Day, err = parseDate(r.Date); err != nil {
		return nil, err
	}
	if b.Civil.Hour, b.Civil.Minute, b.Civil.Second, err = parseClock(r.Time); err != nil {
		return nil, err
	}
	if b.Civil.UTCOffset, err = ParseUTCOffset(r.UTCOffset); err != nil {
		return nil, err
	}
	b.Location = Location{Latitude: r.Latitude, Longitude: r.Longitude}
	if b.Mode, err = dasha.ParseMode(r.Mode); err != nil {
		return nil, &InputError{Field: "mode", Value: r.Mode, Message: err.Error()}
	}

	if err := b.Civil.Validate(); err != nil {
		return nil, fmt.Errorf("birth record %q: %w", r.Name, err)
	}
	if err := b.Location.Validate(); err != nil {
		return nil, fmt.Errorf("birth record %q: %w", r.Name, err)
	}
	return b, nil
}

func parseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	neg := false
	if strings.HasPrefix(s, "-") {
		// negative (astronomical) years
		neg = true
		parts = strings.Split(s[1:], "-")
	}
	if len(parts) != 3 {
		return 0, 0, 0, &InputError{Field: "date", Value: s, Message: "expected YYYY-MM-DD"}
	}
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, &InputError{Field: "date", Value: s, Message: "bad year"}
	}
	if neg {
		year = -year
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, &InputError{Field: "date", Value: s, Message: "bad month"}
	}
	if day, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, &InputError{Field: "date", Value: s, Message: "bad day"}
	}
	return year, month, day, nil
}

func parseClock(s string) (hour, minute int, second float64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, &InputError{Field: "time", Value: s, Message: "expected HH:MM[:SS]"}
	}
	if hour, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, &InputError{Field: "time", Value: s, Message: "bad hour"}
	}
	if minute, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, &InputError{Field: "time", Value: s, Message: "bad minute"}
	}
	if len(parts) == 3 {
		if second, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return 0, 0, 0, &InputError{Field: "time", Value: s, Message: "bad second"}
		}
	}
	return hour, minute, second, nil
}

func parseCoordinate(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InputError{Field: field, Value: s}
	}
	return v, nil
}

// ParseUTCOffset accepts "Z", "±HH:MM", "±HHMM" or a decimal number of
// hours such as "+5.5".
func ParseUTCOffset(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "Z" || s == "z" {
		return 0, nil
	}
	sign := 1.0
	body := s
	switch s[0] {
	case '+':
		body = s[1:]
	case '-':
		sign = -1
		body = s[1:]
	}

	if h, m, ok := strings.Cut(body, ":"); ok {
		hh, err1 := strconv.Atoi(h)
		mm, err2 := strconv.Atoi(m)
		if err1 != nil || err2 != nil || mm < 0 || mm > 59 {
			return 0, &InputError{Field: "utc offset", Value: s}
		}
		return sign * (float64(hh) + float64(mm)/60), nil
	}
	if len(body) == 4 && !strings.Contains(body, ".") {
		hh, err1 := strconv.Atoi(body[:2])
		mm, err2 := strconv.Atoi(body[2:])
		if err1 != nil || err2 != nil || mm > 59 {
			return 0, &InputError{Field: "utc offset", Value: s}
		}
		return sign * (float64(hh) + float64(mm)/60), nil
	}
	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, &InputError{Field: "utc offset", Value: s}
	}
	return sign * v, nil
}

// FormatUTCOffset renders hours as ±HH:MM.
func FormatUTCOffset(h float64) string {
	sign := '+'
	if h < 0 {
		sign = '-'
		h = -h
	}
	total := int(h*60 + 0.5)
	return fmt.Sprintf("%c%02d:%02d", sign, total/60, total%60)
}
