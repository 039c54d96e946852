package jyotish

import (
	"fmt"
)

// DivisionError is returned when a divisional chart outside D1..D30 is
// requested.
type DivisionError struct {
	Division int // The requested division
}

// Error returns the error message for DivisionError.
func (e *DivisionError) Error() string {
	return fmt.Sprintf("jyotish: division D%d out of range (1..%d)", e.Division, MaxDivision)
}

// InputError reports a malformed birth-data record.
type InputError struct {
	Field   string // Offending field name
	Value   string // Raw value as read
	Message string // Additional message if any
}

// Error returns the error message for InputError.
func (e *InputError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("jyotish: invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("jyotish: invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// ChartError defines a custom error type for chart computation errors.
type ChartError struct {
	msg string
}

func (e *ChartError) Error() string {
	return e.msg
}
