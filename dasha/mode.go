package dasha

import (
	"fmt"
	"strings"
)

// Mode selects how the Moon's longitude is mapped onto the mansions.
type Mode int

const (
	// Astronomical uses the sidereal Moon as computed.
	Astronomical Mode = iota
	// CompatibilityAdjusted subtracts CompatibilityOffset degrees first,
	// which moves mansion boundaries without touching the Moon itself.
	CompatibilityAdjusted
)

// CompatibilityOffset is the empirical longitude shift, in degrees.
const CompatibilityOffset = 0.25

func (m Mode) String() string {
	switch m {
	case Astronomical:
		return "astronomical"
	case CompatibilityAdjusted:
		return "compatibility"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "astronomical" or "compatibility" (any case).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astronomical", "":
		return Astronomical, nil
	case "compatibility", "compat", "compatibility-adjusted":
		return CompatibilityAdjusted, nil
	}
	return 0, fmt.Errorf("dasha: unknown mode %q", s)
}

// adjust returns the longitude in degrees used for mansion lookup.
func (m Mode) adjust(deg float64) float64 {
	if m == CompatibilityAdjusted {
		return deg - CompatibilityOffset
	}
	return deg
}
