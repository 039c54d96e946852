// Package dasha resolves the birth nakshatra from the sidereal Moon and
// builds the three-level Vimshottari period hierarchy anchored to birth.
package dasha

import (
	"fmt"
	"strings"
)

const (
	// SiderealYear is the length of a sidereal year in days.
	SiderealYear = 365.256363004

	// CycleYears is the length of the full Vimshottari cycle.
	CycleYears = 120.0

	// CycleDays is the full cycle in days.
	CycleDays = CycleYears * SiderealYear
)

// Lord is one of the nine period rulers, in cycle order.
type Lord int

const (
	Ketu Lord = iota
	Venus
	Sun
	Moon
	Mars
	Rahu
	Jupiter
	Saturn
	Mercury
)

// Lords lists the cycle in order starting from Ketu.
var Lords = [9]Lord{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

var lordYears = [9]float64{7, 20, 6, 10, 7, 18, 16, 19, 17}

var lordNames = [9]string{"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury"}

// Next returns the following lord in the cycle; Mercury wraps to Ketu.
func (l Lord) Next() Lord {
	return (l + 1) % 9
}

// Years returns the lord's weight in the 120-year cycle.
func (l Lord) Years() float64 {
	return lordYears[l]
}

func (l Lord) String() string {
	if l < 0 || l > Mercury {
		return fmt.Sprintf("Lord(%d)", int(l))
	}
	return lordNames[l]
}

// ParseLord resolves a lord by case-insensitive name.
func ParseLord(s string) (Lord, error) {
	for i, n := range lordNames {
		if strings.EqualFold(n, s) {
			return Lord(i), nil
		}
	}
	return 0, fmt.Errorf("dasha: unknown lord %q", s)
}
