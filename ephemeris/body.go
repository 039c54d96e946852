// Package ephemeris evaluates geocentric tropical longitudes of the Sun,
// the Moon, the five classical planets and the lunar nodes.
package ephemeris

import (
	"fmt"
	"strings"
)

// Body identifies a point whose longitude the ephemeris can produce.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Ketu
	// Earth is only used as the heliocentric observer.
	Earth
)

// Bodies lists the chart bodies in output order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}

var bodyNames = [...]string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Rahu", "Ketu", "Earth"}

func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// ParseBody resolves a body by case-insensitive name.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, name) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("ephemeris: unknown body %q", name)
}

// IsPlanet reports whether b is one of the five classical planets, the
// bodies seen from Earth through a heliocentric theory.
func (b Body) IsPlanet() bool {
	switch b {
	case Mercury, Venus, Mars, Jupiter, Saturn:
		return true
	}
	return false
}

var theories = map[Body]*planetTheory{
	Mercury: mercuryTheory,
	Venus:   venusTheory,
	Earth:   earthTheory,
	Mars:    marsTheory,
	Jupiter: jupiterTheory,
	Saturn:  saturnTheory,
}
