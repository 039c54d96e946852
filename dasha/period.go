package dasha

import "fmt"

// Level is the depth of a period in the hierarchy.
type Level int

const (
	Mahadasha Level = iota + 1
	Antardasha
	Pratyantardasha
)

func (l Level) String() string {
	switch l {
	case Mahadasha:
		return "mahadasha"
	case Antardasha:
		return "antardasha"
	case Pratyantardasha:
		return "pratyantardasha"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Period is one span of the hierarchy. Start and End are Julian Days (TT)
// and the interval is half-open: Start <= jd < End.
type Period struct {
	Level Level
	Path  [3]Lord // lords from mahadasha down to this level
	Start float64
	End   float64
	Mode  Mode
	Sub   []Period
}

// Lord returns the ruler of this period.
func (p Period) Lord() Lord {
	return p.Path[p.Level-1]
}

// Days returns the duration in days.
func (p Period) Days() float64 {
	return p.End - p.Start
}

// Contains reports whether jd falls inside the half-open interval.
func (p Period) Contains(jd float64) bool {
	return p.Start <= jd && jd < p.End
}

func (p Period) String() string {
	s := p.Path[0].String()
	for i := 1; i < int(p.Level); i++ {
		s += "/" + p.Path[i].String()
	}
	return fmt.Sprintf("%s %s [%.6f, %.6f)", p.Level, s, p.Start, p.End)
}

// subdivide splits the span [start, end) into nine children starting at
// first, each weighted by its lord's years over the full cycle. Children
// are contiguous and the last one ends exactly at end. Recursion stops
// after Pratyantardasha.
func subdivide(start, end float64, first Lord, level Level, path [3]Lord, mode Mode) []Period {
	span := end - start
	out := make([]Period, 9)
	cursor := start
	lord := first
	for i := range out {
		p := Period{
			Level: level,
			Path:  path,
			Start: cursor,
			Mode:  mode,
		}
		p.Path[level-1] = lord
		if i == len(out)-1 {
			p.End = end
		} else {
			p.End = cursor + span*lord.Years()/CycleYears
		}
		if level < Pratyantardasha {
			p.Sub = subdivide(p.Start, p.End, lord, level+1, p.Path, mode)
		}
		out[i] = p
		cursor = p.End
		lord = lord.Next()
	}
	return out
}

// find returns the period containing jd.
func find(ps []Period, jd float64) (Period, bool) {
	for _, p := range ps {
		if p.Contains(jd) {
			return p, true
		}
	}
	return Period{}, false
}
