package jyotish

import (
	"fmt"
	"math"
	"strings"

	"github.com/akhenakh/jyotish/dasha"
)

// SVG wheel constants
const (
	svgWidth            = 600
	svgHeight           = 600
	plotMargin          = 40
	plotCenterX         = svgWidth / 2
	plotCenterY         = svgHeight / 2
	plotRadius          = (svgWidth / 2) - plotMargin
	signRingWidth       = 40
	mansionRingWidth    = 18
	signFontSize        = 12
	bodyFontSize        = 13
	foregroundColor     = "black"
	secondaryColor      = "dimgray"
	gridLineStrokeWidth = "1"
	ascStrokeWidth      = "2"
	pointRadius         = 4.0
)

var bodyGlyphs = map[string]string{
	"Sun": "Su", "Moon": "Mo", "Mercury": "Me", "Venus": "Ve", "Mars": "Ma",
	"Jupiter": "Ju", "Saturn": "Sa", "Rahu": "Ra", "Ketu": "Ke",
}

// polarToCartesian places a sidereal longitude on the wheel with the
// ascendant on the left and longitudes increasing counter-clockwise.
func polarToCartesian(lon, asc, radius float64) (x, y float64) {
	theta := (lon - asc) * deg2rad
	x = plotCenterX - radius*math.Cos(theta)
	y = plotCenterY + radius*math.Sin(theta)
	return
}

// signColor shades signs by element: fire, earth, air, water.
func signColor(sign int) string {
	switch sign % 4 {
	case 0:
		return "#fde2d8"
	case 1:
		return "#e6f0d8"
	case 2:
		return "#e0ecf8"
	}
	return "#e4e0f5"
}

// GenerateWheelSVG renders the sidereal chart as a wheel: sign sectors,
// the nakshatra ring, body markers and the ascendant line.
func (c *Chart) GenerateWheelSVG() string {
	asc := c.ascendant.Degrees()
	outer := float64(plotRadius)
	signInner := outer - signRingWidth
	mansionInner := signInner - mansionRingWidth
	bodyRadius := mansionInner - 30

	var svgBuilder strings.Builder
	svgBuilder.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" style="background-color:white;">`, svgWidth, svgHeight))

	// Sign sectors
	for s := 0; s < 12; s++ {
		start := float64(s) * SignSpan
		end := start + SignSpan
		x1, y1 := polarToCartesian(start, asc, outer)
		x2, y2 := polarToCartesian(end, asc, outer)
		x3, y3 := polarToCartesian(end, asc, signInner)
		x4, y4 := polarToCartesian(start, asc, signInner)
		// longitude runs counter-clockwise on screen: outer arc sweep 0, inner arc sweep 1
		svgBuilder.WriteString(fmt.Sprintf(`<path d="M %f %f A %f %f 0 0 0 %f %f L %f %f A %f %f 0 0 1 %f %f Z" fill="%s" stroke="%s" stroke-width="%s"/>`,
			x1, y1, outer, outer, x2, y2, x3, y3, signInner, signInner, x4, y4, signColor(s), foregroundColor, gridLineStrokeWidth))

		lx, ly := polarToCartesian(start+SignSpan/2, asc, outer-signRingWidth/2)
		svgBuilder.WriteString(fmt.Sprintf(`<text x="%f" y="%f" fill="%s" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s</text>`, lx, ly, foregroundColor, signFontSize, SignNames[s][:3]))
	}

	// Nakshatra ring
	svgBuilder.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%f" stroke="%s" stroke-width="0.5" fill="none"/>`, plotCenterX, plotCenterY, mansionInner, secondaryColor))
	for i := 0; i < 27; i++ {
		lon := dasha.MansionStart(i)
		x1, y1 := polarToCartesian(lon, asc, signInner)
		x2, y2 := polarToCartesian(lon, asc, mansionInner)
		svgBuilder.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="%s" stroke-width="0.5"/>`, x1, y1, x2, y2, secondaryColor))
	}
	mx1, my1 := polarToCartesian(dasha.MansionStart(c.nakshatra.Index), asc, (signInner+mansionInner)/2)
	mx2, my2 := polarToCartesian(dasha.MansionStart(c.nakshatra.Index+1), asc, (signInner+mansionInner)/2)
	svgBuilder.WriteString(fmt.Sprintf(`<path d="M %f %f A %f %f 0 0 0 %f %f" stroke="gold" stroke-width="%d" fill="none"/>`, mx1, my1, (signInner+mansionInner)/2, (signInner+mansionInner)/2, mx2, my2, mansionRingWidth-4))

	// Ascendant line
	ax1, ay1 := polarToCartesian(asc, asc, 0)
	ax2, ay2 := polarToCartesian(asc, asc, outer+10)
	svgBuilder.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="darkred" stroke-width="%s"/>`, ax1, ay1, ax2, ay2, ascStrokeWidth))
	svgBuilder.WriteString(fmt.Sprintf(`<text x="%f" y="%f" fill="darkred" font-size="%d" text-anchor="end" dominant-baseline="middle">Asc</text>`, ax2-4, ay2, signFontSize))

	// Bodies, nudged inward when they crowd the previous marker
	prev := math.Inf(-1)
	offset := 0.0
	for _, p := range c.positions {
		lon := p.Sidereal.Degrees()
		if math.Abs(lon-prev) < 6 {
			offset += 16
		} else {
			offset = 0
		}
		prev = lon
		px, py := polarToCartesian(lon, asc, mansionInner-6)
		svgBuilder.WriteString(fmt.Sprintf(`<circle cx="%f" cy="%f" r="%f" fill="%s"/>`, px, py, pointRadius, foregroundColor))
		lx, ly := polarToCartesian(lon, asc, bodyRadius-offset)
		svgBuilder.WriteString(fmt.Sprintf(`<text x="%f" y="%f" fill="%s" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s</text>`, lx, ly, foregroundColor, bodyFontSize, bodyGlyphs[p.Body.String()]))
	}

	svgBuilder.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s %d</text>`, plotCenterX, plotCenterY, secondaryColor, signFontSize, c.nakshatra.Name, c.nakshatra.Pada))

	svgBuilder.WriteString(`</svg>`)
	return svgBuilder.String()
}
