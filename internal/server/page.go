package server

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/internal/store"
)

const pageStyle = `body{font-family:sans-serif;margin:2em;color:#222}
table{border-collapse:collapse;margin:1em 0}
td,th{border:1px solid #ccc;padding:4px 8px;text-align:left}
tr.current{background:#fff3c4}
.wheel{float:right;margin-left:2em}`

// chartPage renders an archived chart with the periods active at jdTT
// highlighted.
func chartPage(rec store.Record, c *jyotish.Chart, jdTT float64) templ.Component {
	title := rec.Name
	if title == "" {
		title = rec.ID
	}
	v := c.View(false)

	maha, _ := c.CurrentMahadasha(jdTT)
	parts := []templ.Component{
		heading(1, title),
		paragraph(fmt.Sprintf("%s · %s mode", rec.Birth, modeLabel(c.Mode()))),
		wheelImage(rec.ID),
		paragraph(fmt.Sprintf("Ascendant %.4f° (%s), ayanamsa %.4f°", v.Ascendant, v.AscendantSign, v.Ayanamsa)),
		paragraph(fmt.Sprintf("Nakshatra %s, pada %d, lord %s", v.Nakshatra.Name, v.Nakshatra.Pada, v.Nakshatra.Lord)),
		bodyTable(v.Bodies),
		heading(2, "Mahadashas"),
		periodTable(v.Mahadashas, maha, func(p jyotish.PeriodRecord) string { return p.Mahadasha }),
	}

	if m, ok := c.CurrentMahadasha(jdTT); ok {
		a, _ := c.CurrentAntardasha(jdTT)
		var subs []jyotish.PeriodRecord
		for _, p := range v.Antardashas {
			if p.Mahadasha == m.Mahadasha && p.StartJD >= m.StartJD && p.EndJD <= m.EndJD {
				subs = append(subs, p)
			}
		}
		parts = append(parts,
			heading(2, "Antardashas of "+m.Mahadasha),
			periodTable(subs, a, func(p jyotish.PeriodRecord) string { return p.Antardasha }),
		)
	}

	return layout(title, templ.Join(parts...))
}

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>`+
			templ.EscapeString[string](title)+"</title><style>"); err != nil {
			return err
		}
		if err := templ.Raw(pageStyle).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</style></head><body>"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func heading(level int, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h%d>%s</h%d>", level, templ.EscapeString[string](text), level)
		return err
	})
}

func paragraph(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>"+templ.EscapeString[string](text)+"</p>")
		return err
	})
}

func wheelImage(id string) templ.Component {
	src := templ.URL("/charts/" + id + "/wheel.svg")
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="wheel"><img src="`+
			templ.EscapeString[string](string(src))+`" alt="wheel" width="450"></div>`)
		return err
	})
}

// row writes one table row, marking it current when asked.
func row(w io.Writer, current bool, cells ...string) error {
	open := "<tr>"
	if current {
		open = `<tr class="current">`
	}
	if _, err := io.WriteString(w, open); err != nil {
		return err
	}
	for _, c := range cells {
		if _, err := io.WriteString(w, "<td>"+templ.EscapeString[string](c)+"</td>"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tr>")
	return err
}

func headerRow(w io.Writer, names ...string) error {
	if _, err := io.WriteString(w, "<tr>"); err != nil {
		return err
	}
	for _, n := range names {
		if _, err := io.WriteString(w, "<th>"+templ.EscapeString[string](n)+"</th>"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tr>")
	return err
}

func bodyTable(bodies []jyotish.BodyView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table>"); err != nil {
			return err
		}
		if err := headerRow(w, "Body", "Tropical", "Sidereal", "Sign", "House"); err != nil {
			return err
		}
		for _, p := range bodies {
			err := row(w, false, p.Body,
				fmt.Sprintf("%.4f", p.Tropical), fmt.Sprintf("%.4f", p.Sidereal),
				p.Sign, fmt.Sprint(p.House))
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>")
		return err
	})
}

func periodTable(periods []jyotish.PeriodRecord, current jyotish.PeriodRecord, lord func(jyotish.PeriodRecord) string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table>"); err != nil {
			return err
		}
		if err := headerRow(w, "Lord", "Start", "End"); err != nil {
			return err
		}
		for _, p := range periods {
			if err := row(w, p == current, lord(p), p.Start, p.End); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>")
		return err
	})
}
