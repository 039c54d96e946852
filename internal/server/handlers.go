package server

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/internal/store"
	"github.com/akhenakh/jyotish/timescale"
)

var errNoArchive = fiber.NewError(fiber.StatusServiceUnavailable, "chart archive is disabled")

// compute applies the current settings to birth data.
func (s *Server) compute(b *jyotish.BirthData) (*jyotish.Chart, error) {
	st := s.Settings()
	in := b.Input()
	in.Ayanamsa = st.Ayanamsa
	in.Source = st.Source
	return jyotish.Compute(in)
}

// birthFromQuery reads date, time, offset, lat, lon and mode.
func (s *Server) birthFromQuery(c *fiber.Ctx) (*jyotish.BirthData, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return nil, &jyotish.InputError{Field: "latitude", Value: c.Query("lat")}
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return nil, &jyotish.InputError{Field: "longitude", Value: c.Query("lon")}
	}
	r := jyotish.BirthRecord{
		Name:      c.Query("name"),
		Date:      c.Query("date"),
		Time:      c.Query("time", "00:00"),
		UTCOffset: c.Query("offset"),
		Latitude:  lat,
		Longitude: lon,
		Mode:      c.Query("mode", s.Settings().Mode.String()),
	}
	return r.ToBirthData()
}

func (s *Server) chartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := s.birthFromQuery(c)
		if err != nil {
			return err
		}
		chart, err := s.compute(b)
		if err != nil {
			return err
		}
		return c.JSON(chart.View(c.QueryBool("full")))
	}
}

type createResponse struct {
	ID    string            `json:"id"`
	Chart jyotish.ChartView `json:"chart"`
}

func (s *Server) createHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.archive == nil {
			return errNoArchive
		}
		var r jyotish.BirthRecord
		if err := c.BodyParser(&r); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
		}
		if r.Mode == "" {
			r.Mode = s.Settings().Mode.String()
		}
		b, err := r.ToBirthData()
		if err != nil {
			return err
		}
		chart, err := s.compute(b)
		if err != nil {
			return err
		}
		rec, err := s.archive.Save(c.UserContext(), b, chart)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(createResponse{ID: rec.ID, Chart: rec.View})
	}
}

type summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Birth     string    `json:"birth"`
	Mode      string    `json:"mode"`
	Nakshatra string    `json:"nakshatra"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) listHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.archive == nil {
			return errNoArchive
		}
		recs, err := s.archive.List(c.UserContext(), c.QueryInt("limit", 50))
		if err != nil {
			return err
		}
		out := make([]summary, 0, len(recs))
		for _, r := range recs {
			out = append(out, summary{r.ID, r.Name, r.Birth, r.Mode, r.Nakshatra, r.CreatedAt})
		}
		return c.JSON(out)
	}
}

// load fetches a record and recomputes its chart.
func (s *Server) load(ctx context.Context, id string) (store.Record, *jyotish.Chart, error) {
	if s.archive == nil {
		return store.Record{}, nil, errNoArchive
	}
	rec, err := s.archive.Get(ctx, id)
	if err != nil {
		return store.Record{}, nil, err
	}
	b, err := rec.BirthData()
	if err != nil {
		return store.Record{}, nil, err
	}
	chart, err := s.compute(b)
	if err != nil {
		return store.Record{}, nil, err
	}
	return rec, chart, nil
}

func (s *Server) getHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, chart, err := s.load(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(chart.View(c.QueryBool("full")))
	}
}

func (s *Server) deleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.archive == nil {
			return errNoArchive
		}
		if err := s.archive.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type currentDasha struct {
	JDUT            float64               `json:"jd_ut"`
	JDTT            float64               `json:"jd_tt"`
	Mahadasha       *jyotish.PeriodRecord `json:"mahadasha"`
	Antardasha      *jyotish.PeriodRecord `json:"antardasha"`
	Pratyantardasha *jyotish.PeriodRecord `json:"pratyantardasha"`
}

// queryInstant reads ?jd= (UT) and defaults to now.
func queryInstant(c *fiber.Ctx) (timescale.Instant, error) {
	raw := c.Query("jd")
	if raw == "" {
		return timescale.FromUT(timescale.JulianDate(time.Now())), nil
	}
	jd, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return timescale.Instant{}, &jyotish.InputError{Field: "jd", Value: raw}
	}
	return timescale.FromUT(jd), nil
}

func (s *Server) dashaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, chart, err := s.load(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		inst, err := queryInstant(c)
		if err != nil {
			return err
		}
		out := currentDasha{JDUT: inst.JDUT, JDTT: inst.JDTT}
		if p, ok := chart.CurrentMahadasha(inst.JDTT); ok {
			out.Mahadasha = &p
		}
		if p, ok := chart.CurrentAntardasha(inst.JDTT); ok {
			out.Antardasha = &p
		}
		if p, ok := chart.CurrentPratyantardasha(inst.JDTT); ok {
			out.Pratyantardasha = &p
		}
		return c.JSON(out)
	}
}

type divisionalBody struct {
	Body   string  `json:"body"`
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}

func (s *Server) divisionalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := c.ParamsInt("d")
		if err != nil {
			return &jyotish.InputError{Field: "division", Value: c.Params("d")}
		}
		_, chart, err := s.load(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		ps, err := chart.Divisional(d)
		if err != nil {
			return err
		}
		out := make([]divisionalBody, len(ps))
		for i, p := range ps {
			out[i] = divisionalBody{p.Body.String(), p.SignName(), p.Degree}
		}
		return c.JSON(out)
	}
}

func (s *Server) wheelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, chart, err := s.load(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
		return c.SendString(chart.GenerateWheelSVG())
	}
}

func (s *Server) pageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, chart, err := s.load(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		inst, err := queryInstant(c)
		if err != nil {
			return err
		}
		page := chartPage(rec, chart, inst.JDTT)
		handler := adaptor.HTTPHandler(templ.Handler(page))
		return handler(c)
	}
}

// modeLabel is used by the page for the current mode.
func modeLabel(m dasha.Mode) string {
	if m == dasha.CompatibilityAdjusted {
		return "compatibility adjusted"
	}
	return "astronomical"
}
