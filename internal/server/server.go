// Package server exposes chart computation and the chart archive over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/ephemeris"
	"github.com/akhenakh/jyotish/frames"
	"github.com/akhenakh/jyotish/internal/store"
	"github.com/akhenakh/jyotish/timescale"
)

// Archive is the subset of the chart store used by the handlers.
type Archive interface {
	Save(ctx context.Context, birth *jyotish.BirthData, c *jyotish.Chart) (store.Record, error)
	Get(ctx context.Context, id string) (store.Record, error)
	List(ctx context.Context, limit int) ([]store.Record, error)
	Delete(ctx context.Context, id string) error
}

// Settings are the computation defaults applied to new requests.
type Settings struct {
	Mode     dasha.Mode
	Ayanamsa frames.AyanamsaModel
	Source   ephemeris.Source
}

// Server wires the HTTP routes.
type Server struct {
	archive  Archive
	settings atomic.Pointer[Settings]
}

// New returns a server. archive may be nil, in which case the archive
// routes answer 503.
func New(archive Archive, s Settings) *Server {
	srv := &Server{archive: archive}
	srv.SetSettings(s)
	return srv
}

// SetSettings swaps the defaults used by subsequent requests.
func (s *Server) SetSettings(st Settings) {
	if st.Ayanamsa.J2000Arcsec == 0 {
		st.Ayanamsa = frames.Lahiri
	}
	if st.Source == nil {
		st.Source = ephemeris.SeriesSource{}
	}
	s.settings.Store(&st)
}

// Settings returns the current defaults.
func (s *Server) Settings() Settings {
	return *s.settings.Load()
}

// App builds the fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "jyotish",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())

	app.Get("/api/chart", s.chartHandler())
	app.Get("/api/charts", s.listHandler())
	app.Post("/api/charts", s.createHandler())
	app.Get("/api/charts/:id", s.getHandler())
	app.Delete("/api/charts/:id", s.deleteHandler())
	app.Get("/api/charts/:id/dasha", s.dashaHandler())
	app.Get("/api/charts/:id/divisional/:d", s.divisionalHandler())
	app.Get("/charts/:id", s.pageHandler())
	app.Get("/charts/:id/wheel.svg", s.wheelHandler())

	return app
}

// Listen serves on addr until the app fails.
func (s *Server) Listen(addr string) error {
	log.Printf("Starting server on %s", addr)
	return s.App().Listen(addr)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var (
		fe *fiber.Error
		ce *timescale.CalendarError
		ie *jyotish.InputError
		de *jyotish.DivisionError
		le *jyotish.ChartError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &ce), errors.As(err, &ie), errors.As(err, &de), errors.As(err, &le):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
