package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/david/tender-board/internal/config"
	"github.com/david/tender-board/internal/filter"
	"github.com/david/tender-board/internal/ingest"
	"github.com/david/tender-board/internal/models"
)

const topLocationsLimit = 10

type Server struct {
	Cache *ingest.Cache
	Echo  *echo.Echo

	cfg config.Config
	now func() time.Time
}

func NewServer(cfg config.Config) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	cache := ingest.NewCache(cfg.Source.Path, ingest.Options{
		RichEventProps:    cfg.Features.RichEventProps,
		UrgentWindowDays:  cfg.Features.UrgentWindowDays,
		TitleDisplayLimit: cfg.Features.TitleDisplayLimit,
	})

	s := &Server{
		Cache: cache,
		Echo:  e,
		cfg:   cfg,
		now:   time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.GET("/tenders", s.handleListTenders)
	api.GET("/events", s.handleListEvents)
	api.GET("/categories", s.handleListCategories)
	api.GET("/aggregations", s.handleGetAggregations)
	api.GET("/stats", s.handleGetStats)
	api.POST("/refresh", s.handleRefresh)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// filterParams reads the boundary filter inputs. A malformed min_date
// is substituted with today rather than rejected; an unknown category
// falls through to the engine, which yields an empty result.
func (s *Server) filterParams(c echo.Context) filter.Params {
	p := filter.Params{Category: c.QueryParam("category")}
	if v := c.QueryParam("min_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			p.MinDate = t
		}
	}
	return p
}

// snapshot fetches the current dataset, translating a source failure
// into a 503 that is distinguishable from an empty result.
func (s *Server) snapshot(c echo.Context) (*ingest.Dataset, error) {
	ds, err := s.Cache.Snapshot()
	if err != nil {
		if errors.Is(err, ingest.ErrSourceUnavailable) {
			return nil, c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		}
		return nil, c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return ds, nil
}

func (s *Server) handleListTenders(c echo.Context) error {
	ds, err := s.snapshot(c)
	if ds == nil {
		return err
	}
	res := filter.Apply(ds, s.filterParams(c), s.now())
	rows := filter.Decorate(res.Rows, s.now())
	return c.JSON(http.StatusOK, map[string]any{
		"tenders": rows,
		"total":   len(rows),
	})
}

func (s *Server) handleListEvents(c echo.Context) error {
	ds, err := s.snapshot(c)
	if ds == nil {
		return err
	}
	res := filter.Apply(ds, s.filterParams(c), s.now())
	events := res.Events
	if date := c.QueryParam("date"); date != "" {
		if _, perr := time.Parse(models.EventDateFormat, date); perr != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		}
		events = filter.EventsOn(events, date)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}

func (s *Server) handleListCategories(c echo.Context) error {
	ds, err := s.snapshot(c)
	if ds == nil {
		return err
	}
	categories := append([]string{filter.AllCategories}, ds.Categories...)
	return c.JSON(http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleGetAggregations(c echo.Context) error {
	ds, err := s.snapshot(c)
	if ds == nil {
		return err
	}
	res := filter.Apply(ds, s.filterParams(c), s.now())
	now := s.now()
	return c.JSON(http.StatusOK, map[string]any{
		"locations":     filter.LocationCounts(res.Rows),
		"top_locations": filter.TopLocations(res.Rows, topLocationsLimit),
		"monthly":       filter.MonthlyCounts(res.Rows, now),
		"daily":         filter.DailyCounts(res.Rows),
		"urgency":       filter.UrgencyCounts(res.Rows, now),
	})
}

func (s *Server) handleGetStats(c echo.Context) error {
	ds, err := s.snapshot(c)
	if ds == nil {
		return err
	}
	res := filter.Apply(ds, s.filterParams(c), s.now())
	return c.JSON(http.StatusOK, filter.Stats(res.Rows, len(ds.Categories), s.now()))
}

func (s *Server) handleRefresh(c echo.Context) error {
	ds, err := s.Cache.Refresh()
	if err != nil {
		if errors.Is(err, ingest.ErrSourceUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"tenders": len(ds.Rows),
		"skipped": ds.Skipped,
		"loaded":  ds.LoadedAt,
	})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
