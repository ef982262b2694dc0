// Package server exposes the analysis over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/bthstudent/javcheck/audit"
	"github.com/bthstudent/javcheck/grouping"
)

type Config struct {
	Listen    string
	Sources   []string
	BaseBoard string
	Threshold int
}

type Server struct {
	log      *slog.Logger
	cfg      Config
	fetcher  audit.Fetcher
	auditor  *audit.Auditor
	analyzer *grouping.Analyzer
	e        *echo.Echo
}

// New sets up the routes. metrics may be nil.
func New(log *slog.Logger, cfg Config, fetcher audit.Fetcher, metrics *grouping.Metrics) *Server {
	srv := &Server{
		log:      log,
		cfg:      cfg,
		fetcher:  fetcher,
		auditor:  audit.NewAuditor(log, metrics),
		analyzer: grouping.NewAnalyzer(log, metrics),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(slogecho.New(log))
	e.Use(otelecho.Middleware("javcheck"))
	e.Use(middleware.Recover())

	e.GET("/healthz", srv.healthz)

	api := e.Group("/api/v1")
	api.POST("/analyze", srv.analyze)
	api.GET("/audit", srv.audit)

	srv.e = e
	return srv
}

func (srv *Server) Handler() http.Handler {
	return srv.e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		srv.log.InfoContext(ctx, "http server starting", "listen", srv.cfg.Listen)
		errc <- srv.e.Start(srv.cfg.Listen)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv.log.InfoContext(ctx, "http server shutting down")
	return srv.e.Shutdown(shutdownCtx)
}

func (srv *Server) healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
