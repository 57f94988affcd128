// Package server is the offline-first gateway: it serves the planner's
// web shell from the versioned asset cache, falling back to the upstream
// origin on cache misses and to the cached root document when an offline
// navigation request can be satisfied no other way.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/existflow/dayplan/internal/appcache"
	"github.com/existflow/dayplan/internal/config"
	"github.com/existflow/dayplan/internal/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the offline gateway
type Server struct {
	echo     *echo.Echo
	storage  *appcache.Storage
	client   *http.Client
	upstream string
	version  string
	manifest []string

	// active is the generation requests are served from. It equals the
	// configured version after a successful install; after a failed
	// install it stays on whatever generation was already on disk.
	active string
}

// New creates a gateway and runs the cache lifecycle for the configured
// version. Install failure is not fatal: the previous generation stays
// authoritative and install is retried on the next start.
func New(cfg *config.Config) (*Server, error) {
	storage, err := appcache.NewStorage(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		storage:  storage,
		client:   &http.Client{Timeout: 30 * time.Second},
		upstream: cfg.UpstreamURL,
		version:  cfg.CacheVersion,
		manifest: cfg.Manifest,
	}

	s.refreshCache(context.Background())
	s.setupEcho()
	return s, nil
}

// refreshCache installs the configured version if it is not cached yet,
// then activates it, evicting every other generation.
func (s *Server) refreshCache(ctx context.Context) {
	if !s.storage.Has(s.version) {
		if err := s.storage.Install(ctx, s.client, s.upstream, s.version, s.manifest); err != nil {
			logger.Error("Cache install failed, serving previous generation",
				logger.F("version", s.version),
				logger.F("error", err))
		}
	}

	if s.storage.Has(s.version) {
		if err := s.storage.Activate(s.version); err != nil {
			logger.Error("Cache activation failed", logger.F("error", err))
		}
		s.active = s.version
		return
	}

	// No current generation; fall back to whatever survived.
	versions, err := s.storage.Versions()
	if err == nil && len(versions) > 0 {
		s.active = versions[0]
	}
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("HTTP Request",
				logger.F("method", c.Request().Method),
				logger.F("uri", c.Request().RequestURI),
				logger.F("status", c.Response().Status),
				logger.F("duration", time.Since(start).String()))
			return err
		}
	})
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/healthz", s.handleHealth)
	e.Any("/*", s.handleFetch)

	s.echo = e
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"cache":  s.active,
	})
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the gateway
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}
