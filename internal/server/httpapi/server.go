// Package httpapi exposes the account operations over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/mcpcare/internal/common"
	"github.com/dmitrijs2005/mcpcare/internal/logging"
	"github.com/dmitrijs2005/mcpcare/internal/server/config"
	"github.com/dmitrijs2005/mcpcare/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	address         string
	corsOrigins     []string
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           *services.UserService
	metrics         *Metrics
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService) *Server {
	return &Server{
		address:         cfg.Addr(),
		corsOrigins:     cfg.CORSOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          l.With("module", "http_server"),
		users:           us,
		metrics:         NewMetrics(),
	}
}

// Router builds the route table with its middleware chain.
func (s *Server) Router() http.Handler {
	h := &handler{users: s.users, logger: s.logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", common.AccessTokenHeaderName, RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Get("/profile", h.profile)

	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
