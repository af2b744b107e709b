package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/mailbox/internal/config"
	"github.com/ignite/mailbox/internal/service/email"
	"github.com/ignite/mailbox/internal/service/user"
)

// Server represents the API server.
type Server struct {
	config  config.ServerConfig
	handler http.Handler
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new API server wired to the given services. The
// throttle and health checker may be nil when redis/db probes are not
// configured.
func NewServer(
	cfg config.ServerConfig,
	users *user.Service,
	emails *email.Service,
	throttle *SendThrottle,
	health *HealthChecker,
) *Server {
	h := NewHandlers(users, emails, throttle)
	router := SetupRoutes(h, health)

	return &Server{
		config:  cfg,
		handler: router,
		router:  router,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.handler }
