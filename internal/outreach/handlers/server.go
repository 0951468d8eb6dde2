// Package handlers provides the REST HTTP server for the outreach service,
// bridging the transport layer and business logic and translating between
// JSON payloads and domain models.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gartstein/outreach/internal/outreach/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Server holds the HTTP server serving the REST API.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	endpoint   string
}

// NewServer constructs a Server listening on the given port.
func NewServer(port int, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{},
		logger:     logger,
		endpoint:   fmt.Sprintf(":%d", port),
	}
}

// RegisterRoutes mounts the REST routes and wraps the router with CORS and
// the JWT auth middleware.
func (s *Server) RegisterRoutes(h *Handler, jwtSecret string, allowedOrigins []string) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)

	r.Route("/communication-methods", func(r chi.Router) {
		r.Get("/", h.ListMethods)
		r.Post("/", h.CreateMethod)
		r.Put("/{id}", h.UpdateMethod)
		r.Delete("/{id}", h.DeleteMethod)
	})

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", h.ListCompanies)
		r.Post("/", h.CreateCompany)
		r.Get("/{id}", h.GetCompany)
		r.Put("/{id}", h.UpdateCompany)
		r.Delete("/{id}", h.DeleteCompany)
	})

	r.Route("/communications", func(r chi.Router) {
		r.Post("/", h.LogCommunication)
		r.Get("/{id}", h.GetCommunication)
		r.Delete("/{id}", h.DeleteCommunication)
	})

	r.Route("/next-communications", func(r chi.Router) {
		r.Get("/", h.ListActiveSchedules)
		r.Post("/", h.CreateSchedule)
		r.Get("/{companyID}", h.ListCompanySchedules)
		r.Put("/{id}", h.RescheduleContact)
		r.Delete("/{id}", h.CancelSchedule)
	})

	r.Get("/notifications", h.GetNotifications)
	r.Get("/user-dashboard", h.GetDashboard)

	s.httpServer.Handler = auth.HTTPMiddleware(r, jwtSecret)
	s.httpServer.Addr = s.endpoint
}

// Start runs the HTTP server, returning on the first error.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("endpoint", s.endpoint))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP serve error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Server stopped")
}
