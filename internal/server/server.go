package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/brandpulseai/brandpulse/internal/handler"
	"github.com/brandpulseai/brandpulse/internal/middleware"
)

// Server wraps the HTTP server
type Server struct {
	port           string
	apiHandler     *handler.APIHandler
	authMiddleware *middleware.AuthMiddleware
}

// New creates a new HTTP server
func New(port string, authToken string, apiHandler *handler.APIHandler) *Server {
	return &Server{
		port:           port,
		apiHandler:     apiHandler,
		authMiddleware: middleware.NewAuthMiddleware(authToken),
	}
}

// SetupRoutes configures HTTP routes
func (s *Server) SetupRoutes() {
	auth := s.authMiddleware.Authenticate
	http.HandleFunc("/api/feedback", auth(s.apiHandler.HandleFeedback))
	http.HandleFunc("/api/dashboard", auth(s.apiHandler.HandleDashboard))
	http.HandleFunc("/api/reports", auth(s.apiHandler.HandleReports))
	http.HandleFunc("/api/settings/profile", auth(s.apiHandler.HandleProfile))
	http.HandleFunc("/api/live/start", auth(s.apiHandler.HandleLiveStart))
	http.HandleFunc("/api/live/stop", auth(s.apiHandler.HandleLiveStop))
	http.HandleFunc("/api/live", auth(s.apiHandler.HandleLiveStatus))
	http.HandleFunc("/health", handler.HandleHealth)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.SetupRoutes()

	log.Printf("HTTP server listening on :%s", s.port)
	if err := http.ListenAndServe(":"+s.port, nil); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
