// Package api exposes the computed ratings over a small REST surface.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lvgk/csimpact/internal/storage"
)

// Server is the REST API server.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a REST server over the given store.
func NewServer(port string, db *storage.DB) *Server {
	handler := NewHandler(db)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/players", handler.GetPlayers).Methods("GET")
	api.HandleFunc("/players/{name}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/players/{name}/scout", handler.GetPlayerScout).Methods("GET")

	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/{name}", handler.GetTeam).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
