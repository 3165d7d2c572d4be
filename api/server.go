// Package api exposes the display state over JSON HTTP so any presentation
// layer can render it and report user actions back.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weather-display/app"
	"weather-display/datasource"
	"weather-display/i18n"
	"weather-display/location"
)

// Server represents the API server
type Server struct {
	orchestrator *app.Orchestrator
	alerts       *app.AlertQueue
	server       *http.Server
}

// NewServer creates a new API server. alerts may be nil when alerts are
// delivered some other way.
func NewServer(orchestrator *app.Orchestrator, alerts *app.AlertQueue, port string) *Server {
	mux := http.NewServeMux()

	server := &Server{
		orchestrator: orchestrator,
		alerts:       alerts,
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	// Display state
	mux.HandleFunc("/api/state", server.handleGetState)
	mux.HandleFunc("/api/view", server.handleGetView)

	// User actions
	mux.HandleFunc("/api/search", server.handleSearch)
	mux.HandleFunc("/api/language", server.handleLanguage)
	mux.HandleFunc("/api/alerts", server.handleDrainAlerts)

	// Health check
	mux.HandleFunc("/api/health", server.handleHealthCheck)

	return server
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins the API server. It returns nil after Shutdown.
func (s *Server) Start() error {
	slog.Info("starting API server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleGetState returns the raw UI state including the snapshot
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := s.orchestrator.State()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":     state,
		"timestamp": time.Now(),
	})
}

// handleGetView returns the localized display view of the current snapshot
func (s *Server) handleGetView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeView(w)
}

// writeView encodes the current view, or 404 before the first snapshot
func (s *Server) writeView(w http.ResponseWriter) {
	v, err := s.orchestrator.View()
	if err != nil {
		if errors.Is(err, app.ErrNoSnapshot) {
			state := s.orchestrator.State()
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error":     err.Error(),
				"isLoading": state.IsLoading,
			})
			return
		}
		slog.Error("failed to build view", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to build view: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"view":      v,
		"timestamp": time.Now(),
	})
}

type searchRequest struct {
	Query string `json:"query"`
}

// handleSearch runs a location search and returns the resulting view
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.orchestrator.SubmitSearch(r.Context(), req.Query); err != nil {
		writeActionError(w, err)
		return
	}
	s.writeView(w)
}

type languageRequest struct {
	Language string `json:"language"`
}

// handleLanguage switches the display language
func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lang, err := i18n.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.orchestrator.ChangeLanguage(r.Context(), lang); err != nil {
		writeActionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language":  lang,
		"timestamp": time.Now(),
	})
}

// handleDrainAlerts returns and clears the pending alerts
func (s *Server) handleDrainAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	alerts := []app.PendingAlert{}
	if s.alerts != nil {
		alerts = s.alerts.Drain()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// writeActionError maps orchestrator errors to HTTP statuses. The user-facing
// text has already been raised as an alert.
func writeActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, location.ErrInvalidInput), errors.Is(err, i18n.ErrUnsupportedLanguage):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrStaleResponse):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, datasource.ErrFetch):
		writeError(w, http.StatusBadGateway, "Failed to fetch weather data")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
