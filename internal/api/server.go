package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"kiosco/internal/config"
	"kiosco/internal/types"
)

// NewsProvider is the interface the API uses to read and refresh the feed.
type NewsProvider interface {
	Get(ctx context.Context, forceRefresh bool) (*types.Snapshot, error)
	Refresh(ctx context.Context) (*types.Snapshot, error)
}

// Server exposes the landing feed over HTTP.
type Server struct {
	mux      *http.ServeMux
	port     int
	provider NewsProvider
	logger   *slog.Logger
}

// NewServer creates the API server around a news provider.
func NewServer(port int, provider NewsProvider, logger *slog.Logger) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		port:     port,
		provider: provider,
		logger:   logger.With("component", "api"),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving the API until the listener fails.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("api server starting", "addr", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/news", s.handleNews)
	s.mux.HandleFunc("POST /api/news/refresh", s.handleRefresh)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": config.Version,
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "true"

	snap, err := s.provider.Get(r.Context(), force)
	if err != nil {
		s.logger.Error("get snapshot failed", "error", err)
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "snapshot unavailable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshotPayload(snap))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, err := s.provider.Refresh(r.Context())
	if err != nil {
		s.logger.Error("refresh failed", "error", err)
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "refresh failed"})
		return
	}
	s.logger.Info("manual refresh complete", "articles", len(snap.Articles), "duration", time.Since(start))
	s.jsonResponse(w, http.StatusOK, snapshotPayload(snap))
}

// snapshotPayload keeps the articles field a JSON array even when the
// snapshot is empty.
func snapshotPayload(snap *types.Snapshot) *types.Snapshot {
	if snap.Articles == nil {
		copied := *snap
		copied.Articles = []types.Article{}
		return &copied
	}
	return snap
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
