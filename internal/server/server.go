package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"vitibrasil/scraper/internal/config"
	"vitibrasil/scraper/internal/domain"
	"vitibrasil/scraper/internal/query"
	"vitibrasil/scraper/internal/service"

	log "github.com/sirupsen/logrus"
)

// Server exposes the scraping service over HTTP.
type Server struct {
	httpServer *http.Server
	service    *service.Service
}

func New(cfg config.ServerConfig, svc *service.Service) *Server {
	s := &Server{
		service: svc,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/scrape", s.handleScrape)
	mux.HandleFunc("/categories", s.handleCategories)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: mux,
	}

	return s
}

// Handler returns the routing handler, mainly so tests can drive the
// server without binding a port.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) ListenAndServe() error {
	log.Infof("🚀 HTTP server listening on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("🛑 Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}

// handleScrape serves GET /scrape?year=&category=&subcategory=.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, domain.NewErrorResponse("method not allowed"))
		return
	}

	params := query.Params{
		Year:        r.URL.Query().Get("year"),
		Category:    r.URL.Query().Get("category"),
		Subcategory: r.URL.Query().Get("subcategory"),
	}

	if params.Year == "" {
		writeJSON(w, http.StatusBadRequest, domain.NewErrorResponse("missing required parameter: year"))
		return
	}
	if params.Category == "" {
		writeJSON(w, http.StatusBadRequest, domain.NewErrorResponse("missing required parameter: category"))
		return
	}

	result := s.service.GetTableData(r.Context(), params)
	if result.Error != nil {
		writeJSON(w, result.HTTPStatus, result.Error)
		return
	}
	writeJSON(w, result.HTTPStatus, result.Table)
}

// handleCategories serves GET /categories.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, domain.NewErrorResponse("method not allowed"))
		return
	}

	writeJSON(w, http.StatusOK, s.service.Categories())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("❌ Failed to encode response: %v", err)
	}
}
