package serve

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	classifypkg "github.com/clauseai/clausehound/pkg/classify"
	extractpkg "github.com/clauseai/clausehound/pkg/extract"
	"github.com/clauseai/clausehound/pkg/fetcher"
)

// Server exposes text extraction and SaaS classification over HTTP for the
// browser-side analyze flow.
type Server struct {
	fetcher *fetcher.Fetcher
	log     *slog.Logger
}

func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		fetcher: fetcher.New(),
		log:     logger,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHealth)
	mux.HandleFunc("POST /extract-from-url", s.handleExtractFromURL)
	mux.HandleFunc("POST /classify-saas", s.handleClassifySaaS)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "clausehound backend running"})
}

type extractRequest struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
}

func (s *Server) handleExtractFromURL(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.URL == "" {
		s.writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	result, err := extractpkg.FromURL(r.Context(), s.fetcher, req.URL, req.ContentType)
	if err != nil {
		// Upstream fetch failures keep their status so the caller can tell a
		// blocked page from a broken one.
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			s.writeError(w, statusErr.StatusCode, statusErr.Detail)
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleClassifySaaS(w http.ResponseWriter, r *http.Request) {
	var input classifypkg.VendorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	writeJSON(w, http.StatusOK, classifypkg.Classify(input, nil))
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.log.Warn("request failed", "status", status, "detail", detail)
	writeJSON(w, status, map[string]any{"success": false, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
