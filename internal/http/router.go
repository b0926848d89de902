package http

import (
	nethttp "net/http"

	"worldcup-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /tournaments", h.Tournaments)
	mux.HandleFunc("GET /tournaments/{year}", h.Tournament)
	mux.HandleFunc("GET /chart", h.Chart)
	mux.HandleFunc("GET /map", h.Map)

	mux.HandleFunc("GET /bracket", h.Bracket)
	mux.HandleFunc("GET /teams", h.Teams)
	mux.HandleFunc("POST /table/sessions", h.OpenSession)
	mux.HandleFunc("GET /table/sessions/{id}", h.Session)
	mux.HandleFunc("POST /table/sessions/{id}/toggle", h.Toggle)
	mux.HandleFunc("POST /table/sessions/{id}/reset", h.Reset)
	mux.HandleFunc("GET /table/sessions/{id}/highlight", h.Highlight)
	return mux
}
