package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"worldcup-stats-service/internal/app/tables"
	apptournaments "worldcup-stats-service/internal/app/tournaments"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/http/requestutil"
)

// Handler wires HTTP routes to the tournament and table services.
type Handler struct {
	tournaments *apptournaments.Service
	tables      *tables.Service
	logger      *slog.Logger
	readyFn     func() bool
}

// NewHandler constructs a Handler. readyFn may be nil, in which case the service is always ready.
func NewHandler(tournamentSvc *apptournaments.Service, tableSvc *tables.Service, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		tournaments: tournamentSvc,
		tables:      tableSvc,
		logger:      logger,
		readyFn:     readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the dataset has been loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.readyFn == nil || h.readyFn() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded", h.logger)
}

// Tournaments lists every edition.
func (h *Handler) Tournaments(w http.ResponseWriter, r *http.Request) {
	list, err := h.tournaments.Tournaments()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, list, h.logger)
}

// Tournament returns the info panel for /tournaments/{year}.
func (h *Handler) Tournament(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid year", h.logger)
		return
	}
	info, err := h.tournaments.Info(year)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, info, h.logger)
}

// Chart returns bar chart geometry for ?dimension= with an optional ?selected= year.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	dim, err := tournaments.ParseDimension(r.URL.Query().Get("dimension"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	selected, _, err := requestutil.IntQuery(r, "selected")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid selected year", h.logger)
		return
	}

	c, err := h.tournaments.Chart(dim, selected)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c, h.logger)
}

// Map returns country classes and medal markers for ?year=.
func (h *Handler) Map(w http.ResponseWriter, r *http.Request) {
	year, ok, err := requestutil.IntQuery(r, "year")
	if err != nil || !ok {
		writeError(w, r, http.StatusBadRequest, "year is required", h.logger)
		return
	}
	m, err := h.tournaments.Map(year)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, m, h.logger)
}

// Bracket returns the laid-out knockout tree.
func (h *Handler) Bracket(w http.ResponseWriter, r *http.Request) {
	layout, err := h.tables.Bracket()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, layout, h.logger)
}

// Teams returns the collapsed results table.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	rows, err := h.tables.Teams()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, rows, h.logger)
}

// OpenSession starts a table session.
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.tables.Open(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.Header().Set("Location", "/table/sessions/"+view.SessionID)
	writeJSON(w, http.StatusCreated, view, h.logger)
}

// Session returns a session's current rows.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	view, err := h.tables.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Toggle expands or collapses ?row= in the session.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	row, ok := h.rowParam(w, r)
	if !ok {
		return
	}
	view, err := h.tables.Toggle(r.Context(), r.PathValue("id"), row)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Reset collapses every team in the session.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	view, err := h.tables.Reset(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Highlight reports the bracket highlight for hovering ?row=.
func (h *Handler) Highlight(w http.ResponseWriter, r *http.Request) {
	row, ok := h.rowParam(w, r)
	if !ok {
		return
	}
	hl, err := h.tables.Highlight(r.PathValue("id"), row)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, hl, h.logger)
}

func (h *Handler) rowParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	row, ok, err := requestutil.IntQuery(r, "row")
	if err != nil || !ok {
		writeError(w, r, http.StatusBadRequest, "row must be an integer", h.logger)
		return 0, false
	}
	return row, true
}
