package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apptournaments "worldcup-stats-service/internal/app/tournaments"
	"worldcup-stats-service/internal/http/middleware"
	"worldcup-stats-service/internal/http/requestutil"
	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/providers"
	"worldcup-stats-service/internal/resultlist"
	"worldcup-stats-service/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)
	switch {
	case errors.Is(err, resultlist.ErrInvalidArgument):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, apptournaments.ErrTournamentNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, store.ErrNotLoaded):
		writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded", logger)
	case errors.Is(err, providers.ErrNotFound),
		errors.Is(err, providers.ErrUnknownDataset),
		errors.Is(err, resultlist.ErrDuplicateTeam):
		logging.Error(logger, "dataset provider failed", err)
		writeError(w, r, http.StatusBadGateway, "dataset unavailable", logger)
	default:
		if _, ok := providers.AsRateLimitError(err); ok {
			writeError(w, r, http.StatusBadGateway, "dataset unavailable", logger)
			return
		}
		var decodeErr *providers.DecodeError
		if errors.As(err, &decodeErr) {
			writeError(w, r, http.StatusBadGateway, "dataset unavailable", logger)
			return
		}
		logging.Error(logger, "request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
