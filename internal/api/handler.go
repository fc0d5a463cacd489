// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mathquiz/backend/internal/live"
	"github.com/mathquiz/backend/internal/service"
)

// Deps are the services the HTTP layer drives.
type Deps struct {
	Sessions   *service.SessionManager
	Stats      *service.StatsService
	Quiz       *service.QuizService
	Admin      *service.AdminService
	Live       *live.Hub
	CookieName string
}

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	sessions   *service.SessionManager
	stats      *service.StatsService
	quiz       *service.QuizService
	admin      *service.AdminService
	live       *live.Hub
	cookieName string
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(d Deps, logger *slog.Logger) *Handler {
	return &Handler{
		sessions:   d.Sessions,
		stats:      d.Stats,
		quiz:       d.Quiz,
		admin:      d.Admin,
		live:       d.Live,
		cookieName: d.CookieName,
		logger:     logger,
	}
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	OK      bool   `json:"ok" example:"false"`
	Kind    string `json:"kind,omitempty" example:"out_of_sync"`
	Message string `json:"message" example:"question out of sync, fetch the next one"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// handleServiceError writes the response for err and returns true if the
// caller should stop. Expected outcomes carry their kind; anything else is
// logged and reported as an internal error.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var se *service.Error
	if !errors.As(err, &se) {
		h.logger.Error("service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return true
	}

	status := http.StatusBadRequest
	switch se.Kind {
	case service.KindDailyLimit:
		// Reaching the cap is a normal outcome the UI shows as a friendly note.
		status = http.StatusOK
	case service.KindUnauthorized:
		status = http.StatusUnauthorized
	}
	respondJSON(w, status, ErrorResponse{Kind: string(se.Kind), Message: se.Message})
	return true
}

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
