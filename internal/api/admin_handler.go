package api

import (
	"encoding/json"
	"net/http"
)

type ClearRequest struct {
	Password string `json:"password" example:"s3cret"`
}

type ClearResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"message" example:"database cleared"`
}

// clearDatabase wipes sessions and daily aggregates.
// @Summary      Clear database
// @Description  Deletes every session and daily aggregate when the admin password matches. Rate-limited per client IP.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        body  body      ClearRequest  true  "Admin password"
// @Success      200   {object}  ClearResponse
// @Failure      401   {object}  ErrorResponse  "wrong password"
// @Failure      429   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/admin/clear [post]
func (h *Handler) clearDatabase(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	// A malformed body is just an empty password.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if h.handleServiceError(w, h.admin.ClearDatabase(r.Context(), req.Password)) {
		return
	}
	respondJSON(w, http.StatusOK, ClearResponse{OK: true, Message: "database cleared"})
}
