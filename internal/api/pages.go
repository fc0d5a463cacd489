package api

import (
	"encoding/json"
	"net/http"
)

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []manifestIcon `json:"icons"`
}

var appManifest = manifest{
	Name:            "Math Quiz",
	ShortName:       "Math",
	StartURL:        "/start",
	Display:         "standalone",
	BackgroundColor: "#ffffff",
	ThemeColor:      "#4f46e5",
	Icons:           []manifestIcon{},
}

// GET /manifest.json, GET /manifest.webmanifest
func (h *Handler) manifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/manifest+json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(appManifest)
}

// health reports liveness.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  OKResponse
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, OKResponse{OK: true})
}

// GET /favicon.ico, GET /.well-known/
func (h *Handler) noContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
