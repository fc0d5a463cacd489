package api

import "net/http"

// RegisterRoutes wires every handler onto mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler, adminRatePerMin int) {
	// Pages
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /start", h.start)
	mux.HandleFunc("GET /home", h.home)
	mux.HandleFunc("GET /home/{child}", h.selectChild)
	mux.HandleFunc("GET /quiz", h.quizStatus)

	// Quiz
	mux.HandleFunc("GET /api/question", h.getQuestion)
	mux.HandleFunc("POST /api/answer", h.submitAnswer)
	mux.HandleFunc("POST /api/logout", h.logout)

	// Stats
	mux.HandleFunc("GET /api/stats", h.apiStats)
	mux.HandleFunc("GET /api/recap", h.recap)
	mux.HandleFunc("GET /api/export", h.export)
	mux.HandleFunc("GET /ws/stats", h.wsStats)

	// Admin
	mux.Handle("POST /api/admin/clear", RateLimit(adminRatePerMin)(http.HandlerFunc(h.clearDatabase)))

	// Static
	mux.HandleFunc("GET /manifest.json", h.manifest)
	mux.HandleFunc("GET /manifest.webmanifest", h.manifest)
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /favicon.ico", h.noContent)
	mux.HandleFunc("GET /.well-known/", h.noContent)
}
