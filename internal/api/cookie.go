package api

import (
	"net/http"

	"github.com/mathquiz/backend/internal/service"
)

// resolveSession loads or creates the caller's session and, when a token
// was minted, sets it as an HTTP-only SameSite=Lax cookie.
func (h *Handler) resolveSession(w http.ResponseWriter, r *http.Request) (*service.Handle, bool) {
	token := ""
	if c, err := r.Cookie(h.cookieName); err == nil {
		token = c.Value
	}

	handle, err := h.sessions.Resolve(r.Context(), token)
	if h.handleServiceError(w, err) {
		return nil, false
	}

	if handle.Created {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookieName,
			Value:    handle.Session.Token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return handle, true
}
