package httpadapter

import (
	"net/http"

	"adsight/internal/core/port"
)

// handleRegister creates an account, attaches the session cookie and
// returns the public user summary.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in port.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}
	s, err := h.svc.Auth.Register(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setSessionCookie(w, s)
	writeJSON(w, http.StatusOK, s.User)
}

// handleLogin answers 401 with the same body whether the email is unknown
// or the password is wrong.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in port.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}
	s, err := h.svc.Auth.Login(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setSessionCookie(w, s)
	writeJSON(w, http.StatusOK, s.User)
}

// handleLogout always succeeds and clears the cookie.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_ = h.svc.Auth.Logout(r.Context(), tokenFrom(r))
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
