package httpadapter

import "net/http"

// handleDashboard returns metrics, campaign summaries, unread alerts, the
// revenue chart and recent activity for the caller.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard.Get(r.Context(), userFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
