package httpadapter

import "net/http"

func (h *Handler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	alerts, err := h.svc.Alerts.List(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (h *Handler) handleMarkAlertRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user := userFrom(r.Context())
	a, err := h.svc.Alerts.MarkRead(r.Context(), user.ID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
