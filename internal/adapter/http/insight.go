package httpadapter

import (
	"net/http"
	"strconv"

	"adsight/internal/core/port"
)

// handleChat never fails because of the advisor; the use case substitutes
// a fallback reply.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var in port.ChatInput
	if !decodeJSON(w, r, &in) {
		return
	}
	reply, err := h.svc.Insights.Chat(r.Context(), userFrom(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.Insights.Insights(r.Context(), userFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"insights": insights})
}

// handleHistory lists recent assistant exchanges. An absent ?limit= means
// the default; a present one must be a non-negative integer and is clamped
// by the use case.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeMessage(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	items, err := h.svc.Insights.History(r.Context(), userFrom(r.Context()), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
