package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adsight/internal/core/port"
)

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	campaigns, err := h.svc.Campaigns.List(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CreateCampaignInput
	if !decodeJSON(w, r, &in) {
		return
	}
	user := userFrom(r.Context())
	c, err := h.svc.Campaigns.Create(r.Context(), user.ID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type statusRequest struct {
	Status string `json:"status"`
}

// handleSetCampaignStatus answers 404 for malformed ids as well as for
// campaigns owned by someone else.
func (h *Handler) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in statusRequest
	if !decodeJSON(w, r, &in) {
		return
	}
	user := userFrom(r.Context())
	c, err := h.svc.Campaigns.SetStatus(r.Context(), user.ID, id, in.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Not found")
		return uuid.Nil, false
	}
	return id, true
}
