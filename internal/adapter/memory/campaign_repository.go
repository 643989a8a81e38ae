package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository. Insertion order
// is kept so listings come back in creation order.
type CampaignRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*domain.Campaign
	order []uuid.UUID
}

// NewCampaignRepository returns an empty store.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{byID: make(map[uuid.UUID]*domain.Campaign)}
}

// ListByOwner returns the owner's campaigns in creation order.
func (r *CampaignRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Campaign, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.UserID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

// GetOwned returns (nil, nil) unless the campaign exists and belongs to
// ownerID.
func (r *CampaignRepository) GetOwned(_ context.Context, ownerID, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// Create stores a copy of c.
func (r *CampaignRepository) Create(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	if _, ok := r.byID[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = &cp
	return nil
}

// UpdateStatus sets status and LastUpdated under the write lock.
func (r *CampaignRepository) UpdateStatus(_ context.Context, ownerID, id uuid.UUID, status domain.CampaignStatus, at time.Time) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	c.Status = status
	c.LastUpdated = at
	cp := *c
	return &cp, nil
}
