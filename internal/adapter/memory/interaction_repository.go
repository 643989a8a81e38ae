package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

// InteractionRepository implements port.InteractionRepository as an
// append-only slice.
type InteractionRepository struct {
	mu    sync.RWMutex
	items []domain.AiInteraction
}

// NewInteractionRepository returns an empty log.
func NewInteractionRepository() *InteractionRepository {
	return &InteractionRepository{}
}

// Create appends i to the log.
func (r *InteractionRepository) Create(_ context.Context, i *domain.AiInteraction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *i)
	return nil
}

// ListRecent returns up to limit entries of the owner, newest first.
func (r *InteractionRepository) ListRecent(_ context.Context, ownerID uuid.UUID, limit int) ([]domain.AiInteraction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AiInteraction, 0)
	for i := len(r.items) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if r.items[i].UserID == ownerID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}
