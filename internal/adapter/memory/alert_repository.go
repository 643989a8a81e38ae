package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

// AlertRepository implements port.AlertRepository.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts []*domain.Alert
}

// NewAlertRepository returns an empty store.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

// Create stores a copy of a.
func (r *AlertRepository) Create(_ context.Context, a *domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.alerts = append(r.alerts, &cp)
	return nil
}

// ListByOwner returns the owner's alerts, newest first.
func (r *AlertRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Alert, error) {
	return r.list(ownerID, false, 0), nil
}

// ListUnread returns at most limit unread alerts, newest first.
func (r *AlertRepository) ListUnread(_ context.Context, ownerID uuid.UUID, limit int) ([]domain.Alert, error) {
	return r.list(ownerID, true, limit), nil
}

func (r *AlertRepository) list(ownerID uuid.UUID, unreadOnly bool, limit int) []domain.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Alert, 0)
	for _, a := range r.alerts {
		if a.UserID != ownerID || (unreadOnly && a.IsRead) {
			continue
		}
		out = append(out, *a)
	}
	slices.SortStableFunc(out, func(a, b domain.Alert) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MarkRead flags the alert as read. It returns (nil, nil) when the alert
// does not exist or belongs to another user.
func (r *AlertRepository) MarkRead(_ context.Context, ownerID, id uuid.UUID) (*domain.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.alerts {
		if a.ID == id && a.UserID == ownerID {
			a.IsRead = true
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}
