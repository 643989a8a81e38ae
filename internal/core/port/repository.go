package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

// Lookups return (nil, nil) when the record does not exist or is not owned
// by the given user. Implementations must be safe for concurrent use and
// must apply each single-record write atomically.

// UserRepository is the credential store.
type UserRepository interface {
	// Create persists u. A clash on email yields ErrDuplicateEmail, a clash
	// on username ErrDuplicateUsername.
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CampaignRepository is the campaign store.
type CampaignRepository interface {
	// ListByOwner returns the owner's campaigns in creation order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error)
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*domain.Campaign, error)
	Create(ctx context.Context, c *domain.Campaign) error
	// UpdateStatus sets status and last_updated in a single write and
	// returns the updated record.
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status domain.CampaignStatus, at time.Time) (*domain.Campaign, error)
}

// AlertRepository is the alert store.
type AlertRepository interface {
	// ListByOwner returns alerts newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Alert, error)
	// ListUnread returns at most limit unread alerts, newest first.
	ListUnread(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Alert, error)
	// MarkRead flips is_read to true. It never sets it back to false.
	MarkRead(ctx context.Context, ownerID, id uuid.UUID) (*domain.Alert, error)
	Create(ctx context.Context, a *domain.Alert) error
}

// InteractionRepository is the append-only assistant log.
type InteractionRepository interface {
	Create(ctx context.Context, i *domain.AiInteraction) error
	// ListRecent returns at most limit interactions, newest first.
	ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.AiInteraction, error)
}
