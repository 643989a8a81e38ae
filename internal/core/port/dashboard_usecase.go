package port

import (
	"context"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

// DashboardUseCase assembles the dashboard for the calling user.
type DashboardUseCase interface {
	Get(ctx context.Context, user *domain.User) (*domain.Dashboard, error)
}

// AlertUseCase lists alerts and marks them as read.
type AlertUseCase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Alert, error)
	MarkRead(ctx context.Context, ownerID, alertID uuid.UUID) (*domain.Alert, error)
}
