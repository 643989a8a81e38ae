package usecase

import (
	"context"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
)

// AlertUseCase implements port.AlertUseCase.
type AlertUseCase struct {
	repo port.AlertRepository
}

// NewAlertUseCase returns an AlertUseCase backed by repo.
func NewAlertUseCase(repo port.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// List returns every alert of the owner, newest first.
func (u *AlertUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Alert, error) {
	alerts, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dependency("list alerts", err)
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	return alerts, nil
}

// MarkRead is idempotent; marking an already read alert returns it as is.
func (u *AlertUseCase) MarkRead(ctx context.Context, ownerID, alertID uuid.UUID) (*domain.Alert, error) {
	a, err := u.repo.MarkRead(ctx, ownerID, alertID)
	if err != nil {
		return nil, dependency("mark alert read", err)
	}
	if a == nil {
		return nil, port.ErrNotFound
	}
	return a, nil
}
