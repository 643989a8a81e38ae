package port

import (
	"context"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

// CampaignUseCase lists, creates and changes the status of campaigns. All
// operations are scoped to the owner.
type CampaignUseCase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error)
	// Create persists a draft campaign with zeroed counters. Invalid input
	// yields an error matching ErrValidation that also unwraps to
	// *validation.RequestValidationError.
	Create(ctx context.Context, ownerID uuid.UUID, in CreateCampaignInput) (*domain.Campaign, error)
	// SetStatus returns ErrInvalidStatus for values outside the enum and
	// ErrNotFound when the campaign is absent or owned by someone else.
	SetStatus(ctx context.Context, ownerID, campaignID uuid.UUID, status string) (*domain.Campaign, error)
}

// CreateCampaignInput is the campaign form. The budget bound matches the
// numeric(12,2) column.
type CreateCampaignInput struct {
	Name           string   `json:"name" validate:"required"`
	Platform       string   `json:"platform" validate:"required,oneof=google_ads meta_ads linkedin_ads tiktok"`
	Budget         *float64 `json:"budget" validate:"required,gte=0,lte=9999999999.99"`
	Objective      string   `json:"objective" validate:"required"`
	TargetAudience string   `json:"targetAudience"`
}

// StatusPolicy decides whether a campaign may move between two states.
// Both states are already known to be valid enum members.
type StatusPolicy interface {
	Check(from, to domain.CampaignStatus) error
}
