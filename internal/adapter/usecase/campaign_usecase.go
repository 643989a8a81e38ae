package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
	"adsight/internal/validation"
)

// manualAccountID marks campaigns created in the dashboard rather than
// imported from an ad platform.
const manualAccountID = "manual"

// CampaignUseCase implements port.CampaignUseCase.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	policy port.StatusPolicy
	now    func() time.Time
}

// NewCampaignUseCase wires the campaign service. A nil policy accepts any
// transition between valid statuses.
func NewCampaignUseCase(repo port.CampaignRepository, policy port.StatusPolicy) *CampaignUseCase {
	if policy == nil {
		policy = PermissivePolicy{}
	}
	return &CampaignUseCase{repo: repo, policy: policy, now: time.Now}
}

func (u *CampaignUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error) {
	campaigns, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dependency("list campaigns", err)
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// Create stores a new draft campaign. Performance counters start at zero
// and the external id is a local placeholder until the campaign is synced
// to its platform.
func (u *CampaignUseCase) Create(ctx context.Context, ownerID uuid.UUID, in port.CreateCampaignInput) (*domain.Campaign, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Objective = strings.TrimSpace(in.Objective)
	in.TargetAudience = strings.TrimSpace(in.TargetAudience)
	if verr := validation.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}

	now := u.now().UTC().Truncate(time.Microsecond)
	c := &domain.Campaign{
		ID:             uuid.New(),
		UserID:         ownerID,
		Name:           in.Name,
		Platform:       domain.Platform(in.Platform),
		AccountID:      manualAccountID,
		ExternalID:     "draft-" + ksuid.New().String(),
		Status:         domain.StatusDraft,
		Budget:         domain.Round2(*in.Budget),
		Objective:      in.Objective,
		TargetAudience: in.TargetAudience,
		LastUpdated:    now,
		CreatedAt:      now,
	}
	c.Recompute()
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, dependency("create campaign", err)
	}
	return c, nil
}

// SetStatus validates status against the enum and the configured policy
// and writes it together with a fresh lastUpdated. A rejected change
// leaves the record untouched.
func (u *CampaignUseCase) SetStatus(ctx context.Context, ownerID, campaignID uuid.UUID, status string) (*domain.Campaign, error) {
	to := domain.CampaignStatus(status)
	if !to.Valid() {
		return nil, port.ErrInvalidStatus
	}

	current, err := u.repo.GetOwned(ctx, ownerID, campaignID)
	if err != nil {
		return nil, dependency("load campaign", err)
	}
	if current == nil {
		return nil, port.ErrNotFound
	}
	if err = u.policy.Check(current.Status, to); err != nil {
		return nil, err
	}

	at := u.now().UTC().Truncate(time.Microsecond)
	if !at.After(current.LastUpdated) {
		at = current.LastUpdated.Add(time.Microsecond)
	}
	updated, err := u.repo.UpdateStatus(ctx, ownerID, campaignID, to, at)
	if err != nil {
		return nil, dependency("update campaign status", err)
	}
	if updated == nil {
		return nil, port.ErrNotFound
	}
	return updated, nil
}
