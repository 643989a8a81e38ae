package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
)

// DemoEmail identifies the seeded demo account.
const DemoEmail = "john.martinez@example.com"

// SeedStores are the repositories Seed writes to. Both the memory and the
// postgres driver provide them.
type SeedStores struct {
	Users     port.UserRepository
	Campaigns port.CampaignRepository
	Alerts    port.AlertRepository
}

type demoCampaign struct {
	name        string
	platform    domain.Platform
	budget      float64
	spend       float64
	revenue     float64
	clicks      int64
	impressions int64
	conversions int64
}

var demoCampaigns = []demoCampaign{
	{"Black Friday Sale", domain.PlatformGoogleAds, 5000, 4250, 18420, 1247, 45230, 89},
	{"Holiday Retargeting", domain.PlatformMetaAds, 3000, 2850, 13680, 892, 32450, 67},
	{"LinkedIn B2B", domain.PlatformLinkedInAds, 2000, 1890, 7371, 423, 15670, 34},
}

// Seed inserts the demo account with three active campaigns and two
// unread alerts. It does nothing when the demo user already exists and
// reports whether it wrote anything.
func Seed(ctx context.Context, s SeedStores, hasher port.PasswordHasher, password string) (bool, error) {
	existing, err := s.Users.GetByEmail(ctx, DemoEmail)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return false, err
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := &domain.User{
		ID:           uuid.New(),
		Username:     "john.martinez",
		Email:        DemoEmail,
		PasswordHash: hash,
		FirstName:    "John",
		LastName:     "Martinez",
		Role:         domain.RoleUser,
		CreatedAt:    now,
	}
	if err = s.Users.Create(ctx, user); err != nil {
		return false, fmt.Errorf("create demo user: %w", err)
	}

	var first *domain.Campaign
	for i, dc := range demoCampaigns {
		c := &domain.Campaign{
			ID:          uuid.New(),
			UserID:      user.ID,
			Name:        dc.name,
			Platform:    dc.platform,
			AccountID:   fmt.Sprintf("demo-%s", dc.platform),
			ExternalID:  ksuid.New().String(),
			Status:      domain.StatusActive,
			Budget:      dc.budget,
			Spend:       dc.spend,
			Revenue:     dc.revenue,
			Clicks:      dc.clicks,
			Impressions: dc.impressions,
			Conversions: dc.conversions,
			Objective:   "conversions",
			LastUpdated: now.Add(time.Duration(i) * time.Microsecond),
			CreatedAt:   now.Add(time.Duration(i) * time.Microsecond),
		}
		c.Recompute()
		if err = s.Campaigns.Create(ctx, c); err != nil {
			return false, fmt.Errorf("create demo campaign %q: %w", c.Name, err)
		}
		if first == nil {
			first = c
		}
	}

	cpc, budget := 8.50, 85.00
	alerts := []*domain.Alert{
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			CampaignID:   &first.ID,
			Type:         domain.AlertCPCThreshold,
			Title:        "High CPC Alert",
			Message:      "Google Ads CPC exceeded $8.50 threshold",
			Severity:     domain.SeverityHigh,
			TriggerValue: &cpc,
			CreatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			Type:         domain.AlertBudgetWarning,
			Title:        "Budget Warning",
			Message:      "Holiday campaign at 85% of daily budget",
			Severity:     domain.SeverityMedium,
			TriggerValue: &budget,
			CreatedAt:    now.Add(-4 * time.Hour),
		},
	}
	for _, a := range alerts {
		if err = s.Alerts.Create(ctx, a); err != nil {
			return false, fmt.Errorf("create demo alert %q: %w", a.Title, err)
		}
	}
	return true, nil
}
