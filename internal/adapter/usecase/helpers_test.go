package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adsight/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedJitter float64

func (f fixedJitter) Float64() float64 { return float64(f) }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// demoCampaigns mirrors the seeded demo account.
func demoCampaigns(owner uuid.UUID) []domain.Campaign {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Campaign{
		{
			ID: uuid.New(), UserID: owner, Name: "Black Friday Sale", Platform: domain.PlatformGoogleAds,
			Status: domain.StatusActive, Budget: 5000, Spend: 4250, Revenue: 18420,
			Clicks: 1247, Impressions: 45230, Conversions: 89, CPC: 3.41, CTR: 2.76, ROAS: 4.33,
			LastUpdated: base.Add(time.Hour),
		},
		{
			ID: uuid.New(), UserID: owner, Name: "Holiday Retargeting", Platform: domain.PlatformMetaAds,
			Status: domain.StatusActive, Budget: 3000, Spend: 2850, Revenue: 13680,
			Clicks: 892, Impressions: 32450, Conversions: 67, CPC: 3.19, CTR: 2.75, ROAS: 4.80,
			LastUpdated: base.Add(3 * time.Hour),
		},
		{
			ID: uuid.New(), UserID: owner, Name: "LinkedIn B2B", Platform: domain.PlatformLinkedInAds,
			Status: domain.StatusPaused, Budget: 2000, Spend: 1890, Revenue: 7371,
			Clicks: 423, Impressions: 15670, Conversions: 34, CPC: 4.47, CTR: 2.70, ROAS: 3.90,
			LastUpdated: base.Add(2 * time.Hour),
		},
	}
}
