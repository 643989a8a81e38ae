package domain

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Platform identifies the ad network a campaign runs on.
type Platform string

const (
	PlatformGoogleAds   Platform = "google_ads"
	PlatformMetaAds     Platform = "meta_ads"
	PlatformLinkedInAds Platform = "linkedin_ads"
	PlatformTikTok      Platform = "tiktok"
)

// Platforms lists every platform the dashboard knows how to display.
var Platforms = []Platform{PlatformGoogleAds, PlatformMetaAds, PlatformLinkedInAds, PlatformTikTok}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Statuses lists the enumerated lifecycle states.
var Statuses = []CampaignStatus{StatusDraft, StatusActive, StatusPaused, StatusCompleted}

// Valid reports whether s is one of the enumerated states.
func (s CampaignStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Campaign represents an advertising campaign owned by a single user.
// Money values are in account currency with two decimal places; counters
// are never negative. CPC, CTR and ROAS are stored redundantly and kept in
// sync by Recompute.
type Campaign struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"userId"`
	Name           string         `json:"name"`
	Platform       Platform       `json:"platform"`
	AccountID      string         `json:"accountId"`
	ExternalID     string         `json:"campaignId"`
	Status         CampaignStatus `json:"status"`
	Budget         float64        `json:"budget"`
	Spend          float64        `json:"spend"`
	Revenue        float64        `json:"revenue"`
	Clicks         int64          `json:"clicks"`
	Impressions    int64          `json:"impressions"`
	Conversions    int64          `json:"conversions"`
	CPC            float64        `json:"cpc"`
	CTR            float64        `json:"ctr"` // percent
	ROAS           float64        `json:"roas"`
	Objective      string         `json:"objective"`
	TargetAudience string         `json:"targetAudience,omitempty"`
	LastUpdated    time.Time      `json:"lastUpdated"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// Recompute refreshes the derived CPC, CTR and ROAS fields from the raw
// counters.
func (c *Campaign) Recompute() {
	c.CPC = ComputeCPC(c.Spend, c.Clicks)
	c.CTR = ComputeCTR(c.Clicks, c.Impressions)
	c.ROAS = ComputeROAS(c.Revenue, c.Spend)
}

// ComputeROAS returns revenue/spend rounded to two decimals, or 0 when
// nothing was spent.
func ComputeROAS(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return Round2(revenue / spend)
}

// ComputeCTR returns clicks/impressions as a percentage rounded to two
// decimals, or 0 without impressions.
func ComputeCTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return Round2(float64(clicks) / float64(impressions) * 100)
}

// ComputeCPC returns spend/clicks rounded to two decimals, or 0 without
// clicks.
func ComputeCPC(spend float64, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return Round2(spend / float64(clicks))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatRatio renders a ratio such as ROAS with the fixed display
// precision, e.g. 4.3341 -> "4.33".
func FormatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// CampaignSummary is the projection of a campaign shown on the dashboard.
type CampaignSummary struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Platform Platform       `json:"platform"`
	Spend    float64        `json:"spend"`
	Revenue  float64        `json:"revenue"`
	ROAS     float64        `json:"roas"`
	Status   CampaignStatus `json:"status"`
}

// Summary returns the dashboard projection of c.
func (c Campaign) Summary() CampaignSummary {
	return CampaignSummary{
		ID:       c.ID,
		Name:     c.Name,
		Platform: c.Platform,
		Spend:    c.Spend,
		Revenue:  c.Revenue,
		ROAS:     c.ROAS,
		Status:   c.Status,
	}
}
