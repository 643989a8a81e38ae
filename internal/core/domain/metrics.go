package domain

import (
	"time"

	"github.com/google/uuid"
)

// DashboardMetrics is the reduction of a user's campaign set.
//
// GrowthRate is not derived from history yet; GrowthRateEstimated marks
// it as a placeholder for clients.
type DashboardMetrics struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalSpend          float64 `json:"totalSpend"`
	TotalClicks         int64   `json:"totalClicks"`
	TotalImpressions    int64   `json:"totalImpressions"`
	TotalConversions    int64   `json:"totalConversions"`
	AverageROAS         float64 `json:"averageRoas"`
	AverageCTR          float64 `json:"averageCtr"`
	TotalLeads          int64   `json:"totalLeads"`
	GrowthRate          float64 `json:"growthRate"`
	GrowthRateEstimated bool    `json:"growthRateEstimated"`
}

// RevenuePoint is one monthly bucket of the revenue chart.
type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// RevenueSeries is the chart series. Synthetic is true while buckets are
// generated rather than aggregated from history.
type RevenueSeries struct {
	Points    []RevenuePoint
	Synthetic bool
}

// Activity is an entry of the dashboard's recent activity feed.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Platform  Platform  `json:"platform"`
	Timestamp time.Time `json:"timestamp"`
}

// Dashboard is everything the dashboard page renders.
type Dashboard struct {
	User                  UserSummary       `json:"user"`
	Metrics               DashboardMetrics  `json:"metrics"`
	Campaigns             []CampaignSummary `json:"campaigns"`
	Alerts                []Alert           `json:"alerts"`
	RevenueChartData      []RevenuePoint    `json:"revenueChartData"`
	RevenueChartSynthetic bool              `json:"revenueChartSynthetic"`
	RecentActivity        []Activity        `json:"recentActivity"`
}
