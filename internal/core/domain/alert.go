package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert types produced by campaign monitoring. The set is open.
const (
	AlertCPCThreshold     = "cpc_threshold"
	AlertBudgetWarning    = "budget_warning"
	AlertPerformanceAlert = "performance_alert"
)

// Severity of an alert.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Alert notifies a user about a campaign condition. IsRead only ever
// moves from false to true.
type Alert struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	CampaignID   *uuid.UUID `json:"campaignId"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Severity     Severity   `json:"severity"`
	IsRead       bool       `json:"isRead"`
	TriggerValue *float64   `json:"triggerValue"`
	CreatedAt    time.Time  `json:"createdAt"`
}
