package port

import (
	"context"
	"encoding/json"

	"adsight/internal/core/domain"
)

// Advisor is the external natural-language insight provider. Callers must
// treat every error as a degraded feature, never as a request failure.
type Advisor interface {
	Chat(ctx context.Context, req AdvisorRequest) (*AdvisorReply, error)
	Insights(ctx context.Context, campaigns []CampaignSnapshot) ([]domain.Insight, error)
}

type CampaignSnapshot struct {
	Name        string          `json:"name"`
	Platform    domain.Platform `json:"platform"`
	Spend       float64         `json:"spend"`
	Revenue     float64         `json:"revenue"`
	ROAS        float64         `json:"roas"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
}

type AlertSnapshot struct {
	Type     string          `json:"type"`
	Message  string          `json:"message"`
	Severity domain.Severity `json:"severity"`
}

// AdvisorContext is the structured data sent along with a query. It is
// also stored verbatim on the interaction log.
type AdvisorContext struct {
	Campaigns []CampaignSnapshot `json:"campaigns"`
	Alerts    []AlertSnapshot    `json:"alerts"`
	Timeframe string             `json:"timeframe"`
}

type AdvisorRequest struct {
	Query   string
	Context AdvisorContext
}

type AdvisorReply struct {
	Response string
	Insights json.RawMessage
}

// InsightUseCase mediates between the dashboard and the Advisor.
type InsightUseCase interface {
	// Chat never fails because of the advisor; it substitutes a fallback
	// reply instead. Store failures are still reported.
	Chat(ctx context.Context, user *domain.User, in ChatInput) (*ChatReply, error)
	Insights(ctx context.Context, user *domain.User) ([]domain.Insight, error)
	History(ctx context.Context, user *domain.User, limit int) ([]domain.AiInteraction, error)
}

type ChatInput struct {
	Query   string       `json:"query" validate:"required"`
	Context *ChatContext `json:"context"`
}

type ChatContext struct {
	Timeframe string `json:"timeframe"`
}

// ChatReply is returned to the client. Insights is null whenever the
// advisor was not consulted successfully.
type ChatReply struct {
	Response string          `json:"response"`
	Insights json.RawMessage `json:"insights"`
}
