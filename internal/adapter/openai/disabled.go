package openai

import (
	"context"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
)

// Disabled is the advisor used when no API key is configured.
type Disabled struct{}

// Chat always fails with port.ErrAdvisorDisabled.
func (Disabled) Chat(context.Context, port.AdvisorRequest) (*port.AdvisorReply, error) {
	advisorRequests.WithLabelValues(opChat, "disabled").Inc()
	return nil, port.ErrAdvisorDisabled
}

// Insights always fails with port.ErrAdvisorDisabled.
func (Disabled) Insights(context.Context, []port.CampaignSnapshot) ([]domain.Insight, error) {
	advisorRequests.WithLabelValues(opInsights, "disabled").Inc()
	return nil, port.ErrAdvisorDisabled
}
