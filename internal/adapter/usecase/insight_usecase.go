package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
	"adsight/internal/validation"
)

const (
	defaultTimeframe  = "last 30 days"
	chatAlertLimit    = 5
	defaultHistory    = 20
	maxHistory        = 50
	defaultAdviceWait = 20 * time.Second
)

// Replies used when the advisor cannot be consulted.
const (
	chatDisabledReply = "AI features are currently disabled. To enable AI-powered insights and chat, please configure your OpenAI API key in the environment variables. The AI assistant would analyze your campaign data and provide personalized recommendations based on your marketing performance."
	chatFailedReply   = "I'm having trouble connecting to the AI service right now. Please check your API key configuration or try again later. In the meantime, you can still view your campaign performance in the dashboard."
)

var (
	disabledInsights = []domain.Insight{
		{
			Type:        "setup",
			Title:       "AI Insights Disabled",
			Description: "Configure OpenAI API key to enable AI-powered marketing insights and automated recommendations based on your campaign performance.",
			Priority:    "medium",
		},
		{
			Type:        "manual",
			Title:       "Manual Analysis Available",
			Description: "While AI insights are disabled, you can still analyze your campaign performance using the dashboard metrics and charts above.",
			Priority:    "low",
		},
	}
	failedInsights = []domain.Insight{
		{
			Type:        "error",
			Title:       "AI Service Temporarily Unavailable",
			Description: "Unable to generate insights right now. Please check your API configuration or try again later.",
			Priority:    "medium",
		},
	}
)

// InsightUseCase implements port.InsightUseCase.
type InsightUseCase struct {
	campaigns    port.CampaignRepository
	alerts       port.AlertRepository
	interactions port.InteractionRepository
	advisor      port.Advisor
	timeout      time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewInsightUseCase wires the insight service. Every advisor call is
// bounded by timeout.
func NewInsightUseCase(
	campaigns port.CampaignRepository,
	alerts port.AlertRepository,
	interactions port.InteractionRepository,
	advisor port.Advisor,
	timeout time.Duration,
	logger *slog.Logger,
) *InsightUseCase {
	if timeout <= 0 {
		timeout = defaultAdviceWait
	}
	return &InsightUseCase{
		campaigns:    campaigns,
		alerts:       alerts,
		interactions: interactions,
		advisor:      advisor,
		timeout:      timeout,
		logger:       logger,
		now:          time.Now,
	}
}

// Chat answers a free-form question about the user's campaigns and logs
// the exchange.
func (u *InsightUseCase) Chat(ctx context.Context, user *domain.User, in port.ChatInput) (*port.ChatReply, error) {
	in.Query = strings.TrimSpace(in.Query)
	if verr := validation.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}
	timeframe := defaultTimeframe
	if in.Context != nil && strings.TrimSpace(in.Context.Timeframe) != "" {
		timeframe = strings.TrimSpace(in.Context.Timeframe)
	}

	var (
		campaigns []domain.Campaign
		alerts    []domain.Alert
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		campaigns, err = u.campaigns.ListByOwner(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		alerts, err = u.alerts.ListByOwner(gctx, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dependency("load advisor context", err)
	}

	actx := port.AdvisorContext{
		Campaigns: snapshots(campaigns),
		Alerts:    alertSnapshots(alerts, chatAlertLimit),
		Timeframe: timeframe,
	}
	reply := u.ask(ctx, port.AdvisorRequest{Query: in.Query, Context: actx})

	raw, err := json.Marshal(actx)
	if err != nil {
		return nil, err
	}
	err = u.interactions.Create(ctx, &domain.AiInteraction{
		ID:        uuid.New(),
		UserID:    user.ID,
		Query:     in.Query,
		Response:  reply.Response,
		Context:   raw,
		CreatedAt: u.now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		return nil, dependency("log interaction", err)
	}
	return reply, nil
}

func (u *InsightUseCase) ask(ctx context.Context, req port.AdvisorRequest) *port.ChatReply {
	cctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	r, err := u.advisor.Chat(cctx, req)
	switch {
	case errors.Is(err, port.ErrAdvisorDisabled):
		return &port.ChatReply{Response: chatDisabledReply}
	case err != nil:
		u.logger.Warn("advisor chat failed", slog.Any("error", err))
		return &port.ChatReply{Response: chatFailedReply}
	case r == nil || r.Response == "":
		u.logger.Warn("advisor returned an empty reply")
		return &port.ChatReply{Response: chatFailedReply}
	}
	return &port.ChatReply{Response: r.Response, Insights: r.Insights}
}

// Insights returns structured recommendations, substituting canned items
// when the advisor is disabled or failing.
func (u *InsightUseCase) Insights(ctx context.Context, user *domain.User) ([]domain.Insight, error) {
	campaigns, err := u.campaigns.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, dependency("list campaigns", err)
	}

	cctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	insights, err := u.advisor.Insights(cctx, snapshots(campaigns))
	switch {
	case errors.Is(err, port.ErrAdvisorDisabled):
		return slices.Clone(disabledInsights), nil
	case err != nil:
		u.logger.Warn("advisor insights failed", slog.Any("error", err))
		return slices.Clone(failedInsights), nil
	case insights == nil:
		return []domain.Insight{}, nil
	}
	return insights, nil
}

// History returns the user's latest assistant exchanges, newest first.
func (u *InsightUseCase) History(ctx context.Context, user *domain.User, limit int) ([]domain.AiInteraction, error) {
	switch {
	case limit <= 0:
		limit = defaultHistory
	case limit > maxHistory:
		limit = maxHistory
	}
	items, err := u.interactions.ListRecent(ctx, user.ID, limit)
	if err != nil {
		return nil, dependency("list interactions", err)
	}
	if items == nil {
		items = []domain.AiInteraction{}
	}
	return items, nil
}

func snapshots(campaigns []domain.Campaign) []port.CampaignSnapshot {
	out := make([]port.CampaignSnapshot, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, port.CampaignSnapshot{
			Name:        c.Name,
			Platform:    c.Platform,
			Spend:       c.Spend,
			Revenue:     c.Revenue,
			ROAS:        c.ROAS,
			Clicks:      c.Clicks,
			Conversions: c.Conversions,
		})
	}
	return out
}

func alertSnapshots(alerts []domain.Alert, limit int) []port.AlertSnapshot {
	if len(alerts) > limit {
		alerts = alerts[:limit]
	}
	out := make([]port.AlertSnapshot, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, port.AlertSnapshot{Type: a.Type, Message: a.Message, Severity: a.Severity})
	}
	return out
}
