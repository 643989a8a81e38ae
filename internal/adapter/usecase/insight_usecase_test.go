package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
	"adsight/internal/core/port/mocks"
)

type insightFixture struct {
	campaigns    *mocks.MockCampaignRepository
	alerts       *mocks.MockAlertRepository
	interactions *mocks.MockInteractionRepository
	advisor      *mocks.MockAdvisor
	svc          *InsightUseCase
	user         *domain.User
}

func newInsightFixture(t *testing.T, timeout time.Duration) insightFixture {
	f := insightFixture{
		campaigns:    mocks.NewMockCampaignRepository(t),
		alerts:       mocks.NewMockAlertRepository(t),
		interactions: mocks.NewMockInteractionRepository(t),
		advisor:      mocks.NewMockAdvisor(t),
		user:         &domain.User{ID: uuid.New()},
	}
	f.svc = NewInsightUseCase(f.campaigns, f.alerts, f.interactions, f.advisor, timeout, discardLogger())
	return f
}

func (f insightFixture) expectContext(campaigns []domain.Campaign, alerts []domain.Alert) {
	f.campaigns.EXPECT().ListByOwner(mock.Anything, f.user.ID).Return(campaigns, nil)
	f.alerts.EXPECT().ListByOwner(mock.Anything, f.user.ID).Return(alerts, nil)
}

func TestChatWithDisabledAdvisor(t *testing.T) {
	f := newInsightFixture(t, time.Second)
	f.expectContext(nil, nil)
	f.advisor.EXPECT().Chat(mock.Anything, mock.Anything).Return(nil, port.ErrAdvisorDisabled)

	var logged *domain.AiInteraction
	f.interactions.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, i *domain.AiInteraction) { logged = i }).
		Return(nil)

	reply, err := f.svc.Chat(context.Background(), f.user, port.ChatInput{Query: "How are my campaigns?"})
	require.NoError(t, err)
	assert.Equal(t, chatDisabledReply, reply.Response)
	assert.Nil(t, reply.Insights)

	require.NotNil(t, logged)
	assert.Equal(t, f.user.ID, logged.UserID)
	assert.Equal(t, "How are my campaigns?", logged.Query)
	assert.Equal(t, chatDisabledReply, logged.Response)
}

func TestChatAdvisorFailureFallsBack(t *testing.T) {
	f := newInsightFixture(t, time.Second)
	f.expectContext(nil, nil)
	f.advisor.EXPECT().Chat(mock.Anything, mock.Anything).Return(nil, errors.New("502 bad gateway"))
	f.interactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	reply, err := f.svc.Chat(context.Background(), f.user, port.ChatInput{Query: "hi"})
	require.NoError(t, err)
	assert.Equal(t, chatFailedReply, reply.Response)
	assert.Nil(t, reply.Insights)
}

func TestChatAdvisorTimeout(t *testing.T) {
	f := newInsightFixture(t, 20*time.Millisecond)
	f.expectContext(nil, nil)
	f.advisor.EXPECT().Chat(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ port.AdvisorRequest) (*port.AdvisorReply, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	f.interactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	start := time.Now()
	reply, err := f.svc.Chat(context.Background(), f.user, port.ChatInput{Query: "hi"})
	require.NoError(t, err)
	assert.Equal(t, chatFailedReply, reply.Response)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestChatSendsCampaignContext(t *testing.T) {
	f := newInsightFixture(t, time.Second)
	campaigns := demoCampaigns(f.user.ID)
	alerts := make([]domain.Alert, 7)
	for i := range alerts {
		alerts[i] = domain.Alert{Type: domain.AlertCPCThreshold, Message: "cpc", Severity: domain.SeverityHigh}
	}
	f.expectContext(campaigns, alerts)

	var sent port.AdvisorRequest
	f.advisor.EXPECT().Chat(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.AdvisorRequest) (*port.AdvisorReply, error) {
			sent = req
			return &port.AdvisorReply{Response: "Shift budget to Meta.", Insights: json.RawMessage(`{"top":"meta_ads"}`)}, nil
		})

	var logged *domain.AiInteraction
	f.interactions.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, i *domain.AiInteraction) { logged = i }).
		Return(nil)

	reply, err := f.svc.Chat(context.Background(), f.user, port.ChatInput{
		Query:   "  Where should I spend more?  ",
		Context: &port.ChatContext{Timeframe: "last 7 days"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Shift budget to Meta.", reply.Response)
	assert.JSONEq(t, `{"top":"meta_ads"}`, string(reply.Insights))

	assert.Equal(t, "Where should I spend more?", sent.Query)
	assert.Equal(t, "last 7 days", sent.Context.Timeframe)
	assert.Len(t, sent.Context.Campaigns, 3)
	assert.Len(t, sent.Context.Alerts, chatAlertLimit)
	assert.Equal(t, "Black Friday Sale", sent.Context.Campaigns[0].Name)
	assert.Equal(t, 4.33, sent.Context.Campaigns[0].ROAS)

	var stored port.AdvisorContext
	require.NoError(t, json.Unmarshal(logged.Context, &stored))
	assert.Equal(t, sent.Context.Timeframe, stored.Timeframe)
}

func TestChatDefaultTimeframe(t *testing.T) {
	f := newInsightFixture(t, time.Second)
	f.expectContext(nil, nil)
	f.advisor.EXPECT().
		Chat(mock.Anything, mock.MatchedBy(func(r port.AdvisorRequest) bool { return r.Context.Timeframe == defaultTimeframe })).
		Return(&port.AdvisorReply{Response: "ok"}, nil)
	f.interactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Chat(context.Background(), f.user, port.ChatInput{Query: "hi", Context: &port.ChatContext{}})
	require.NoError(t, err)
}

func TestChatRequiresQuery(t *testing.T) {
	f := newInsightFixture(t, time.Second)

	_, err := f.svc.Chat(context.Background(), f.user, port.ChatInput{Query: "   "})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestChatLogFailureIsReported(t *testing.T) {
	f := newInsightFixture(t, time.Second)
	f.expectContext(nil, nil)
	f.advisor.EXPECT().Chat(mock.Anything, mock.Anything).Return(&port.AdvisorReply{Response: "ok"}, nil)
	f.interactions.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := f.svc.Chat(context.Background(), f.user, port.ChatInput{Query: "hi"})
	assert.ErrorIs(t, err, port.ErrDependency)
}

func TestInsightsFallbacks(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		f := newInsightFixture(t, time.Second)
		f.campaigns.EXPECT().ListByOwner(mock.Anything, f.user.ID).Return(nil, nil)
		f.advisor.EXPECT().Insights(mock.Anything, mock.Anything).Return(nil, port.ErrAdvisorDisabled)

		got, err := f.svc.Insights(context.Background(), f.user)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "setup", got[0].Type)
		assert.Equal(t, "AI Insights Disabled", got[0].Title)
		assert.Equal(t, "manual", got[1].Type)
	})

	t.Run("failure", func(t *testing.T) {
		f := newInsightFixture(t, time.Second)
		f.campaigns.EXPECT().ListByOwner(mock.Anything, f.user.ID).Return(nil, nil)
		f.advisor.EXPECT().Insights(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		got, err := f.svc.Insights(context.Background(), f.user)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "AI Service Temporarily Unavailable", got[0].Title)
		assert.Equal(t, "medium", got[0].Priority)
	})

	t.Run("success", func(t *testing.T) {
		f := newInsightFixture(t, time.Second)
		want := []domain.Insight{{Type: "budget", Title: "Move spend", Description: "d", Priority: "high"}}
		f.campaigns.EXPECT().ListByOwner(mock.Anything, f.user.ID).Return(demoCampaigns(f.user.ID), nil)
		f.advisor.EXPECT().Insights(mock.Anything, mock.MatchedBy(func(s []port.CampaignSnapshot) bool { return len(s) == 3 })).
			Return(want, nil)

		got, err := f.svc.Insights(context.Background(), f.user)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestHistoryClampsLimit(t *testing.T) {
	f := newInsightFixture(t, time.Second)
	f.interactions.EXPECT().ListRecent(mock.Anything, f.user.ID, defaultHistory).Return(nil, nil)
	f.interactions.EXPECT().ListRecent(mock.Anything, f.user.ID, maxHistory).Return([]domain.AiInteraction{{Query: "q"}}, nil)

	got, err := f.svc.History(context.Background(), f.user, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = f.svc.History(context.Background(), f.user, 1000)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
