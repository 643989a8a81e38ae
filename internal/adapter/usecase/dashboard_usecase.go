package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
)

const (
	dashboardAlertLimit    = 5
	dashboardActivityLimit = 3

	activityCampaignUpdate = "campaign_update"
)

// DashboardUseCase implements port.DashboardUseCase.
type DashboardUseCase struct {
	campaigns port.CampaignRepository
	alerts    port.AlertRepository
	agg       *Aggregator
}

// NewDashboardUseCase wires the dashboard over the campaign and alert
// stores. agg supplies the metrics reduction and the revenue chart.
func NewDashboardUseCase(campaigns port.CampaignRepository, alerts port.AlertRepository, agg *Aggregator) *DashboardUseCase {
	return &DashboardUseCase{campaigns: campaigns, alerts: alerts, agg: agg}
}

// Get loads the user's campaigns and unread alerts concurrently and
// derives the metrics, chart and activity feed from that single read.
func (u *DashboardUseCase) Get(ctx context.Context, user *domain.User) (*domain.Dashboard, error) {
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
		alerts, err = u.alerts.ListUnread(gctx, user.ID, dashboardAlertLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dependency("load dashboard", err)
	}

	metrics := u.agg.Aggregate(campaigns)
	chart := u.agg.RevenueChart(metrics.TotalRevenue)

	summaries := make([]domain.CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		summaries = append(summaries, c.Summary())
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return &domain.Dashboard{
		User:                  user.Summary(),
		Metrics:               metrics,
		Campaigns:             summaries,
		Alerts:                alerts,
		RevenueChartData:      chart.Points,
		RevenueChartSynthetic: chart.Synthetic,
		RecentActivity:        recentActivity(campaigns, dashboardActivityLimit),
	}, nil
}

// recentActivity lists the most recently updated campaigns first.
func recentActivity(campaigns []domain.Campaign, limit int) []domain.Activity {
	sorted := slices.Clone(campaigns)
	slices.SortStableFunc(sorted, func(a, b domain.Campaign) int {
		return cmp.Compare(b.LastUpdated.UnixNano(), a.LastUpdated.UnixNano())
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]domain.Activity, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, domain.Activity{
			ID:        c.ID,
			Type:      activityCampaignUpdate,
			Message:   fmt.Sprintf("Campaign %q performance updated", c.Name),
			Platform:  c.Platform,
			Timestamp: c.LastUpdated,
		})
	}
	return out
}
