package usecase

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"adsight/internal/core/domain"
)

const (
	// growthRatePlaceholder is reported until period-over-period history
	// exists.
	growthRatePlaceholder = 12.5

	chartMonths = 6

	// Synthetic chart buckets are the current total scaled by a factor in
	// [jitterMin, jitterMin+jitterSpan).
	jitterMin  = 0.7
	jitterSpan = 0.6
)

// JitterSource yields values in [0, 1). *rand.Rand satisfies it.
type JitterSource interface {
	Float64() float64
}

// Aggregator reduces a campaign set to dashboard metrics and builds the
// revenue chart. It is safe for concurrent use.
type Aggregator struct {
	mu     sync.Mutex
	jitter JitterSource
	now    func() time.Time
}

// NewAggregator returns an Aggregator. A nil jitter source falls back to a
// time-seeded generator.
func NewAggregator(jitter JitterSource, now func() time.Time) *Aggregator {
	if jitter == nil {
		seed := uint64(time.Now().UnixNano())
		jitter = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if now == nil {
		now = time.Now
	}
	return &Aggregator{jitter: jitter, now: now}
}

// Aggregate computes the dashboard metrics of campaigns. The result does
// not depend on the order of the input.
func (a *Aggregator) Aggregate(campaigns []domain.Campaign) domain.DashboardMetrics {
	m := domain.DashboardMetrics{
		GrowthRate:          growthRatePlaceholder,
		GrowthRateEstimated: true,
	}
	if len(campaigns) == 0 {
		return m
	}

	var ctrSum float64
	for _, c := range campaigns {
		m.TotalRevenue += c.Revenue
		m.TotalSpend += c.Spend
		m.TotalClicks += c.Clicks
		m.TotalImpressions += c.Impressions
		m.TotalConversions += c.Conversions
		ctrSum += c.CTR
	}
	m.TotalRevenue = domain.Round2(m.TotalRevenue)
	m.TotalSpend = domain.Round2(m.TotalSpend)
	m.TotalLeads = m.TotalConversions

	if m.TotalSpend > 0 {
		m.AverageROAS = m.TotalRevenue / m.TotalSpend
	}
	// Unweighted: a campaign with 10 impressions counts as much as one
	// with a million.
	m.AverageCTR = ctrSum / float64(len(campaigns))
	return m
}

// RevenueChart returns one bucket per month for the last six calendar
// months, oldest first, ending with the current month.
func (a *Aggregator) RevenueChart(totalRevenue float64) domain.RevenueSeries {
	now := a.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	a.mu.Lock()
	defer a.mu.Unlock()

	points := make([]domain.RevenuePoint, chartMonths)
	for i := range points {
		month := current.AddDate(0, i-(chartMonths-1), 0)
		factor := jitterMin + a.jitter.Float64()*jitterSpan
		points[i] = domain.RevenuePoint{
			Month:   month.Format("Jan"),
			Revenue: math.Round(totalRevenue * factor),
		}
	}
	return domain.RevenueSeries{Points: points, Synthetic: true}
}
