package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adsight/internal/core/domain"
)

const campaignColumns = `id, user_id, name, platform, account_id, campaign_id, status,
	budget, spend, revenue, clicks, impressions, conversions, cpc, ctr, roas,
	objective, target_audience, last_updated, created_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a repository using pool.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListByOwner returns the owner's campaigns in creation order.
func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
		WHERE user_id = $1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetOwned returns (nil, nil) when no row matches both id and owner.
func (r *CampaignRepository) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns
		WHERE id = $1 AND user_id = $2`, id, ownerID)
	return oneCampaign(row)
}

// Create inserts c.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)`,
		c.ID, c.UserID, c.Name, c.Platform, c.AccountID, c.ExternalID, c.Status,
		c.Budget, c.Spend, c.Revenue, c.Clicks, c.Impressions, c.Conversions, c.CPC, c.CTR, c.ROAS,
		c.Objective, c.TargetAudience, c.LastUpdated, c.CreatedAt)
	return translate(err)
}

// UpdateStatus writes status and last_updated in one statement. A row
// owned by someone else is not touched and yields (nil, nil).
func (r *CampaignRepository) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status domain.CampaignStatus, at time.Time) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `UPDATE campaigns SET status = $3, last_updated = $4
		WHERE id = $1 AND user_id = $2
		RETURNING `+campaignColumns, id, ownerID, status, at)
	return oneCampaign(row)
}

func oneCampaign(row pgx.Row) (*domain.Campaign, error) {
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Platform,
		&c.AccountID,
		&c.ExternalID,
		&c.Status,
		&c.Budget,
		&c.Spend,
		&c.Revenue,
		&c.Clicks,
		&c.Impressions,
		&c.Conversions,
		&c.CPC,
		&c.CTR,
		&c.ROAS,
		&c.Objective,
		&c.TargetAudience,
		&c.LastUpdated,
		&c.CreatedAt,
	)
	return c, err
}
