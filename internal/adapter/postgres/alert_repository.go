package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adsight/internal/core/domain"
)

const alertColumns = `id, user_id, campaign_id, type, title, message, severity, is_read, trigger_value, created_at`

// AlertRepository implements port.AlertRepository using pgxpool.
type AlertRepository struct {
	pool *pgxpool.Pool
}

// NewAlertRepository returns a repository using pool.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

// ListByOwner returns the owner's alerts ordered by created_at desc.
func (r *AlertRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Alert, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+alertColumns+` FROM alerts
		WHERE user_id = $1 ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Alert, error) {
		return scanAlert(row)
	})
}

// ListUnread returns up to limit unread alerts, newest first.
func (r *AlertRepository) ListUnread(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Alert, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+alertColumns+` FROM alerts
		WHERE user_id = $1 AND NOT is_read ORDER BY created_at DESC, id LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Alert, error) {
		return scanAlert(row)
	})
}

// MarkRead only ever sets is_read; repeating it is harmless.
func (r *AlertRepository) MarkRead(ctx context.Context, ownerID, id uuid.UUID) (*domain.Alert, error) {
	a, err := scanAlert(r.pool.QueryRow(ctx, `UPDATE alerts SET is_read = true
		WHERE id = $1 AND user_id = $2 RETURNING `+alertColumns, id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a.
func (r *AlertRepository) Create(ctx context.Context, a *domain.Alert) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO alerts (`+alertColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID, a.UserID, a.CampaignID, a.Type, a.Title, a.Message, a.Severity, a.IsRead, a.TriggerValue, a.CreatedAt)
	return translate(err)
}

func scanAlert(row pgx.Row) (domain.Alert, error) {
	var a domain.Alert
	err := row.Scan(&a.ID, &a.UserID, &a.CampaignID, &a.Type, &a.Title, &a.Message,
		&a.Severity, &a.IsRead, &a.TriggerValue, &a.CreatedAt)
	return a, err
}
