package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adsight/internal/core/domain"
)

// InteractionRepository implements port.InteractionRepository using
// pgxpool. Rows are never updated.
type InteractionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository returns a repository using pool.
func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

// Create inserts i; Context is stored as jsonb.
func (r *InteractionRepository) Create(ctx context.Context, i *domain.AiInteraction) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ai_interactions (id, user_id, query, response, context, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`, i.ID, i.UserID, i.Query, i.Response, []byte(i.Context), i.CreatedAt)
	return translate(err)
}

// ListRecent returns up to limit entries of the owner, newest first.
func (r *InteractionRepository) ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.AiInteraction, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, query, response, context, created_at
		FROM ai_interactions WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AiInteraction, error) {
		var (
			i   domain.AiInteraction
			raw []byte
		)
		err := row.Scan(&i.ID, &i.UserID, &i.Query, &i.Response, &raw, &i.CreatedAt)
		i.Context = raw
		return i, err
	})
}
