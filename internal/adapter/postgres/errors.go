package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"adsight/internal/core/port"
)

const uniqueViolation = "23505"

// uniqueConstraints maps unique constraint names to the port error they
// represent.
var uniqueConstraints = map[string]error{
	"users_email_key":    port.ErrDuplicateEmail,
	"users_username_key": port.ErrDuplicateUsername,
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if mapped, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return mapped
		}
	}
	return err
}
