package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"adsight/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed half way.
// The schema has to be repaired by hand before the service can start.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version and returns the
// version it started from. A nil logger discards progress messages.
func Migrate(addr string, logger *slog.Logger) (from uint, err error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("connect: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, fmt.Errorf("read version: %w", err)
	case dirty:
		return from, fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	if from == migrations.Version {
		logger.Debug("schema up to date", slog.Uint64("version", uint64(from)))
		return from, nil
	}
	logger.Info("migrating schema", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrate to %d: %w", migrations.Version, err)
	}
	return from, nil
}
