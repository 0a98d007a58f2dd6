package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"storefront/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed half-way and
// needs manual repair before the service may start.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate drives the database at addr to migrations.Version using the
// embedded SQL files and returns the resulting schema version. A schema
// newer than this binary knows is left alone.
func Migrate(addr string) (uint, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return 0, err
	case dirty:
		return current, fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	case current >= migrations.Version:
		return current, nil
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}
	return migrations.Version, nil
}
