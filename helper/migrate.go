package helper

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"lumen/config"
	"lumen/migrations"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// Migrator applies the embedded schema migrations to one database.
type Migrator struct {
	databaseURL string
}

func NewMigrator(databaseURL string) *Migrator {
	return &Migrator{databaseURL: databaseURL}
}

// NewMigratorFromConfig targets the write database with the configured migrations table.
func NewMigratorFromConfig(config *config.Config) *Migrator {
	return NewMigrator(MigrationURL(config))
}

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func MigrationURL(config *config.Config) string {
	sslMode := config.DB.Postgres.Write.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.DB.Postgres.Write.Username, config.DB.Postgres.Write.Password),
		Host:     net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		Path:     getDBName(config, config.DB.Postgres.Write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func (m *Migrator) getConnection() (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, m.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (m *Migrator) Up(ctx context.Context) error {
	return m.Run(ctx, ActionUp)
}

func (m *Migrator) Run(ctx context.Context, action string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("migration %s: %w", action, err)
	}

	mig, err := m.getConnection()
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			mig.GracefulStop <- true
		case <-done:
		}
	}()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("action", action).Msg("Database schema already up to date")

		return nil
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}
