//go:build integration

// Package testhelper starts a disposable PostgreSQL for integration tests.
package testhelper

import (
	"context"
	"lumen/helper"
	"lumen/infras/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDatabase = "lumen_test"
	testUser     = "lumen"
	testPassword = "lumen"
)

// Postgres starts a container, applies the embedded migrations and returns a connection
// together with a migrator bound to the same database. Everything is torn down with t.
func Postgres(t *testing.T) (*postgres.Connection, *helper.Migrator) {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:alpine",
		tcPostgres.WithDatabase(testDatabase),
		tcPostgres.WithUsername(testUser),
		tcPostgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.CreatePostgresConnection("test", dsn, 3, 1)
	require.NoError(t, err)

	conn := postgres.NewFromDB(db)
	t.Cleanup(func() { _ = conn.Close() })

	migrator := helper.NewMigrator(dsn + "&x-migrations-table=schema_migrations")
	require.NoError(t, migrator.Up(ctx))

	return conn, migrator
}
