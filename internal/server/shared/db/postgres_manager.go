package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/askarpov/loginward/internal/server/credentials"
	"github.com/askarpov/loginward/internal/server/migrations"
)

type PostgresManager struct {
	db    *sql.DB
	creds credentials.Repository
}

func (m *PostgresManager) Credentials() credentials.Repository {
	return m.creds
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresManager opens the database, waits for it to become reachable
// (the store may start before postgres does), and applies migrations.
func NewPostgresManager(ctx context.Context, dsn string) (Manager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := &PostgresManager{
		db:    db,
		creds: credentials.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
