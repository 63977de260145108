// Package db selects and wires a credential store backend.
//
// Manager is the construction-time seam between configuration and the
// credentials.Repository the auth service runs against: the postgres variant
// owns the *sql.DB handle and the schema migrations, the in-memory variant
// owns nothing but the map.
package db

import (
	"context"

	"github.com/askarpov/loginward/internal/server/credentials"
)

type Manager interface {
	RunMigrations(ctx context.Context) error
	Credentials() credentials.Repository
	Close() error
}
