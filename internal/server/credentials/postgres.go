package credentials

import (
	"context"
	"fmt"

	"github.com/askarpov/loginward/internal/dbx"
)

// PostgresRepository stores credentials in the login_table relation, which
// carries a uniqueness constraint on user_name (see the migrations package).
// Statement-level serialization on the shared handle is database/sql's job;
// atomicity of the conditional insert is the database's.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, userName, secret string) error {
	query :=
		`INSERT INTO login_table (user_name, user_psw)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, userName, secret); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Query(ctx context.Context, userName string) ([]Credential, error) {
	query :=
		`SELECT user_name, user_psw FROM login_table
		 WHERE user_name = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []Credential{}
	for rows.Next() {
		var c Credential
		if err := rows.Scan(&c.UserName, &c.Secret); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, userName, secret string) (bool, error) {
	query :=
		`INSERT INTO login_table (user_name, user_psw)
		 VALUES ($1, $2)
		 ON CONFLICT (user_name) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, userName, secret)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return inserted == 1, nil
}
