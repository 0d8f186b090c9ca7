package salt

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Ensure(ctx context.Context, value string) error {

	query :=
		`INSERT INTO salt (id, salt)
		 VALUES (1, ?)
		 ON CONFLICT (id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	query :=
		`SELECT salt FROM salt
		 WHERE id = 1
		 `

	var value string
	err := r.db.QueryRowContext(ctx, query).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorSaltNotInitialized
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return value, nil
}
