// Package repomanager wires a database connection to the concrete
// repository implementations for that backend and owns schema setup
// (migrations plus first-start salt initialization).
package repomanager

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/salt"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/users"
)

// saltSize is the number of random bytes in the process-wide salt.
const saltSize = 16

// RepositoryManager exposes backend-specific repositories over a shared
// connection. Repository accessors take a dbx.DBTX so callers can pass
// either the pooled connection or an open transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Salt(db dbx.DBTX) salt.Repository
	Close() error
}

// Open picks the backend from the DSN: postgres:// and postgresql:// go to
// pgx, everything else is treated as a SQLite path.
func Open(dsn string) (RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresRepositoryManager(dsn)
	}
	return NewSQLiteRepositoryManager(dsn)
}

// EnsureSalt makes sure the single salt row exists and returns its decoded
// value. The insert-if-absent runs in a transaction, and the fixed primary
// key on the salt table guarantees that under a concurrent first start only
// one generated value is ever persisted.
func EnsureSalt(ctx context.Context, m RepositoryManager) ([]byte, error) {

	value, err := common.MakeRandHexString(saltSize)
	if err != nil {
		return nil, fmt.Errorf("salt generation error: %w", err)
	}

	err = dbx.WithTx(ctx, m.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		return m.Salt(tx).Ensure(ctx, value)
	})
	if err != nil {
		return nil, fmt.Errorf("salt init error: %w", err)
	}

	stored, err := m.Salt(m.Conn()).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("salt read error: %w", err)
	}

	decoded, err := hex.DecodeString(stored)
	if err != nil {
		return nil, fmt.Errorf("stored salt is not valid hex: %w", err)
	}

	return decoded, nil
}
