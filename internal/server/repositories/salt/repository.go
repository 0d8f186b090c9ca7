// Package salt persists the single process-wide password salt. Exactly one
// row ever exists; once written the value is never regenerated, so every
// stored password hash stays verifiable across restarts.
package salt

import "context"

// Repository manages the single salt row.
type Repository interface {
	// Ensure inserts value as the salt if no salt row exists yet. It is
	// idempotent and safe under concurrent first start: the fixed primary
	// key guarantees at most one row wins.
	Ensure(ctx context.Context, value string) error

	// Get returns the stored salt, or common.ErrorSaltNotInitialized when
	// Ensure has never run.
	Get(ctx context.Context) (string, error)
}
