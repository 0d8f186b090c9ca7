// Package users contains the credential store's user repositories.
// One implementation per backend; both map driver-specific failures onto
// the shared sentinel errors so that services stay backend-agnostic.
package users

import (
	"context"

	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

// Repository persists user credential records. Usernames are unique; a
// violated constraint surfaces as common.ErrorAlreadyExists, and lookups
// with no match return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
