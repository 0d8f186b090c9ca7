// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and the
// issue/verify token protocol on top of the user repository.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/auth"
	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/password"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/users"
	"github.com/google/uuid"
)

// UserService provides the credential-issuance operations:
//   - Register: hash the password and create the user record
//   - Authenticate: verify a username/password pair
//   - Login: authenticate and mint a bearer token
//   - ResolveCurrentUser: verify a presented token and load its user
type UserService struct {
	users                       users.Repository
	hasher                      password.Hasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService from the repository, the hasher
// bound to the store's salt, and server config.
func NewUserService(repo users.Repository, hasher password.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		users:                       repo,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a user with a fresh id and a salted password hash.
// Returns common.ErrorAlreadyExists when the username is taken and
// common.ErrorValidation for empty input. The plaintext never reaches the
// repository.
func (s *UserService) Register(ctx context.Context, username, plaintext string) (*models.User, error) {

	if username == "" || plaintext == "" {
		return nil, common.ErrorValidation
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}

	user, err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the pair against the stored record. Unknown
// usernames return common.ErrorNotFound; a failed password check returns
// common.ErrorInvalidCredentials. The two stay distinguishable here so the
// boundary can decide how much to reveal.
func (s *UserService) Authenticate(ctx context.Context, username, plaintext string) (*models.User, error) {

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// GetByID loads a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Login authenticates and issues a signed bearer token bound to the user id.
func (s *UserService) Login(ctx context.Context, username, plaintext string) (string, error) {

	user, err := s.Authenticate(ctx, username, plaintext)
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ResolveCurrentUser verifies a presented token and loads the bound user.
// A token whose user id no longer resolves collapses to ErrInvalidToken;
// expired tokens keep their own sentinel for callers that care.
func (s *UserService) ResolveCurrentUser(ctx context.Context, token string) (*models.User, error) {

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
