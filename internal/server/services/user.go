// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and bearer-token checks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	"github.com/dmitrijs2005/animalcatalog/internal/cryptox"
	"github.com/dmitrijs2005/animalcatalog/internal/server/auth"
	"github.com/dmitrijs2005/animalcatalog/internal/server/config"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create a user and mint a token
// - Login: verify credentials and mint a token
// - Authenticate: verify a bearer token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		issuer:      auth.NewIssuer([]byte(cfg.TokenSecret), cfg.TokenValidity, common.TokenIssuer),
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register creates a user with a bcrypt hash of password and returns a
// session token for it. A taken email yields common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {
	email = common.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", common.ErrorInvalidInput
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return "", common.ErrorConflict
	case !errors.Is(err, common.ErrorNotFound):
		return "", fmt.Errorf("error searching user: %w", err)
	}

	hash, err := cryptox.HashPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
		}
		return "", common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return "", common.ErrorConflict
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(user)
}

// Login checks the password against the stored hash. Unknown emails and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = common.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", common.ErrorInvalidInput
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !cryptox.ComparePassword(user.PasswordHash, []byte(password)) {
		return "", common.ErrorUnauthorized
	}

	return s.issue(user)
}

// Authenticate verifies a session token and returns its claims.
func (s *UserService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.issuer.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}
	return claims, nil
}

func (s *UserService) issue(user *models.User) (string, error) {
	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
