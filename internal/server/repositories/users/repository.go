// Package users persists user credentials: the Credential Store.
package users

import (
	"context"

	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
)

// Repository stores and looks up users by email. Create fails with
// common.ErrorConflict when the email is taken; GetUserByEmail fails with
// common.ErrorNotFound when no user matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
