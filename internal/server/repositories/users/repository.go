// Package users provides user-account persistence. Username uniqueness is
// enforced at this boundary.
package users

import (
	"context"

	"github.com/sportvest/sportvest/internal/server/models"
)

type Repository interface {
	// Create persists a new user and assigns its id. A duplicate username
	// yields common.ErrUsernameTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByUsername returns common.ErrNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
