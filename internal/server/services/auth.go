// Package services contains server-side business logic: authentication,
// schedule and record management, analytics aggregation, and CSV export.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
)

const minPasswordLength = 6

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthService orchestrates registration and login: it validates input,
// verifies credentials against the user store, and issues identity tokens.
type AuthService struct {
	users  users.Repository
	tokens *auth.TokenService
	logger logging.Logger
}

func NewAuthService(users users.Repository, tokens *auth.TokenService, logger logging.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

// Register creates a new user and returns a token for it. Username
// uniqueness is enforced by the store; a duplicate yields
// common.ErrUsernameTaken and leaves the existing account untouched.
func (s *AuthService) Register(ctx context.Context, username, password, confirmPassword string) (*AuthResult, error) {
	username = strings.TrimSpace(username)

	if username == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(confirmPassword) == "" {
		return nil, common.ErrMissingField
	}
	if password != confirmPassword {
		return nil, common.ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return nil, common.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "password hash failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	user, err := s.users.Create(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return nil, common.ErrUsernameTaken
		}
		s.logger.Error(ctx, "user create failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	return s.issue(ctx, user.Username)
}

// Login verifies the credentials and returns a fresh token. An unknown
// username and a wrong password produce the same failure, so the response
// never reveals whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)

	if username == "" || strings.TrimSpace(password) == "" {
		return nil, common.ErrMissingField
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(ctx, user.Username)
}

func (s *AuthService) issue(ctx context.Context, username string) (*AuthResult, error) {
	token, err := s.tokens.Issue(username)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err.Error())
		return nil, common.ErrInternal
	}
	return &AuthResult{Token: token, Username: username}, nil
}

// resolveOwner maps an authenticated identity to its stored user record.
// Callers must have checked identity.IsAuthenticated already; a username
// that no longer resolves is indistinguishable from a missing resource.
func resolveOwner(ctx context.Context, repo users.Repository, identity auth.Identity) (*models.User, error) {
	user, err := repo.GetByUsername(ctx, identity.Username())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFoundOrDenied
		}
		return nil, fmt.Errorf("owner lookup: %w", err)
	}
	return user, nil
}
