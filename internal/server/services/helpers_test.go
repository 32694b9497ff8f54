package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/schedules"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
	"github.com/sportvest/sportvest/internal/timex"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testTokens() *auth.TokenService {
	return auth.NewTokenService([]byte("test-secret"), time.Hour)
}

// registerUser creates a user directly in the store and returns its
// authenticated identity.
func registerUser(t *testing.T, repo users.Repository, username string) auth.Identity {
	t.Helper()
	hash, err := auth.HashPassword("Secret1x")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if _, err := repo.Create(context.Background(), &models.User{Username: username, PasswordHash: hash}); err != nil {
		t.Fatalf("Create user error: %v", err)
	}
	return auth.Authenticated(username)
}

func mustDate(t *testing.T, s string) timex.Date {
	t.Helper()
	d, err := timex.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error: %v", s, err)
	}
	return d
}

var errStoreDown = errors.New("store down")

// failingScheduleRepo errors on every operation.
type failingScheduleRepo struct{}

func (failingScheduleRepo) Create(context.Context, *models.Schedule) (*models.Schedule, error) {
	return nil, errStoreDown
}
func (failingScheduleRepo) GetByID(context.Context, string) (*models.Schedule, error) {
	return nil, errStoreDown
}
func (failingScheduleRepo) List(context.Context, models.Query) ([]*models.Schedule, error) {
	return nil, errStoreDown
}
func (failingScheduleRepo) ListUpcoming(context.Context, string, timex.Date) ([]*models.Schedule, error) {
	return nil, errStoreDown
}
func (failingScheduleRepo) Delete(context.Context, string) error { return errStoreDown }

var _ schedules.Repository = failingScheduleRepo{}

// failingRecordRepo errors on every operation.
type failingRecordRepo struct{}

func (failingRecordRepo) Create(context.Context, *models.Record) (*models.Record, error) {
	return nil, errStoreDown
}
func (failingRecordRepo) GetByID(context.Context, string) (*models.Record, error) {
	return nil, errStoreDown
}
func (failingRecordRepo) List(context.Context, models.Query) ([]*models.Record, error) {
	return nil, errStoreDown
}
func (failingRecordRepo) Update(context.Context, *models.Record) error {
	return errStoreDown
}
func (failingRecordRepo) Delete(context.Context, string) error { return errStoreDown }

var _ records.Repository = failingRecordRepo{}
