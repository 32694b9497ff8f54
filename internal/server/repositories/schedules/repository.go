// Package schedules provides persistence for match schedules. All filtered
// listings go through the shared models.Query object.
package schedules

import (
	"context"

	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/timex"
)

type Repository interface {
	// Create persists a new schedule and assigns its id.
	Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	// GetByID returns common.ErrNotFound when no such row exists. The row
	// is returned regardless of owner; the caller applies the ownership
	// guard.
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	// List returns schedules matching the query, newest match first. An
	// empty OwnerID lists every user's schedules.
	List(ctx context.Context, q models.Query) ([]*models.Schedule, error)
	// ListUpcoming returns the owner's schedules strictly after the given
	// day, soonest first.
	ListUpcoming(ctx context.Context, ownerID string, after timex.Date) ([]*models.Schedule, error)
	// Delete removes the row; missing ids yield common.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
