// Package records provides persistence for investment records. All filtered
// listings go through the shared models.Query object.
package records

import (
	"context"

	"github.com/sportvest/sportvest/internal/server/models"
)

type Repository interface {
	// Create persists a new record and assigns its id.
	Create(ctx context.Context, record *models.Record) (*models.Record, error)
	// GetByID returns common.ErrNotFound when no such row exists. The row
	// is returned regardless of owner; the caller applies the ownership
	// guard.
	GetByID(ctx context.Context, id string) (*models.Record, error)
	// List returns records matching the query, newest entry first. An
	// empty OwnerID lists every user's records.
	List(ctx context.Context, q models.Query) ([]*models.Record, error)
	// Update overwrites the mutable fields of an existing record. The
	// owner reference is never changed.
	Update(ctx context.Context, record *models.Record) error
	// Delete removes the row; missing ids yield common.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
