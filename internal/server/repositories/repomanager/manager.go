// Package repomanager bundles the per-entity repositories behind one
// constructor so the application wires a single dependency.
package repomanager

import (
	"context"

	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/schedules"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Schedules() schedules.Repository
	Records() records.Repository

	// Snapshot runs fn against a read-consistent view of the record and
	// schedule stores, so multi-table reads do not interleave with writes.
	Snapshot(ctx context.Context, fn func(records.Repository, schedules.Repository) error) error

	// RunMigrations brings the backing store up to the current schema.
	RunMigrations(ctx context.Context) error
	// Close releases the underlying connections.
	Close() error
}
