package repomanager

import (
	"context"

	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/schedules"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs the repositories with process memory.
// Used by tests.
type InMemoryRepositoryManager struct {
	users     *users.MemoryRepository
	schedules *schedules.MemoryRepository
	records   *records.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		schedules: schedules.NewMemoryRepository(),
		records:   records.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository         { return m.users }
func (m *InMemoryRepositoryManager) Schedules() schedules.Repository { return m.schedules }
func (m *InMemoryRepositoryManager) Records() records.Repository     { return m.records }
func (m *InMemoryRepositoryManager) Snapshot(ctx context.Context, fn func(records.Repository, schedules.Repository) error) error {
	return fn(m.records, m.schedules)
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Close() error                        { return nil }
