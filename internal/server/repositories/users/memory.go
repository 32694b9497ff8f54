package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/server/models"
)

// MemoryRepository is a map-backed Repository used by tests and by the
// in-memory repository manager.
type MemoryRepository struct {
	mu     sync.RWMutex
	byName map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byName: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return nil, common.ErrUsernameTaken
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byName[stored.Username] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *user
	return &out, nil
}
