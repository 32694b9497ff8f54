package schedules

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/timex"
)

// MemoryRepository is a map-backed Repository used by tests and by the
// in-memory repository manager.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Schedule
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Schedule)}
}

func (r *MemoryRepository) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *schedule
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schedule, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *schedule
	return &out, nil
}

func (r *MemoryRepository) List(ctx context.Context, q models.Query) ([]*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Schedule
	for _, s := range r.byID {
		if q.OwnerID != "" && s.UserID != q.OwnerID {
			continue
		}
		if q.HasDateRange() {
			if s.MatchDate.Before(q.From) || s.MatchDate.After(q.To) {
				continue
			}
		} else if q.HasSportFilter() && s.SportType != q.SportType {
			continue
		}
		out := *s
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MatchDate.After(result[j].MatchDate)
	})
	return result, nil
}

func (r *MemoryRepository) ListUpcoming(ctx context.Context, ownerID string, after timex.Date) ([]*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Schedule
	for _, s := range r.byID {
		if s.UserID != ownerID || !s.MatchDate.After(after) {
			continue
		}
		out := *s
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MatchDate.Before(result[j].MatchDate)
	})
	return result, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
