package records

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/server/models"
)

// MemoryRepository is a map-backed Repository used by tests and by the
// in-memory repository manager.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Record)}
}

func (r *MemoryRepository) Create(ctx context.Context, record *models.Record) (*models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *record
	return &out, nil
}

func (r *MemoryRepository) List(ctx context.Context, q models.Query) ([]*models.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Record
	for _, rec := range r.byID {
		if q.OwnerID != "" && rec.UserID != q.OwnerID {
			continue
		}
		if q.HasDateRange() {
			if rec.EntryDate.Before(q.From) || rec.EntryDate.After(q.To) {
				continue
			}
		} else if q.HasSportFilter() && rec.SportType != q.SportType {
			continue
		}
		out := *rec
		result = append(result, &out)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EntryDate.After(result[j].EntryDate)
	})
	return result, nil
}

func (r *MemoryRepository) Update(ctx context.Context, record *models.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[record.ID]
	if !ok {
		return common.ErrNotFound
	}

	stored := *record
	stored.UserID = existing.UserID
	stored.CreatedAt = existing.CreatedAt
	r.byID[stored.ID] = &stored
	return nil
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
