package services

import (
	"context"
	"errors"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/schedules"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
	"github.com/sportvest/sportvest/internal/timex"
)

// ScheduleService manages match schedules. Reads and deletes are
// ownership-guarded; anonymous callers get the global unscoped listing.
type ScheduleService struct {
	users     users.Repository
	schedules schedules.Repository
	logger    logging.Logger
}

func NewScheduleService(users users.Repository, repo schedules.Repository, logger logging.Logger) *ScheduleService {
	return &ScheduleService{
		users:     users,
		schedules: repo,
		logger:    logger.With("module", "schedule_service"),
	}
}

// Create validates the input and persists a schedule owned by the caller.
// The owner reference comes from the identity, never from the payload.
func (s *ScheduleService) Create(ctx context.Context, identity auth.Identity, in models.ScheduleInput) (*models.Schedule, error) {
	if !identity.IsAuthenticated() {
		return nil, common.ErrMissingIdentity
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}

	schedule := &models.Schedule{
		UserID:    owner.ID,
		SportType: in.SportType,
		MatchName: in.MatchName,
		TeamA:     in.TeamA,
		TeamB:     in.TeamB,
		MatchDate: in.MatchDate,
	}

	created, err := s.schedules.Create(ctx, schedule)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	return created, nil
}

// List returns the caller's schedules, or every schedule for an anonymous
// caller. The anonymous path is best-effort: a store failure degrades to an
// empty listing instead of an error.
func (s *ScheduleService) List(ctx context.Context, identity auth.Identity, q models.Query) ([]*models.Schedule, error) {
	if !identity.IsAuthenticated() {
		result, err := s.schedules.List(ctx, q)
		if err != nil {
			s.logger.Warn(ctx, "anonymous listing failed", "error", err.Error())
			return []*models.Schedule{}, nil
		}
		return result, nil
	}

	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	q.OwnerID = owner.ID

	result, err := s.schedules.List(ctx, q)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	return result, nil
}

// Upcoming returns the caller's schedules after today, soonest first.
// Anonymous callers have no schedules of their own and get an empty list.
func (s *ScheduleService) Upcoming(ctx context.Context, identity auth.Identity) ([]*models.Schedule, error) {
	if !identity.IsAuthenticated() {
		return []*models.Schedule{}, nil
	}

	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}

	result, err := s.schedules.ListUpcoming(ctx, owner.ID, timex.Today())
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	return result, nil
}

// Get returns a schedule by id if the caller owns it. Absence and foreign
// ownership are indistinguishable.
func (s *ScheduleService) Get(ctx context.Context, identity auth.Identity, id string) (*models.Schedule, error) {
	return s.authorized(ctx, identity, id)
}

// Delete removes a schedule by id if the caller owns it.
func (s *ScheduleService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	schedule, err := s.authorized(ctx, identity, id)
	if err != nil {
		return err
	}
	if err := s.schedules.Delete(ctx, schedule.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFoundOrDenied
		}
		return s.storeErr(ctx, err)
	}
	return nil
}

func (s *ScheduleService) authorized(ctx context.Context, identity auth.Identity, id string) (*models.Schedule, error) {
	if !identity.IsAuthenticated() {
		return nil, common.ErrNotFoundOrDenied
	}

	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}

	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFoundOrDenied
		}
		return nil, s.storeErr(ctx, err)
	}

	if err := auth.Authorize(identity, owner.ID, schedule.UserID); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) storeErr(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrNotFoundOrDenied) {
		return err
	}
	s.logger.Error(ctx, "store error", "error", err.Error())
	return common.ErrInternal
}
