package services

import (
	"context"
	"errors"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
)

// RecordService manages investment records. Reads, updates, and deletes are
// ownership-guarded; anonymous callers get the global unscoped listing.
type RecordService struct {
	users   users.Repository
	records records.Repository
	logger  logging.Logger
}

func NewRecordService(users users.Repository, repo records.Repository, logger logging.Logger) *RecordService {
	return &RecordService{
		users:   users,
		records: repo,
		logger:  logger.With("module", "record_service"),
	}
}

// Create validates the input, derives the estimated profit, and persists a
// record owned by the caller.
func (s *RecordService) Create(ctx context.Context, identity auth.Identity, in models.RecordInput) (*models.Record, error) {
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

	record := &models.Record{
		UserID:          owner.ID,
		SportType:       in.SportType,
		MatchName:       in.MatchName,
		TeamA:           in.TeamA,
		TeamB:           in.TeamB,
		WinnerOrDraw:    in.WinnerOrDraw,
		AmountInvested:  in.AmountInvested,
		Ratio:           in.Ratio,
		EstimatedProfit: in.AmountInvested * in.Ratio,
		EntryDate:       in.EntryDate,
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	return created, nil
}

// List returns the caller's records filtered by the query, or every record
// for an anonymous caller. The anonymous path is best-effort: a store
// failure degrades to an empty listing.
func (s *RecordService) List(ctx context.Context, identity auth.Identity, q models.Query) ([]*models.Record, error) {
	if !identity.IsAuthenticated() {
		result, err := s.records.List(ctx, q)
		if err != nil {
			s.logger.Warn(ctx, "anonymous listing failed", "error", err.Error())
			return []*models.Record{}, nil
		}
		return result, nil
	}

	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	q.OwnerID = owner.ID

	result, err := s.records.List(ctx, q)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	return result, nil
}

// Get returns a record by id if the caller owns it.
func (s *RecordService) Get(ctx context.Context, identity auth.Identity, id string) (*models.Record, error) {
	return s.authorized(ctx, identity, id)
}

// Update overwrites an owned record's fields and recomputes the estimated
// profit. The owner reference is never reassigned.
func (s *RecordService) Update(ctx context.Context, identity auth.Identity, id string, in models.RecordInput) (*models.Record, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	record, err := s.authorized(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	record.SportType = in.SportType
	record.MatchName = in.MatchName
	record.TeamA = in.TeamA
	record.TeamB = in.TeamB
	record.WinnerOrDraw = in.WinnerOrDraw
	record.AmountInvested = in.AmountInvested
	record.Ratio = in.Ratio
	record.EstimatedProfit = in.AmountInvested * in.Ratio
	record.EntryDate = in.EntryDate

	if err := s.records.Update(ctx, record); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFoundOrDenied
		}
		return nil, s.storeErr(ctx, err)
	}
	return record, nil
}

// Delete removes a record by id if the caller owns it.
func (s *RecordService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	record, err := s.authorized(ctx, identity, id)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, record.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFoundOrDenied
		}
		return s.storeErr(ctx, err)
	}
	return nil
}

func (s *RecordService) authorized(ctx context.Context, identity auth.Identity, id string) (*models.Record, error) {
	if !identity.IsAuthenticated() {
		return nil, common.ErrNotFoundOrDenied
	}

	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}

	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFoundOrDenied
		}
		return nil, s.storeErr(ctx, err)
	}

	if err := auth.Authorize(identity, owner.ID, record.UserID); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *RecordService) storeErr(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrNotFoundOrDenied) {
		return err
	}
	s.logger.Error(ctx, "store error", "error", err.Error())
	return common.ErrInternal
}
