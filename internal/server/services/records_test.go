package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
)

func newRecordService() (*RecordService, *users.MemoryRepository) {
	userRepo := users.NewMemoryRepository()
	return NewRecordService(userRepo, records.NewMemoryRepository(), testLogger()), userRepo
}

func recordInput(t *testing.T, amount, ratio float64) models.RecordInput {
	t.Helper()
	return models.RecordInput{
		SportType:      "Cricket",
		MatchName:      "IND vs AUS",
		TeamA:          "India",
		TeamB:          "Australia",
		WinnerOrDraw:   "India",
		AmountInvested: amount,
		Ratio:          ratio,
		EntryDate:      mustDate(t, "2026-08-01"),
	}
}

func TestRecordCreate_DerivesEstimatedProfit(t *testing.T) {
	t.Parallel()

	svc, userRepo := newRecordService()
	alice := registerUser(t, userRepo, "alice")

	created, err := svc.Create(context.Background(), alice, recordInput(t, 100, 1.5))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.EstimatedProfit != 150 {
		t.Fatalf("EstimatedProfit = %v, want 150", created.EstimatedProfit)
	}
	if created.ActualProfit() != 50 {
		t.Fatalf("ActualProfit = %v, want 50", created.ActualProfit())
	}
}

func TestRecordCreate_Validation(t *testing.T) {
	t.Parallel()

	svc, userRepo := newRecordService()
	alice := registerUser(t, userRepo, "alice")
	ctx := context.Background()

	in := recordInput(t, 0, 1.5)
	if _, err := svc.Create(ctx, alice, in); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("zero amount: expected common.ErrValidation, got %v", err)
	}

	in = recordInput(t, 100, -2)
	if _, err := svc.Create(ctx, alice, in); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("negative ratio: expected common.ErrValidation, got %v", err)
	}

	if _, err := svc.Create(ctx, auth.Anonymous, recordInput(t, 100, 1.5)); !errors.Is(err, common.ErrMissingIdentity) {
		t.Fatalf("anonymous: expected common.ErrMissingIdentity, got %v", err)
	}
}

func TestRecordUpdate_RecomputesProfitAndKeepsOwner(t *testing.T) {
	t.Parallel()

	svc, userRepo := newRecordService()
	ctx := context.Background()
	alice := registerUser(t, userRepo, "alice")

	created, err := svc.Create(ctx, alice, recordInput(t, 100, 1.5))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	in := recordInput(t, 200, 2)
	updated, err := svc.Update(ctx, alice, created.ID, in)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.EstimatedProfit != 400 {
		t.Fatalf("EstimatedProfit = %v, want 400", updated.EstimatedProfit)
	}
	if updated.UserID != created.UserID {
		t.Fatalf("owner must survive the update: got %q want %q", updated.UserID, created.UserID)
	}
}

func TestRecordUpdate_ForeignOwnerLooksAbsent(t *testing.T) {
	t.Parallel()

	svc, userRepo := newRecordService()
	ctx := context.Background()
	alice := registerUser(t, userRepo, "alice")
	bob := registerUser(t, userRepo, "bob")

	created, err := svc.Create(ctx, alice, recordInput(t, 100, 1.5))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Update(ctx, bob, created.ID, recordInput(t, 1, 1)); !errors.Is(err, common.ErrNotFoundOrDenied) {
		t.Fatalf("expected common.ErrNotFoundOrDenied, got %v", err)
	}

	// Unchanged for the owner.
	got, err := svc.Get(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.AmountInvested != 100 {
		t.Fatalf("record must be untouched, got %+v", got)
	}
}

func TestRecordDelete(t *testing.T) {
	t.Parallel()

	svc, userRepo := newRecordService()
	ctx := context.Background()
	alice := registerUser(t, userRepo, "alice")

	created, err := svc.Create(ctx, alice, recordInput(t, 100, 1.5))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(ctx, auth.Anonymous, created.ID); !errors.Is(err, common.ErrNotFoundOrDenied) {
		t.Fatalf("anonymous delete: expected common.ErrNotFoundOrDenied, got %v", err)
	}
	if err := svc.Delete(ctx, alice, created.ID); err != nil {
		t.Fatalf("owner Delete error: %v", err)
	}
	if err := svc.Delete(ctx, alice, created.ID); !errors.Is(err, common.ErrNotFoundOrDenied) {
		t.Fatalf("second delete: expected common.ErrNotFoundOrDenied, got %v", err)
	}
}

func TestRecordList_Filters(t *testing.T) {
	t.Parallel()

	svc, userRepo := newRecordService()
	ctx := context.Background()
	alice := registerUser(t, userRepo, "alice")

	cricket := recordInput(t, 100, 1.5)
	football := recordInput(t, 50, 2)
	football.SportType = "Football"
	football.EntryDate = mustDate(t, "2026-07-01")

	if _, err := svc.Create(ctx, alice, cricket); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(ctx, alice, football); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	bySport, err := svc.List(ctx, alice, models.Query{SportType: "Football"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(bySport) != 1 || bySport[0].SportType != "Football" {
		t.Fatalf("sport filter failed: %+v", bySport)
	}

	// "ALL" disables the sport filter.
	all, err := svc.List(ctx, alice, models.Query{SportType: models.SportAll})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ALL must match every sport, got %d", len(all))
	}

	// A date range wins over the sport filter.
	ranged, err := svc.List(ctx, alice, models.Query{
		SportType: "Football",
		From:      mustDate(t, "2026-08-01"),
		To:        mustDate(t, "2026-08-31"),
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(ranged) != 1 || ranged[0].SportType != "Cricket" {
		t.Fatalf("date range must take precedence, got %+v", ranged)
	}
}

func TestRecordList_AnonymousStoreFailureDegrades(t *testing.T) {
	t.Parallel()

	svc := NewRecordService(users.NewMemoryRepository(), failingRecordRepo{}, testLogger())

	list, err := svc.List(context.Background(), auth.Anonymous, models.Query{})
	if err != nil {
		t.Fatalf("anonymous listing must not fail, got %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}
