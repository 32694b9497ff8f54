package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/repomanager"
	"github.com/sportvest/sportvest/internal/server/repositories/schedules"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
	"github.com/sportvest/sportvest/internal/timex"
)

var exportHeader = []string{
	"Type", "Match Name", "Sport", "Team A", "Team B",
	"Amount (₹)", "Ratio", "Est. Profit (₹)", "Actual Profit (₹)",
	"Date", "Status",
}

// Export is a rendered CSV attachment.
type Export struct {
	Filename string
	Data     []byte
}

// ExportService renders the caller's records and schedules as CSV files.
// Anonymous callers get the global view, matching the listing endpoints.
// Both tables are read inside one snapshot so the file is internally
// consistent.
type ExportService struct {
	users  users.Repository
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewExportService(users users.Repository, repos repomanager.RepositoryManager, logger logging.Logger) *ExportService {
	return &ExportService{
		users:  users,
		repos:  repos,
		logger: logger.With("module", "export_service"),
	}
}

// Overall exports every record and schedule in the caller's scope.
func (s *ExportService) Overall(ctx context.Context, identity auth.Identity) (*Export, error) {
	return s.export(ctx, identity, models.Query{}, "sports_data_overall.csv")
}

// Monthly exports the calendar month given by year and month.
func (s *ExportService) Monthly(ctx context.Context, identity auth.Identity, year, month int) (*Export, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", common.ErrValidation)
	}
	from := timex.NewDate(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
	q := models.Query{
		From: from,
		To:   timex.NewDate(from.AddDate(0, 1, -1)),
	}
	return s.export(ctx, identity, q, fmt.Sprintf("sports_data_%04d_%02d.csv", year, month))
}

// BySport exports a single sport's rows.
func (s *ExportService) BySport(ctx context.Context, identity auth.Identity, sport string) (*Export, error) {
	sport = strings.TrimSpace(sport)
	if sport == "" {
		return nil, fmt.Errorf("%w: sportType is required", common.ErrValidation)
	}
	q := models.Query{SportType: sport}
	name := fmt.Sprintf("sports_data_%s.csv", strings.ToLower(sport))
	return s.export(ctx, identity, q, name)
}

func (s *ExportService) export(ctx context.Context, identity auth.Identity, q models.Query, filename string) (*Export, error) {
	if identity.IsAuthenticated() {
		owner, err := resolveOwner(ctx, s.users, identity)
		if err != nil {
			return nil, s.storeErr(ctx, err)
		}
		q.OwnerID = owner.ID
	}

	var (
		recs   []*models.Record
		scheds []*models.Schedule
	)
	err := s.repos.Snapshot(ctx, func(recRepo records.Repository, schedRepo schedules.Repository) error {
		var err error
		if recs, err = recRepo.List(ctx, q); err != nil {
			return err
		}
		scheds, err = schedRepo.List(ctx, q)
		return err
	})
	if err != nil {
		if identity.IsAuthenticated() {
			return nil, s.storeErr(ctx, err)
		}
		s.logger.Warn(ctx, "anonymous export failed", "error", err.Error())
		recs, scheds = nil, nil
	}

	data, err := renderCSV(recs, scheds)
	if err != nil {
		s.logger.Error(ctx, "csv render failed", "error", err.Error())
		return nil, common.ErrInternal
	}
	return &Export{Filename: filename, Data: data}, nil
}

func renderCSV(recs []*models.Record, scheds []*models.Schedule) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, r := range recs {
		row := []string{
			"Investment",
			r.MatchName,
			r.SportType,
			r.TeamA,
			r.TeamB,
			formatAmount(r.AmountInvested),
			fmt.Sprintf("%.2f", r.Ratio),
			formatAmount(r.EstimatedProfit),
			formatAmount(r.ActualProfit()),
			r.EntryDate.String(),
			"Completed",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	today := timex.Today()
	for _, sc := range scheds {
		status := "Past"
		if sc.MatchDate.After(today) {
			status = "Upcoming"
		}
		row := []string{
			"Schedule",
			sc.MatchName,
			sc.SportType,
			sc.TeamA,
			sc.TeamB,
			"", "", "", "",
			sc.MatchDate.String(),
			status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func (s *ExportService) storeErr(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrNotFoundOrDenied) {
		return err
	}
	s.logger.Error(ctx, "store error", "error", err.Error())
	return common.ErrInternal
}
