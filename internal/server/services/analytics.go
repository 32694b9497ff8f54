package services

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/schedules"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
)

// AnalyticsService aggregates investment figures. The dashboard flavor
// serves anonymous callers a global view; the detailed reports require an
// authenticated caller.
type AnalyticsService struct {
	users     users.Repository
	records   records.Repository
	schedules schedules.Repository
	logger    logging.Logger
}

func NewAnalyticsService(users users.Repository, recs records.Repository, scheds schedules.Repository, logger logging.Logger) *AnalyticsService {
	return &AnalyticsService{
		users:     users,
		records:   recs,
		schedules: scheds,
		logger:    logger.With("module", "analytics_service"),
	}
}

// Dashboard computes the summary stats over the caller's data, or over all
// data for an anonymous caller. Store failures on the anonymous path
// degrade to zeroed stats.
func (s *AnalyticsService) Dashboard(ctx context.Context, identity auth.Identity) (*models.DashboardStats, error) {
	q, err := s.scope(ctx, identity)
	if err != nil {
		return nil, err
	}

	recs, err := s.records.List(ctx, q)
	if err != nil {
		if identity.IsAuthenticated() {
			return nil, s.storeErr(ctx, err)
		}
		s.logger.Warn(ctx, "anonymous analytics failed", "error", err.Error())
		recs = nil
	}
	scheds, err := s.schedules.List(ctx, q)
	if err != nil {
		if identity.IsAuthenticated() {
			return nil, s.storeErr(ctx, err)
		}
		s.logger.Warn(ctx, "anonymous analytics failed", "error", err.Error())
		scheds = nil
	}

	stats := &models.DashboardStats{
		TotalRecords:   len(recs),
		TotalSchedules: len(scheds),
	}
	wins := 0
	for _, r := range recs {
		stats.TotalInvestment += r.AmountInvested
		stats.TotalProfit += r.EstimatedProfit
		if r.EstimatedProfit > r.AmountInvested {
			wins++
		}
	}
	stats.NetProfit = stats.TotalProfit - stats.TotalInvestment
	if len(recs) > 0 {
		stats.WinRate = float64(wins) / float64(len(recs)) * 100
	}
	return stats, nil
}

// TotalInvestment sums the stakes in the caller's scope.
func (s *AnalyticsService) TotalInvestment(ctx context.Context, identity auth.Identity) (*models.AnalyticsValue, error) {
	recs, err := s.scopedRecords(ctx, identity, models.Query{})
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, r := range recs {
		total += r.AmountInvested
	}
	return &models.AnalyticsValue{Metric: "Total Investment", Value: total}, nil
}

// TotalProfit sums the estimated payouts in the caller's scope.
func (s *AnalyticsService) TotalProfit(ctx context.Context, identity auth.Identity) (*models.AnalyticsValue, error) {
	recs, err := s.scopedRecords(ctx, identity, models.Query{})
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, r := range recs {
		total += r.EstimatedProfit
	}
	return &models.AnalyticsValue{Metric: "Total Estimated Profit", Value: total}, nil
}

// Report builds the detailed breakdown over the caller's records matched by
// the query. It requires an authenticated caller.
func (s *AnalyticsService) Report(ctx context.Context, identity auth.Identity, q models.Query) (*models.AnalyticsReport, error) {
	if !identity.IsAuthenticated() {
		return nil, common.ErrMissingIdentity
	}

	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	q.OwnerID = owner.ID

	recs, err := s.records.List(ctx, q)
	if err != nil {
		return nil, s.storeErr(ctx, err)
	}
	return buildReport(recs), nil
}

func buildReport(recs []*models.Record) *models.AnalyticsReport {
	report := &models.AnalyticsReport{TotalBets: len(recs)}
	if len(recs) == 0 {
		return report
	}

	best := math.Inf(-1)
	worst := math.Inf(1)
	for _, r := range recs {
		report.TotalInvestment += r.AmountInvested
		report.TotalProfit += math.Max(0, r.EstimatedProfit)
		report.TotalLoss += math.Min(0, r.EstimatedProfit)
		if r.EstimatedProfit > 0 {
			report.WinningBets++
		}
		best = math.Max(best, r.EstimatedProfit)
		worst = math.Min(worst, r.EstimatedProfit)
	}
	report.NetProfit = report.TotalProfit + report.TotalLoss
	report.TotalLoss = math.Abs(report.TotalLoss)
	report.LosingBets = report.TotalBets - report.WinningBets
	report.WinPercentage = float64(report.WinningBets) * 100 / float64(report.TotalBets)
	report.AverageBetAmount = report.TotalInvestment / float64(report.TotalBets)
	report.BestProfit = best
	report.WorstLoss = worst
	report.SportWiseStats = sportWiseStats(recs)
	report.MonthlyData = monthlyData(recs)
	report.RecentActivities = recentActivities(recs)
	return report
}

func sportWiseStats(recs []*models.Record) map[string]models.SportStats {
	stats := make(map[string]models.SportStats)
	for _, r := range recs {
		s := stats[r.SportType]
		s.Investment += r.AmountInvested
		s.Profit += r.EstimatedProfit
		s.TotalBets++
		if r.EstimatedProfit > 0 {
			s.WinningBets++
		}
		stats[r.SportType] = s
	}
	for sport, s := range stats {
		s.WinPercentage = float64(s.WinningBets) / float64(s.TotalBets) * 100
		stats[sport] = s
	}
	return stats
}

func monthlyData(recs []*models.Record) []models.MonthlyData {
	buckets := make(map[string]*models.MonthlyData)
	for _, r := range recs {
		month := r.EntryDate.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &models.MonthlyData{Month: month}
			buckets[month] = b
		}
		b.Investment += r.AmountInvested
		b.Profit += r.EstimatedProfit
		b.TotalBets++
	}
	months := make([]models.MonthlyData, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, *b)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

// recentActivities returns the ten newest records by creation time.
func recentActivities(recs []*models.Record) []models.RecentActivity {
	sorted := make([]*models.Record, len(recs))
	copy(sorted, recs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	activities := make([]models.RecentActivity, 0, len(sorted))
	for _, r := range sorted {
		activities = append(activities, models.RecentActivity{
			MatchName: r.MatchName,
			SportType: r.SportType,
			Amount:    r.AmountInvested,
			Profit:    r.EstimatedProfit,
			Date:      r.EntryDate.String(),
			Result:    r.WinnerOrDraw,
		})
	}
	return activities
}

// scope resolves the record query for the caller: owner-scoped when
// authenticated, global when anonymous.
func (s *AnalyticsService) scope(ctx context.Context, identity auth.Identity) (models.Query, error) {
	if !identity.IsAuthenticated() {
		return models.Query{}, nil
	}
	owner, err := resolveOwner(ctx, s.users, identity)
	if err != nil {
		return models.Query{}, s.storeErr(ctx, err)
	}
	return models.Query{OwnerID: owner.ID}, nil
}

func (s *AnalyticsService) scopedRecords(ctx context.Context, identity auth.Identity, q models.Query) ([]*models.Record, error) {
	scoped, err := s.scope(ctx, identity)
	if err != nil {
		return nil, err
	}
	q.OwnerID = scoped.OwnerID

	recs, err := s.records.List(ctx, q)
	if err != nil {
		if identity.IsAuthenticated() {
			return nil, s.storeErr(ctx, err)
		}
		s.logger.Warn(ctx, "anonymous analytics failed", "error", err.Error())
		return nil, nil
	}
	return recs, nil
}

func (s *AnalyticsService) storeErr(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrNotFoundOrDenied) {
		return err
	}
	s.logger.Error(ctx, "store error", "error", err.Error())
	return common.ErrInternal
}
