package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/server/repositories/records"
	"github.com/sportvest/sportvest/internal/server/repositories/schedules"
	"github.com/sportvest/sportvest/internal/server/repositories/users"
)

type analyticsFixture struct {
	svc       *AnalyticsService
	users     *users.MemoryRepository
	records   *records.MemoryRepository
	schedules *schedules.MemoryRepository
}

func newAnalyticsFixture() *analyticsFixture {
	f := &analyticsFixture{
		users:     users.NewMemoryRepository(),
		records:   records.NewMemoryRepository(),
		schedules: schedules.NewMemoryRepository(),
	}
	f.svc = NewAnalyticsService(f.users, f.records, f.schedules, testLogger())
	return f
}

func (f *analyticsFixture) addRecord(t *testing.T, ownerID string, amount, ratio float64, date string) {
	t.Helper()
	f.addSportRecord(t, ownerID, "Cricket", amount, ratio, date)
}

func (f *analyticsFixture) addSportRecord(t *testing.T, ownerID, sport string, amount, ratio float64, date string) {
	t.Helper()
	_, err := f.records.Create(context.Background(), &models.Record{
		UserID:          ownerID,
		SportType:       sport,
		MatchName:       "m",
		TeamA:           "a",
		TeamB:           "b",
		WinnerOrDraw:    "a",
		AmountInvested:  amount,
		Ratio:           ratio,
		EstimatedProfit: amount * ratio,
		EntryDate:       mustDate(t, date),
	})
	if err != nil {
		t.Fatalf("Create record error: %v", err)
	}
}

func (f *analyticsFixture) ownerID(t *testing.T, username string) string {
	t.Helper()
	u, err := f.users.GetByUsername(context.Background(), username)
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	return u.ID
}

func TestDashboard_OwnerScoped(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	ctx := context.Background()
	alice := registerUser(t, f.users, "alice")
	registerUser(t, f.users, "bob")

	aliceID := f.ownerID(t, "alice")
	bobID := f.ownerID(t, "bob")

	// 100 @ 1.5 is a win (150 > 100), 50 @ 0.5 a loss (25 < 50).
	f.addRecord(t, aliceID, 100, 1.5, "2026-08-01")
	f.addRecord(t, aliceID, 50, 0.5, "2026-08-02")
	f.addRecord(t, bobID, 999, 3, "2026-08-03")

	stats, err := f.svc.Dashboard(ctx, alice)
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}

	if stats.TotalRecords != 2 {
		t.Fatalf("TotalRecords = %d, want 2", stats.TotalRecords)
	}
	if stats.TotalInvestment != 150 {
		t.Fatalf("TotalInvestment = %v, want 150", stats.TotalInvestment)
	}
	if stats.TotalProfit != 175 {
		t.Fatalf("TotalProfit = %v, want 175", stats.TotalProfit)
	}
	if stats.NetProfit != 25 {
		t.Fatalf("NetProfit = %v, want 25", stats.NetProfit)
	}
	if stats.WinRate != 50 {
		t.Fatalf("WinRate = %v, want 50", stats.WinRate)
	}
}

func TestDashboard_AnonymousGlobalView(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	ctx := context.Background()
	registerUser(t, f.users, "alice")
	registerUser(t, f.users, "bob")

	f.addRecord(t, f.ownerID(t, "alice"), 100, 1.5, "2026-08-01")
	f.addRecord(t, f.ownerID(t, "bob"), 50, 2, "2026-08-02")

	stats, err := f.svc.Dashboard(ctx, auth.Anonymous)
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}
	if stats.TotalRecords != 2 || stats.TotalInvestment != 150 {
		t.Fatalf("anonymous view must span all users: %+v", stats)
	}
}

func TestDashboard_AnonymousStoreFailureDegrades(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(users.NewMemoryRepository(), failingRecordRepo{}, failingScheduleRepo{}, testLogger())

	stats, err := svc.Dashboard(context.Background(), auth.Anonymous)
	if err != nil {
		t.Fatalf("anonymous dashboard must not fail, got %v", err)
	}
	if stats.TotalRecords != 0 || stats.TotalInvestment != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestTotals(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	ctx := context.Background()
	alice := registerUser(t, f.users, "alice")
	f.addRecord(t, f.ownerID(t, "alice"), 100, 1.5, "2026-08-01")
	f.addRecord(t, f.ownerID(t, "alice"), 200, 2, "2026-08-02")

	inv, err := f.svc.TotalInvestment(ctx, alice)
	if err != nil {
		t.Fatalf("TotalInvestment error: %v", err)
	}
	if inv.Metric != "Total Investment" || inv.Value != 300 {
		t.Fatalf("unexpected investment total: %+v", inv)
	}

	profit, err := f.svc.TotalProfit(ctx, alice)
	if err != nil {
		t.Fatalf("TotalProfit error: %v", err)
	}
	if profit.Metric != "Total Estimated Profit" || profit.Value != 550 {
		t.Fatalf("unexpected profit total: %+v", profit)
	}
}

func TestReport_RequiresIdentity(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()

	_, err := f.svc.Report(context.Background(), auth.Anonymous, models.Query{})
	if !errors.Is(err, common.ErrMissingIdentity) {
		t.Fatalf("expected common.ErrMissingIdentity, got %v", err)
	}
}

func TestReport_Breakdown(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	ctx := context.Background()
	alice := registerUser(t, f.users, "alice")
	aliceID := f.ownerID(t, "alice")

	f.addRecord(t, aliceID, 100, 1.5, "2026-08-01") // est 150
	f.addRecord(t, aliceID, 200, 2, "2026-08-10")   // est 400
	f.addRecord(t, aliceID, 50, 1, "2026-08-20")    // est 50

	report, err := f.svc.Report(ctx, alice, models.Query{})
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}

	if report.TotalBets != 3 {
		t.Fatalf("TotalBets = %d, want 3", report.TotalBets)
	}
	if report.TotalInvestment != 350 {
		t.Fatalf("TotalInvestment = %v, want 350", report.TotalInvestment)
	}
	if report.TotalProfit != 600 {
		t.Fatalf("TotalProfit = %v, want 600", report.TotalProfit)
	}
	if report.WinningBets != 3 || report.LosingBets != 0 {
		t.Fatalf("unexpected win/loss split: %+v", report)
	}
	if report.WinPercentage != 100 {
		t.Fatalf("WinPercentage = %v, want 100", report.WinPercentage)
	}
	if report.BestProfit != 400 || report.WorstLoss != 50 {
		t.Fatalf("unexpected extremes: best=%v worst=%v", report.BestProfit, report.WorstLoss)
	}

	avg := 350.0 / 3
	if report.AverageBetAmount != avg {
		t.Fatalf("AverageBetAmount = %v, want %v", report.AverageBetAmount, avg)
	}
}

func TestReport_SportWiseStats(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	ctx := context.Background()
	alice := registerUser(t, f.users, "alice")
	aliceID := f.ownerID(t, "alice")

	f.addSportRecord(t, aliceID, "Cricket", 100, 1.5, "2026-08-01") // est 150
	f.addSportRecord(t, aliceID, "Cricket", 50, 2, "2026-08-02")    // est 100
	f.addSportRecord(t, aliceID, "Football", 200, 3, "2026-08-03")  // est 600

	report, err := f.svc.Report(ctx, alice, models.Query{})
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}

	if len(report.SportWiseStats) != 2 {
		t.Fatalf("SportWiseStats has %d sports, want 2", len(report.SportWiseStats))
	}
	cricket := report.SportWiseStats["Cricket"]
	if cricket.Investment != 150 || cricket.Profit != 250 {
		t.Fatalf("unexpected cricket figures: %+v", cricket)
	}
	if cricket.TotalBets != 2 || cricket.WinningBets != 2 || cricket.WinPercentage != 100 {
		t.Fatalf("unexpected cricket bet split: %+v", cricket)
	}
	football := report.SportWiseStats["Football"]
	if football.Investment != 200 || football.Profit != 600 || football.TotalBets != 1 {
		t.Fatalf("unexpected football figures: %+v", football)
	}
}

func TestReport_MonthlyData(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	ctx := context.Background()
	alice := registerUser(t, f.users, "alice")
	aliceID := f.ownerID(t, "alice")

	f.addRecord(t, aliceID, 200, 2, "2026-08-15")   // est 400
	f.addRecord(t, aliceID, 100, 1.5, "2026-07-01") // est 150
	f.addRecord(t, aliceID, 50, 1, "2026-07-20")    // est 50

	report, err := f.svc.Report(ctx, alice, models.Query{})
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}

	if len(report.MonthlyData) != 2 {
		t.Fatalf("MonthlyData has %d buckets, want 2", len(report.MonthlyData))
	}
	july := report.MonthlyData[0]
	if july.Month != "2026-07" {
		t.Fatalf("buckets must sort by month ascending, got %q first", july.Month)
	}
	if july.Investment != 150 || july.Profit != 200 || july.TotalBets != 2 {
		t.Fatalf("unexpected july bucket: %+v", july)
	}
	august := report.MonthlyData[1]
	if august.Month != "2026-08" || august.Investment != 200 || august.TotalBets != 1 {
		t.Fatalf("unexpected august bucket: %+v", august)
	}
}

func TestRecentActivities_NewestTen(t *testing.T) {
	t.Parallel()

	var recs []*models.Record
	for i := 0; i < 12; i++ {
		recs = append(recs, &models.Record{
			MatchName:       fmt.Sprintf("match-%d", i),
			SportType:       "Cricket",
			WinnerOrDraw:    "a",
			AmountInvested:  100,
			EstimatedProfit: 150,
			EntryDate:       mustDate(t, "2026-08-01"),
			CreatedAt:       time.Date(2026, 8, 1, 0, 0, i, 0, time.UTC),
		})
	}

	activities := recentActivities(recs)
	if len(activities) != 10 {
		t.Fatalf("len = %d, want 10", len(activities))
	}
	if activities[0].MatchName != "match-11" || activities[9].MatchName != "match-2" {
		t.Fatalf("activities must order newest first: first=%q last=%q",
			activities[0].MatchName, activities[9].MatchName)
	}
	if activities[0].Date != "2026-08-01" || activities[0].Result != "a" {
		t.Fatalf("unexpected activity fields: %+v", activities[0])
	}
}

func TestReport_SerializesBreakdowns(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	alice := registerUser(t, f.users, "alice")
	f.addRecord(t, f.ownerID(t, "alice"), 100, 1.5, "2026-08-01")

	report, err := f.svc.Report(context.Background(), alice, models.Query{})
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}
	body, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	for _, key := range []string{"sportWiseStats", "monthlyData", "recentActivities"} {
		if decoded[key] == nil {
			t.Fatalf("report payload missing %q: %s", key, body)
		}
	}
}

func TestReport_DateRangeScoping(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	ctx := context.Background()
	alice := registerUser(t, f.users, "alice")
	aliceID := f.ownerID(t, "alice")

	f.addRecord(t, aliceID, 100, 1.5, "2026-07-15")
	f.addRecord(t, aliceID, 200, 2, "2026-08-15")

	report, err := f.svc.Report(ctx, alice, models.Query{
		From: mustDate(t, "2026-08-01"),
		To:   mustDate(t, "2026-08-31"),
	})
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if report.TotalBets != 1 || report.TotalInvestment != 200 {
		t.Fatalf("date range scoping failed: %+v", report)
	}
}

func TestReport_Empty(t *testing.T) {
	t.Parallel()

	f := newAnalyticsFixture()
	alice := registerUser(t, f.users, "alice")

	report, err := f.svc.Report(context.Background(), alice, models.Query{})
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}
	if report.TotalBets != 0 || report.AverageBetAmount != 0 || report.WinPercentage != 0 {
		t.Fatalf("empty report must be zeroed, got %+v", report)
	}
}
