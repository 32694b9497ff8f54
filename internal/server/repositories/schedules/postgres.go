package schedules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/dbx"
	"github.com/sportvest/sportvest/internal/server/models"
	"github.com/sportvest/sportvest/internal/timex"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const scheduleColumns = "id, user_id, sport_type, match_name, team_a, team_b, match_date, created_at"

func (r *PostgresRepository) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	query :=
		`INSERT INTO schedules (user_id, sport_type, match_name, team_a, team_b, match_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		schedule.UserID, schedule.SportType, schedule.MatchName,
		schedule.TeamA, schedule.TeamB, schedule.MatchDate.Time,
	).Scan(&schedule.ID, &schedule.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return schedule, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	schedule, err := scanSchedule(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return schedule, nil
}

func (r *PostgresRepository) List(ctx context.Context, q models.Query) ([]*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules`

	var (
		conds []string
		args  []any
	)
	if q.OwnerID != "" {
		args = append(args, q.OwnerID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if q.HasDateRange() {
		args = append(args, q.From.Time, q.To.Time)
		conds = append(conds, fmt.Sprintf("match_date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	} else if q.HasSportFilter() {
		args = append(args, q.SportType)
		conds = append(conds, fmt.Sprintf("sport_type = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY match_date DESC"

	return r.list(ctx, query, args...)
}

func (r *PostgresRepository) ListUpcoming(ctx context.Context, ownerID string, after timex.Date) ([]*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules
		 WHERE user_id = $1 AND match_date > $2
		 ORDER BY match_date ASC`

	return r.list(ctx, query, ownerID, after.Time)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanSchedule(scan func(dest ...any) error) (*models.Schedule, error) {
	var (
		s         models.Schedule
		matchDate time.Time
	)
	if err := scan(&s.ID, &s.UserID, &s.SportType, &s.MatchName,
		&s.TeamA, &s.TeamB, &matchDate, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.MatchDate = timex.NewDate(matchDate)
	return &s, nil
}
