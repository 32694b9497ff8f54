package records

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

const recordColumns = "id, user_id, sport_type, match_name, team_a, team_b, winner_or_draw, " +
	"amount_invested, ratio, estimated_profit, entry_date, created_at"

func (r *PostgresRepository) Create(ctx context.Context, record *models.Record) (*models.Record, error) {
	query :=
		`INSERT INTO records (user_id, sport_type, match_name, team_a, team_b, winner_or_draw,
		                      amount_invested, ratio, estimated_profit, entry_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		record.UserID, record.SportType, record.MatchName, record.TeamA, record.TeamB,
		record.WinnerOrDraw, record.AmountInvested, record.Ratio, record.EstimatedProfit,
		record.EntryDate.Time,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	record, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return record, nil
}

func (r *PostgresRepository) List(ctx context.Context, q models.Query) ([]*models.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records`

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
		conds = append(conds, fmt.Sprintf("entry_date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	} else if q.HasSportFilter() {
		args = append(args, q.SportType)
		conds = append(conds, fmt.Sprintf("sport_type = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY entry_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Record
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, record *models.Record) error {
	query :=
		`UPDATE records
		 SET sport_type = $1, match_name = $2, team_a = $3, team_b = $4, winner_or_draw = $5,
		     amount_invested = $6, ratio = $7, estimated_profit = $8, entry_date = $9
		 WHERE id = $10
		 `

	res, err := r.db.ExecContext(ctx, query,
		record.SportType, record.MatchName, record.TeamA, record.TeamB, record.WinnerOrDraw,
		record.AmountInvested, record.Ratio, record.EstimatedProfit, record.EntryDate.Time,
		record.ID,
	)
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

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, id)
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

func scanRecord(scan func(dest ...any) error) (*models.Record, error) {
	var (
		rec       models.Record
		entryDate time.Time
	)
	if err := scan(&rec.ID, &rec.UserID, &rec.SportType, &rec.MatchName,
		&rec.TeamA, &rec.TeamB, &rec.WinnerOrDraw, &rec.AmountInvested,
		&rec.Ratio, &rec.EstimatedProfit, &entryDate, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.EntryDate = timex.NewDate(entryDate)
	return &rec, nil
}
