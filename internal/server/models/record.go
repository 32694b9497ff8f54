package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/timex"
)

// Record is a single investment placed on a match. EstimatedProfit is a
// derived field (AmountInvested * Ratio) recomputed on every write.
type Record struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	SportType       string     `json:"sportType"`
	MatchName       string     `json:"matchName"`
	TeamA           string     `json:"teamA"`
	TeamB           string     `json:"teamB"`
	WinnerOrDraw    string     `json:"winnerOrDraw"`
	AmountInvested  float64    `json:"amountInvested"`
	Ratio           float64    `json:"ratio"`
	EstimatedProfit float64    `json:"estimatedProfit"`
	EntryDate       timex.Date `json:"entryDate"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ActualProfit is the realized gain: estimated payout minus the stake.
func (r *Record) ActualProfit() float64 {
	return r.EstimatedProfit - r.AmountInvested
}

// RecordInput carries the user-supplied investment fields.
type RecordInput struct {
	SportType      string     `json:"sportType"`
	MatchName      string     `json:"matchName"`
	TeamA          string     `json:"teamA"`
	TeamB          string     `json:"teamB"`
	WinnerOrDraw   string     `json:"winnerOrDraw"`
	AmountInvested float64    `json:"amountInvested"`
	Ratio          float64    `json:"ratio"`
	EntryDate      timex.Date `json:"entryDate"`
}

func (in *RecordInput) Validate() error {
	for name, v := range map[string]string{
		"sportType":    in.SportType,
		"matchName":    in.MatchName,
		"teamA":        in.TeamA,
		"teamB":        in.TeamB,
		"winnerOrDraw": in.WinnerOrDraw,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, name)
		}
	}
	if in.AmountInvested <= 0 {
		return fmt.Errorf("%w: amountInvested must be positive", common.ErrValidation)
	}
	if in.Ratio <= 0 {
		return fmt.Errorf("%w: ratio must be positive", common.ErrValidation)
	}
	if in.EntryDate.IsZero() {
		return fmt.Errorf("%w: entryDate is required", common.ErrValidation)
	}
	return nil
}
