package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/timex"
)

// Schedule is an upcoming or past match tracked by one user. UserID is set
// from the creating identity and never reassigned.
type Schedule struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	SportType string     `json:"sportType"`
	MatchName string     `json:"matchName"`
	TeamA     string     `json:"teamA"`
	TeamB     string     `json:"teamB"`
	MatchDate timex.Date `json:"matchDate"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ScheduleInput carries the user-supplied schedule fields.
type ScheduleInput struct {
	SportType string     `json:"sportType"`
	MatchName string     `json:"matchName"`
	TeamA     string     `json:"teamA"`
	TeamB     string     `json:"teamB"`
	MatchDate timex.Date `json:"matchDate"`
}

func (in *ScheduleInput) Validate() error {
	for name, v := range map[string]string{
		"sportType": in.SportType,
		"matchName": in.MatchName,
		"teamA":     in.TeamA,
		"teamB":     in.TeamB,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, name)
		}
	}
	if in.MatchDate.IsZero() {
		return fmt.Errorf("%w: matchDate is required", common.ErrValidation)
	}
	return nil
}
