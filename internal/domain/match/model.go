package match

import (
	"strings"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"
)

// Match is a fixture between two stored teams.
type Match struct {
	ID          int64     `json:"id"`
	InterfaceID int64     `json:"interface_id" validate:"gte=0"`
	Date        time.Time `json:"date" validate:"required"`
	LeagueID    int64     `json:"league_id" validate:"required"`
	Round       *int      `json:"round,omitempty" validate:"omitempty,gte=0,lte=255"`
	HomeTeamID  int64     `json:"home_team_id" validate:"required"`
	AwayTeamID  int64     `json:"away_team_id" validate:"required"`
	GroupID     *int64    `json:"group_id,omitempty"`
	Location    string    `json:"location,omitempty" validate:"max=255"`
}

func (m Match) Normalize() Match {
	m.Location = strings.TrimSpace(m.Location)
	return m
}

func (m Match) Validate() error {
	var extra validation.Errors
	if m.HomeTeamID != 0 && m.HomeTeamID == m.AwayTeamID {
		extra = validation.Errors{}
		extra.Add("away_team_id", "must differ from home_team_id")
	}
	return validation.Merge(validation.Struct(m), extra)
}
