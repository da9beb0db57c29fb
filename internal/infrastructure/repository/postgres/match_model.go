package postgres

import (
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/match"
)

type matchTableModel struct {
	ID          int64     `db:"id"`
	InterfaceID int64     `db:"interface_id"`
	Date        time.Time `db:"date"`
	LeagueID    int64     `db:"league_id"`
	Round       *int      `db:"round"`
	HomeTeamID  int64     `db:"home_team_id"`
	AwayTeamID  int64     `db:"away_team_id"`
	GroupID     *int64    `db:"group_id"`
	Location    *string   `db:"location"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type matchUpsertModel struct {
	InterfaceID int64     `db:"interface_id"`
	Date        time.Time `db:"date"`
	LeagueID    int64     `db:"league_id"`
	Round       *int      `db:"round"`
	HomeTeamID  int64     `db:"home_team_id"`
	AwayTeamID  int64     `db:"away_team_id"`
	GroupID     *int64    `db:"group_id"`
	Location    *string   `db:"location"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		InterfaceID: row.InterfaceID,
		Date:        row.Date,
		LeagueID:    row.LeagueID,
		Round:       row.Round,
		HomeTeamID:  row.HomeTeamID,
		AwayTeamID:  row.AwayTeamID,
		GroupID:     row.GroupID,
		Location:    stringValue(row.Location),
	}
}
