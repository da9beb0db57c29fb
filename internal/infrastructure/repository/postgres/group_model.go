package postgres

import (
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/group"
)

type groupTableModel struct {
	ID              int64     `db:"id"`
	InterfaceID     int64     `db:"interface_id"`
	Name            string    `db:"name"`
	Season          string    `db:"season"`
	LeagueID        int64     `db:"league_id"`
	IsKnockoutStage bool      `db:"is_knockout_stage"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type groupUpsertModel struct {
	InterfaceID     int64  `db:"interface_id"`
	Name            string `db:"name"`
	Season          string `db:"season"`
	LeagueID        int64  `db:"league_id"`
	IsKnockoutStage bool   `db:"is_knockout_stage"`
}

func groupFromRow(row groupTableModel) group.Group {
	return group.Group{
		ID:              row.ID,
		InterfaceID:     row.InterfaceID,
		Name:            row.Name,
		Season:          row.Season,
		LeagueID:        row.LeagueID,
		IsKnockoutStage: row.IsKnockoutStage,
	}
}
