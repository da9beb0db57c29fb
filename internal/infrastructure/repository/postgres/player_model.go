package postgres

import (
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/player"
)

type playerTableModel struct {
	ID            int64      `db:"id"`
	InterfaceID   int64      `db:"interface_id"`
	Name          string     `db:"name"`
	Height        *float64   `db:"height"`
	Weight        *float64   `db:"weight"`
	Nationality   *string    `db:"nationality"`
	Position      *string    `db:"position"`
	TeamID        *int64     `db:"team_id"`
	PlayerNumber  int        `db:"player_number"`
	LoanTo        *int64     `db:"loan_to"`
	DateOfBirth   *time.Time `db:"date_of_birth"`
	DateOfSigning *time.Time `db:"date_of_signing"`
	Signing       *string    `db:"signing"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

type playerUpsertModel struct {
	InterfaceID   int64      `db:"interface_id"`
	Name          string     `db:"name"`
	Height        *float64   `db:"height"`
	Weight        *float64   `db:"weight"`
	Nationality   *string    `db:"nationality"`
	Position      *string    `db:"position"`
	TeamID        *int64     `db:"team_id"`
	PlayerNumber  int        `db:"player_number"`
	LoanTo        *int64     `db:"loan_to"`
	DateOfBirth   *time.Time `db:"date_of_birth"`
	DateOfSigning *time.Time `db:"date_of_signing"`
	Signing       *string    `db:"signing"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:            row.ID,
		InterfaceID:   row.InterfaceID,
		Name:          row.Name,
		Height:        row.Height,
		Weight:        row.Weight,
		Nationality:   stringValue(row.Nationality),
		Position:      stringValue(row.Position),
		TeamID:        row.TeamID,
		PlayerNumber:  row.PlayerNumber,
		LoanTo:        row.LoanTo,
		DateOfBirth:   row.DateOfBirth,
		DateOfSigning: row.DateOfSigning,
		Signing:       stringValue(row.Signing),
	}
}

func playerToUpsert(item player.Player) playerUpsertModel {
	return playerUpsertModel{
		InterfaceID:   item.InterfaceID,
		Name:          item.Name,
		Height:        item.Height,
		Weight:        item.Weight,
		Nationality:   nullableString(item.Nationality),
		Position:      nullableString(item.Position),
		TeamID:        item.TeamID,
		PlayerNumber:  item.PlayerNumber,
		LoanTo:        item.LoanTo,
		DateOfBirth:   item.DateOfBirth,
		DateOfSigning: item.DateOfSigning,
		Signing:       nullableString(item.Signing),
	}
}
