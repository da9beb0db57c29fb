package postgres

import (
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
)

type leagueTableModel struct {
	ID              int64      `db:"id"`
	InterfaceID     int64      `db:"interface_id"`
	Name            string     `db:"name"`
	Country         string     `db:"country"`
	HistoricalData  int16      `db:"historical_data"`
	Fixtures        bool       `db:"fixtures"`
	Livescore       bool       `db:"livescore"`
	NumberOfMatches int        `db:"number_of_matches"`
	LatestMatch     *time.Time `db:"latest_match"`
	IsCup           bool       `db:"is_cup"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type leagueUpsertModel struct {
	InterfaceID     int64      `db:"interface_id"`
	Name            string     `db:"name"`
	Country         string     `db:"country"`
	HistoricalData  int16      `db:"historical_data"`
	Fixtures        bool       `db:"fixtures"`
	Livescore       bool       `db:"livescore"`
	NumberOfMatches int        `db:"number_of_matches"`
	LatestMatch     *time.Time `db:"latest_match"`
	IsCup           bool       `db:"is_cup"`
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:              row.ID,
		InterfaceID:     row.InterfaceID,
		Name:            row.Name,
		Country:         row.Country,
		HistoricalData:  league.HistoricalData(row.HistoricalData),
		Fixtures:        row.Fixtures,
		Livescore:       row.Livescore,
		NumberOfMatches: row.NumberOfMatches,
		LatestMatch:     row.LatestMatch,
		IsCup:           row.IsCup,
	}
}

func leagueToUpsert(item league.League) leagueUpsertModel {
	return leagueUpsertModel{
		InterfaceID:     item.InterfaceID,
		Name:            item.Name,
		Country:         item.Country,
		HistoricalData:  int16(item.HistoricalData),
		Fixtures:        item.Fixtures,
		Livescore:       item.Livescore,
		NumberOfMatches: item.NumberOfMatches,
		LatestMatch:     item.LatestMatch,
		IsCup:           item.IsCup,
	}
}
