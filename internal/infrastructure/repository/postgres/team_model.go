package postgres

import (
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/team"
)

type teamTableModel struct {
	ID          int64     `db:"id"`
	InterfaceID int64     `db:"interface_id"`
	Name        string    `db:"name"`
	Country     string    `db:"country"`
	Stadium     *string   `db:"stadium"`
	HomePageURL *string   `db:"home_page_url"`
	WikiLink    *string   `db:"wiki_link"`
	Coach       *string   `db:"coach"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type teamUpsertModel struct {
	InterfaceID int64   `db:"interface_id"`
	Name        string  `db:"name"`
	Country     string  `db:"country"`
	Stadium     *string `db:"stadium"`
	HomePageURL *string `db:"home_page_url"`
	WikiLink    *string `db:"wiki_link"`
	Coach       *string `db:"coach"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		InterfaceID: row.InterfaceID,
		Name:        row.Name,
		Country:     row.Country,
		Stadium:     stringValue(row.Stadium),
		HomePageURL: stringValue(row.HomePageURL),
		WikiLink:    stringValue(row.WikiLink),
		Coach:       stringValue(row.Coach),
	}
}

func teamToUpsert(item team.Team) teamUpsertModel {
	return teamUpsertModel{
		InterfaceID: item.InterfaceID,
		Name:        item.Name,
		Country:     item.Country,
		Stadium:     nullableString(item.Stadium),
		HomePageURL: nullableString(item.HomePageURL),
		WikiLink:    nullableString(item.WikiLink),
		Coach:       nullableString(item.Coach),
	}
}
