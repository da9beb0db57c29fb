package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/match"
	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByInterfaceID(ctx context.Context, interfaceID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(
		"id", "interface_id", "date", "league_id", "round", "home_team_id",
		"away_team_id", "group_id", "location", "created_at", "updated_at",
	).From("matches").
		Where(qb.Eq("interface_id", interfaceID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by interface id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by interface_id=%d: %w", interfaceID, err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Upsert(ctx context.Context, item match.Match) (match.Match, error) {
	model := matchUpsertModel{
		InterfaceID: item.InterfaceID,
		Date:        item.Date.UTC(),
		LeagueID:    item.LeagueID,
		Round:       item.Round,
		HomeTeamID:  item.HomeTeamID,
		AwayTeamID:  item.AwayTeamID,
		GroupID:     item.GroupID,
		Location:    nullableString(item.Location),
	}
	query, args, err := qb.UpsertModel("matches", model, upsertByInterfaceID)
	if err != nil {
		return match.Match{}, fmt.Errorf("build upsert match query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return match.Match{}, fmt.Errorf("upsert match interface_id=%d: %w", item.InterfaceID, err)
	}

	return item, nil
}
