package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

var leagueColumns = []string{
	"id", "interface_id", "name", "country", "historical_data", "fixtures",
	"livescore", "number_of_matches", "latest_match", "is_cup", "created_at", "updated_at",
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id=%d: %w", id, err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) (league.League, error) {
	query, args, err := qb.UpsertModel("leagues", leagueToUpsert(item), upsertByInterfaceID)
	if err != nil {
		return league.League{}, fmt.Errorf("build upsert league query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return league.League{}, fmt.Errorf("upsert league interface_id=%d: %w", item.InterfaceID, err)
	}

	return item, nil
}
