package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/group"
	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) ListByLeague(ctx context.Context, leagueID int64) (map[int64]group.Group, error) {
	query, args, err := qb.Select(
		"id", "interface_id", "name", "season", "league_id", "is_knockout_stage", "created_at", "updated_at",
	).From("league_groups").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list groups by league query: %w", err)
	}

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list groups by league_id=%d: %w", leagueID, err)
	}

	out := make(map[int64]group.Group, len(rows))
	for _, row := range rows {
		out[row.InterfaceID] = groupFromRow(row)
	}
	return out, nil
}

func (r *GroupRepository) Upsert(ctx context.Context, item group.Group) (group.Group, error) {
	model := groupUpsertModel{
		InterfaceID:     item.InterfaceID,
		Name:            item.Name,
		Season:          item.Season,
		LeagueID:        item.LeagueID,
		IsKnockoutStage: item.IsKnockoutStage,
	}
	query, args, err := qb.UpsertModel("league_groups", model, upsertByInterfaceID)
	if err != nil {
		return group.Group{}, fmt.Errorf("build upsert group query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return group.Group{}, fmt.Errorf("upsert group interface_id=%d: %w", item.InterfaceID, err)
	}

	return item, nil
}
