package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/team"
	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

var teamColumns = []string{
	"id", "interface_id", "name", "country", "stadium", "home_page_url",
	"wiki_link", "coach", "created_at", "updated_at",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByInterfaceIDs(ctx context.Context, interfaceIDs []int64) (map[int64]team.Team, error) {
	out := make(map[int64]team.Team, len(interfaceIDs))
	if len(interfaceIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.In("interface_id", int64SliceToAny(interfaceIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams by interface ids query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams by interface ids: %w", err)
	}

	for _, row := range rows {
		out[row.InterfaceID] = teamFromRow(row)
	}
	return out, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.UpsertModel("teams", teamToUpsert(item), upsertByInterfaceID)
	if err != nil {
		return team.Team{}, fmt.Errorf("build upsert team query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return team.Team{}, fmt.Errorf("upsert team interface_id=%d: %w", item.InterfaceID, err)
	}

	return item, nil
}
