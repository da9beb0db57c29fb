package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/player"
	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

var playerColumns = []string{
	"id", "interface_id", "name", "height", "weight", "nationality", "position",
	"team_id", "player_number", "loan_to", "date_of_birth", "date_of_signing",
	"signing", "created_at", "updated_at",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by team_id=%d: %w", teamID, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.UpsertModel("players", playerToUpsert(item), upsertByInterfaceID)
	if err != nil {
		return player.Player{}, fmt.Errorf("build upsert player query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return player.Player{}, fmt.Errorf("upsert player interface_id=%d: %w", item.InterfaceID, err)
	}

	return item, nil
}
