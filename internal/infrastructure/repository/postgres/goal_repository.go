package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/goal"
	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Exists(ctx context.Context, matchID, teamID int64, minute int) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("goals").
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("team_id", teamID),
			qb.Eq("minute", minute),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build goal exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count goals match_id=%d team_id=%d minute=%d: %w", matchID, teamID, minute, err)
	}
	return count > 0, nil
}

func (r *GoalRepository) Create(ctx context.Context, item goal.Goal) (goal.Goal, error) {
	model := goalInsertModel{
		TeamID:   item.TeamID,
		PlayerID: item.PlayerID,
		MatchID:  item.MatchID,
		Minute:   item.Minute,
		OwnGoal:  item.OwnGoal,
		Penalty:  item.Penalty,
	}
	query, args, err := qb.InsertModel("goals", model, "RETURNING id")
	if err != nil {
		return goal.Goal{}, fmt.Errorf("build insert goal query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return goal.Goal{}, fmt.Errorf("insert goal match_id=%d minute=%d: %w", item.MatchID, item.Minute, err)
	}
	return item, nil
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	query, args, err := qb.Select(
		"id", "team_id", "player_id", "match_id", "minute", "owngoal", "penalty", "created_at",
	).From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goals by match query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goals by match_id=%d: %w", matchID, err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goal.Goal{
			ID:       row.ID,
			TeamID:   row.TeamID,
			PlayerID: row.PlayerID,
			MatchID:  row.MatchID,
			Minute:   row.Minute,
			OwnGoal:  row.OwnGoal,
			Penalty:  row.Penalty,
		})
	}
	return out, nil
}
