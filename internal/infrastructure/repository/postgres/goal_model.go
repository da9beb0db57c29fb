package postgres

import "time"

type goalTableModel struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	PlayerID  *int64    `db:"player_id"`
	MatchID   int64     `db:"match_id"`
	Minute    int       `db:"minute"`
	OwnGoal   bool      `db:"owngoal"`
	Penalty   bool      `db:"penalty"`
	CreatedAt time.Time `db:"created_at"`
}

type goalInsertModel struct {
	TeamID   int64  `db:"team_id"`
	PlayerID *int64 `db:"player_id"`
	MatchID  int64  `db:"match_id"`
	Minute   int    `db:"minute"`
	OwnGoal  bool   `db:"owngoal"`
	Penalty  bool   `db:"penalty"`
}
