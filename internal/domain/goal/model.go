package goal

import "github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"

// Goal is one scored goal. TeamID is the team credited with it, which for an
// own goal differs from the team of PlayerID.
type Goal struct {
	ID       int64  `json:"id"`
	TeamID   int64  `json:"team_id" validate:"required"`
	PlayerID *int64 `json:"player_id,omitempty"`
	MatchID  int64  `json:"match_id" validate:"required"`
	Minute   int    `json:"minute" validate:"gte=1,lte=255"`
	OwnGoal  bool   `json:"owngoal"`
	Penalty  bool   `json:"penalty"`
}

func (g Goal) Validate() error {
	return validation.Struct(g)
}
