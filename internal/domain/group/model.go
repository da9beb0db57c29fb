package group

import (
	"strings"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"
)

// Group is a cup stage group, e.g. "Group A" of a season.
type Group struct {
	ID          int64  `json:"id"`
	InterfaceID int64  `json:"interface_id" validate:"gte=0"`
	Name        string `json:"name" validate:"required,max=255"`
	// Season uses the four digit provider form, e.g. "2526".
	Season          string `json:"season" validate:"required,len=4"`
	LeagueID        int64  `json:"league_id" validate:"required"`
	IsKnockoutStage bool   `json:"is_knockout_stage"`
}

func (g Group) Normalize() Group {
	g.Name = strings.TrimSpace(g.Name)
	g.Season = strings.TrimSpace(g.Season)
	return g
}

func (g Group) Validate() error {
	return validation.Struct(g)
}
