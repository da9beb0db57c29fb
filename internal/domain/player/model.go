package player

import (
	"strings"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"
)

// Player is a squad member of a team.
type Player struct {
	ID            int64      `json:"id"`
	InterfaceID   int64      `json:"interface_id" validate:"gte=0"`
	Name          string     `json:"name" validate:"required,max=255"`
	Height        *float64   `json:"height,omitempty" validate:"omitempty,gte=0"`
	Weight        *float64   `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Nationality   string     `json:"nationality,omitempty" validate:"max=255"`
	Position      string     `json:"position,omitempty" validate:"max=50"`
	TeamID        *int64     `json:"team_id,omitempty"`
	PlayerNumber  int        `json:"player_number" validate:"gte=0,lte=255"`
	LoanTo        *int64     `json:"loan_to,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	DateOfSigning *time.Time `json:"date_of_signing,omitempty"`
	// Signing is the transfer fee text including currency.
	Signing string `json:"signing,omitempty" validate:"max=50"`
}

func (p Player) Normalize() Player {
	p.Name = strings.TrimSpace(p.Name)
	p.Nationality = strings.TrimSpace(p.Nationality)
	p.Position = strings.TrimSpace(p.Position)
	p.Signing = strings.TrimSpace(p.Signing)
	return p
}

func (p Player) Validate() error {
	return validation.Struct(p)
}
