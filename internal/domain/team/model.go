package team

import (
	"strings"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"
)

// Team is a club playing in an imported league.
type Team struct {
	ID          int64  `json:"id"`
	InterfaceID int64  `json:"interface_id" validate:"gte=0"`
	Name        string `json:"name" validate:"required,max=255"`
	Country     string `json:"country" validate:"required,max=255"`
	Stadium     string `json:"stadium,omitempty" validate:"max=255"`
	HomePageURL string `json:"home_page_url,omitempty" validate:"omitempty,url,max=255"`
	WikiLink    string `json:"wiki_link,omitempty" validate:"omitempty,url,max=255"`
	Coach       string `json:"coach,omitempty" validate:"max=255"`
}

func (t Team) Normalize() Team {
	t.Name = strings.TrimSpace(t.Name)
	t.Country = strings.TrimSpace(t.Country)
	if t.Country == "" {
		t.Country = league.DefaultCountry
	}
	t.Stadium = strings.TrimSpace(t.Stadium)
	t.HomePageURL = strings.TrimSpace(t.HomePageURL)
	t.WikiLink = strings.TrimSpace(t.WikiLink)
	t.Coach = strings.TrimSpace(t.Coach)
	return t
}

func (t Team) Validate() error {
	return validation.Struct(t)
}
