package league

import (
	"strings"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"
)

// DefaultCountry is stored for leagues the provider does not place in a country.
const DefaultCountry = "International"

// HistoricalData tells how much past data the provider holds for a league.
type HistoricalData int

const (
	HistoricalNo      HistoricalData = 0
	HistoricalYes     HistoricalData = 1
	HistoricalPartial HistoricalData = 2
)

// ParseHistoricalData maps the provider's Yes/No/Partial flag. Unknown values are No.
func ParseHistoricalData(raw string) HistoricalData {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return HistoricalYes
	case "partial":
		return HistoricalPartial
	default:
		return HistoricalNo
	}
}

func (h HistoricalData) String() string {
	switch h {
	case HistoricalYes:
		return "Yes"
	case HistoricalPartial:
		return "Partial"
	case HistoricalNo:
		return "No"
	default:
		return "Unknown"
	}
}

// League is a competition imported from the provider.
type League struct {
	ID              int64          `json:"id"`
	InterfaceID     int64          `json:"interface_id" validate:"gte=0"`
	Name            string         `json:"name" validate:"required,max=255"`
	Country         string         `json:"country" validate:"required,max=255"`
	HistoricalData  HistoricalData `json:"historical_data" validate:"gte=0,lte=2"`
	Fixtures        bool           `json:"fixtures"`
	Livescore       bool           `json:"livescore"`
	NumberOfMatches int            `json:"number_of_matches" validate:"gte=0"`
	LatestMatch     *time.Time     `json:"latest_match,omitempty"`
	IsCup           bool           `json:"is_cup"`
}

// Normalize trims text fields and applies the country default.
func (l League) Normalize() League {
	l.Name = strings.TrimSpace(l.Name)
	l.Country = strings.TrimSpace(l.Country)
	if l.Country == "" {
		l.Country = DefaultCountry
	}
	return l
}

func (l League) Validate() error {
	return validation.Struct(l)
}
