package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
)

// SoccerDataProvider is the slice of the XMLSoccer service the import needs.
// Throttling failures wrap ErrDependencyUnavailable.
type SoccerDataProvider interface {
	FetchLeagues(ctx context.Context) ([]ExternalLeague, error)
	FetchTeamsByLeagueAndSeason(ctx context.Context, leagueID int64, season string) ([]ExternalTeam, error)
	FetchGroupsByLeagueAndSeason(ctx context.Context, leagueID int64, season string) ([]ExternalGroup, error)
	FetchFixturesByLeagueAndSeason(ctx context.Context, leagueID int64, season string) ([]ExternalMatch, error)
	FetchPlayersByTeam(ctx context.Context, teamID int64) ([]ExternalPlayer, error)
	FetchLiveScores(ctx context.Context) ([]ExternalMatch, error)
}

type ExternalLeague struct {
	InterfaceID     int64
	Name            string
	Country         string
	HistoricalData  league.HistoricalData
	Fixtures        bool
	Livescore       bool
	NumberOfMatches int
	LatestMatch     *time.Time
	IsCup           bool
}

type ExternalTeam struct {
	InterfaceID int64
	Name        string
	Country     string
	Stadium     string
	HomePageURL string
	WikiLink    string
	Coach       string
}

type ExternalGroup struct {
	InterfaceID int64
	Name        string
	Season      string
}

type ExternalPlayer struct {
	InterfaceID       int64
	Name              string
	Height            *float64
	Weight            *float64
	Nationality       string
	Position          string
	TeamInterfaceID   int64
	LoanToInterfaceID int64
	PlayerNumber      int
	DateOfBirth       *time.Time
	DateOfSigning     *time.Time
	Signing           string
}

type ExternalMatch struct {
	InterfaceID         int64
	Date                time.Time
	Round               int
	HomeTeamInterfaceID int64
	AwayTeamInterfaceID int64
	GroupInterfaceID    int64
	Location            string
	// HasGoalDetails is set when the feed carried a HomeGoalDetails element,
	// even an empty one.
	HasGoalDetails  bool
	HomeGoalDetails string
	AwayGoalDetails string
}
