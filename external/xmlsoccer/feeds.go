package xmlsoccer

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
	"github.com/riskibarqy/xmlsoccer-import/internal/usecase"
)

type leagueFeed struct {
	Leagues []leagueRow `xml:"League"`
}

type leagueRow struct {
	ID              string `xml:"Id"`
	Name            string `xml:"Name"`
	Country         string `xml:"Country"`
	HistoricalData  string `xml:"Historical_Data"`
	Fixtures        string `xml:"Fixtures"`
	Livescore       string `xml:"Livescore"`
	NumberOfMatches string `xml:"NumberOfMatches"`
	LatestMatch     string `xml:"LatestMatch"`
	IsCup           string `xml:"IsCup"`
}

type teamFeed struct {
	Teams []teamRow `xml:"Team"`
}

type teamRow struct {
	ID          string `xml:"Team_Id"`
	Name        string `xml:"Name"`
	Country     string `xml:"Country"`
	Stadium     string `xml:"Stadium"`
	HomePageURL string `xml:"HomePageURL"`
	WikiLink    string `xml:"WIKILink"`
	Coach       string `xml:"Coach"`
	Manager     string `xml:"Manager"`
}

type groupFeed struct {
	Groups []groupRow `xml:"Group"`
}

type groupRow struct {
	ID     string `xml:"Id"`
	Name   string `xml:"Name"`
	Season string `xml:"Season"`
}

type playerFeed struct {
	Players []playerRow `xml:"Player"`
}

type playerRow struct {
	ID            string `xml:"Id"`
	Name          string `xml:"Name"`
	Height        string `xml:"Height"`
	Weight        string `xml:"Weight"`
	Nationality   string `xml:"Nationality"`
	Position      string `xml:"Position"`
	TeamID        string `xml:"Team_Id"`
	LoanTo        string `xml:"LoanTo"`
	PlayerNumber  string `xml:"PlayerNumber"`
	DateOfBirth   string `xml:"DateOfBirth"`
	DateOfSigning string `xml:"DateOfSigning"`
	Signing       string `xml:"Signing"`
}

type matchFeed struct {
	Matches []matchRow `xml:"Match"`
}

type matchRow struct {
	ID              string  `xml:"Id"`
	Date            string  `xml:"Date"`
	Round           string  `xml:"Round"`
	HomeTeamID      string  `xml:"HomeTeam_Id"`
	AwayTeamID      string  `xml:"AwayTeam_Id"`
	GroupID         string  `xml:"Group_Id"`
	Location        string  `xml:"Location"`
	HomeGoalDetails *string `xml:"HomeGoalDetails"`
	AwayGoalDetails *string `xml:"AwayGoalDetails"`
}

func (c *Client) FetchLeagues(ctx context.Context) ([]usecase.ExternalLeague, error) {
	var feed leagueFeed
	if err := c.fetch(ctx, &feed, "GetAllLeagues"); err != nil {
		return nil, crerr.Wrap(err, "fetch leagues")
	}

	out := make([]usecase.ExternalLeague, 0, len(feed.Leagues))
	for _, row := range feed.Leagues {
		out = append(out, usecase.ExternalLeague{
			InterfaceID:     leadingInt(row.ID),
			Name:            strings.TrimSpace(row.Name),
			Country:         strings.TrimSpace(row.Country),
			HistoricalData:  league.ParseHistoricalData(row.HistoricalData),
			Fixtures:        truthyString(row.Fixtures),
			Livescore:       truthyString(row.Livescore),
			NumberOfMatches: int(leadingInt(row.NumberOfMatches)),
			LatestMatch:     parseProviderDateTime(row.LatestMatch),
			IsCup:           truthyString(row.IsCup),
		})
	}
	return out, nil
}

func (c *Client) FetchTeamsByLeagueAndSeason(ctx context.Context, leagueID int64, season string) ([]usecase.ExternalTeam, error) {
	var feed teamFeed
	if err := c.fetch(ctx, &feed, "GetAllTeamsByLeagueAndSeason", leagueID, season); err != nil {
		return nil, crerr.Wrapf(err, "fetch teams league=%d season=%s", leagueID, season)
	}

	out := make([]usecase.ExternalTeam, 0, len(feed.Teams))
	for _, row := range feed.Teams {
		out = append(out, usecase.ExternalTeam{
			InterfaceID: leadingInt(row.ID),
			Name:        strings.TrimSpace(row.Name),
			Country:     strings.TrimSpace(row.Country),
			Stadium:     strings.TrimSpace(row.Stadium),
			HomePageURL: strings.TrimSpace(row.HomePageURL),
			WikiLink:    strings.TrimSpace(row.WikiLink),
			Coach:       firstNonEmpty(row.Coach, row.Manager),
		})
	}
	return out, nil
}

func (c *Client) FetchGroupsByLeagueAndSeason(ctx context.Context, leagueID int64, season string) ([]usecase.ExternalGroup, error) {
	var feed groupFeed
	if err := c.fetch(ctx, &feed, "GetAllGroupsByLeagueAndSeason", leagueID, season); err != nil {
		return nil, crerr.Wrapf(err, "fetch groups league=%d season=%s", leagueID, season)
	}

	out := make([]usecase.ExternalGroup, 0, len(feed.Groups))
	for _, row := range feed.Groups {
		out = append(out, usecase.ExternalGroup{
			InterfaceID: leadingInt(row.ID),
			Name:        strings.TrimSpace(row.Name),
			Season:      strings.TrimSpace(row.Season),
		})
	}
	return out, nil
}

func (c *Client) FetchFixturesByLeagueAndSeason(ctx context.Context, leagueID int64, season string) ([]usecase.ExternalMatch, error) {
	var feed matchFeed
	if err := c.fetch(ctx, &feed, "GetFixturesByLeagueAndSeason", leagueID, season); err != nil {
		return nil, crerr.Wrapf(err, "fetch fixtures league=%d season=%s", leagueID, season)
	}
	return mapMatches(feed.Matches), nil
}

func (c *Client) FetchPlayersByTeam(ctx context.Context, teamID int64) ([]usecase.ExternalPlayer, error) {
	var feed playerFeed
	if err := c.fetch(ctx, &feed, "GetPlayersByTeam", teamID); err != nil {
		return nil, crerr.Wrapf(err, "fetch players team=%d", teamID)
	}

	out := make([]usecase.ExternalPlayer, 0, len(feed.Players))
	for _, row := range feed.Players {
		out = append(out, usecase.ExternalPlayer{
			InterfaceID:       leadingInt(row.ID),
			Name:              strings.TrimSpace(row.Name),
			Height:            optionalFloat(row.Height),
			Weight:            optionalFloat(row.Weight),
			Nationality:       strings.TrimSpace(row.Nationality),
			Position:          strings.TrimSpace(row.Position),
			TeamInterfaceID:   leadingInt(row.TeamID),
			LoanToInterfaceID: leadingInt(row.LoanTo),
			PlayerNumber:      int(leadingInt(row.PlayerNumber)),
			DateOfBirth:       parseProviderDateTime(row.DateOfBirth),
			DateOfSigning:     parseProviderDateTime(row.DateOfSigning),
			Signing:           strings.TrimSpace(html.UnescapeString(row.Signing)),
		})
	}
	return out, nil
}

func (c *Client) FetchLiveScores(ctx context.Context) ([]usecase.ExternalMatch, error) {
	var feed matchFeed
	if err := c.fetch(ctx, &feed, "GetLiveScore"); err != nil {
		return nil, crerr.Wrap(err, "fetch live scores")
	}
	return mapMatches(feed.Matches), nil
}

func (c *Client) fetch(ctx context.Context, target any, method string, args ...any) error {
	resp, err := c.Invoke(ctx, method, args...)
	if err != nil {
		return providerError(err)
	}
	return resp.Decode(target)
}

// providerError marks failures the caller can only wait out.
func providerError(err error) error {
	switch KindOf(err) {
	case KindTransport, KindHTTPStatus, KindRateLimited, KindSpamListed:
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	default:
		return err
	}
}

func mapMatches(rows []matchRow) []usecase.ExternalMatch {
	out := make([]usecase.ExternalMatch, 0, len(rows))
	for _, row := range rows {
		item := usecase.ExternalMatch{
			InterfaceID:         leadingInt(row.ID),
			Round:               int(leadingInt(row.Round)),
			HomeTeamInterfaceID: leadingInt(row.HomeTeamID),
			AwayTeamInterfaceID: leadingInt(row.AwayTeamID),
			GroupInterfaceID:    leadingInt(row.GroupID),
			Location:            strings.TrimSpace(row.Location),
			HasGoalDetails:      row.HomeGoalDetails != nil,
		}
		if parsed := parseProviderDateTime(row.Date); parsed != nil {
			item.Date = *parsed
		}
		if row.HomeGoalDetails != nil {
			item.HomeGoalDetails = strings.TrimSpace(*row.HomeGoalDetails)
		}
		if row.AwayGoalDetails != nil {
			item.AwayGoalDetails = strings.TrimSpace(*row.AwayGoalDetails)
		}
		out = append(out, item)
	}
	return out
}

func parseProviderDateTime(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"January 2 2006",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			v := parsed.UTC()
			return &v
		}
	}
	return nil
}

func optionalFloat(raw string) *float64 {
	if leadingFloatRegex.FindString(strings.TrimSpace(raw)) == "" {
		return nil
	}
	v := leadingFloat(raw)
	return &v
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
