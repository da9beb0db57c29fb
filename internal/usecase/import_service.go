package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/goal"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/group"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/match"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/player"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/team"
	"github.com/riskibarqy/xmlsoccer-import/internal/platform/logging"
)

const defaultImportWorkers = 1

type ImportRepositories struct {
	Leagues league.Repository
	Teams   team.Repository
	Players player.Repository
	Groups  group.Repository
	Matches match.Repository
	Goals   goal.Repository
}

type ImportOptions struct {
	// Workers bounds concurrent roster fetches.
	Workers int
	Logger  *logging.Logger
	Now     func() time.Time
}

// ImportService copies provider data into the local store. Records that fail
// validation are reported and skipped; provider and storage errors stop the run.
type ImportService struct {
	provider SoccerDataProvider
	repos    ImportRepositories
	workers  int
	logger   *logging.Logger
	now      func() time.Time
}

func NewImportService(provider SoccerDataProvider, repos ImportRepositories, opts ImportOptions) *ImportService {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultImportWorkers
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &ImportService{
		provider: provider,
		repos:    repos,
		workers:  workers,
		logger:   logger,
		now:      now,
	}
}

// DefaultSeason is the provider season string of the season that ends in
// now's year, e.g. "2526" during 2026.
func DefaultSeason(now time.Time) string {
	year := now.Year() % 100
	return fmt.Sprintf("%02d%02d", (year+99)%100, year)
}

func (s *ImportService) ImportLeagues(ctx context.Context) (*ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportLeagues")
	defer span.End()

	items, err := s.provider.FetchLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}

	report := newImportReport()
	for _, item := range items {
		candidate := league.League{
			InterfaceID:     item.InterfaceID,
			Name:            item.Name,
			Country:         item.Country,
			HistoricalData:  item.HistoricalData,
			Fixtures:        item.Fixtures,
			Livescore:       item.Livescore,
			NumberOfMatches: item.NumberOfMatches,
			LatestMatch:     item.LatestMatch,
			IsCup:           item.IsCup,
		}.Normalize()

		if err := candidate.Validate(); err != nil {
			s.logger.WarnContext(ctx, "league rejected", "league", candidate.Name, "error", err)
			report.fail(EntityLeague, candidate.Name, err)
			continue
		}

		stored, err := s.repos.Leagues.Upsert(ctx, candidate)
		if err != nil {
			return report, fmt.Errorf("upsert league interface_id=%d: %w", candidate.InterfaceID, err)
		}
		s.logger.DebugContext(ctx, "league saved", "league_id", stored.ID, "league", stored.Name)
		report.save(EntityLeague)
	}

	s.logger.InfoContext(ctx, "leagues imported", "saved", report.Saved[EntityLeague], "failed", len(report.Failures))
	return report, nil
}

func (s *ImportService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ListLeagues")
	defer span.End()

	leagues, err := s.repos.Leagues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

// ListGoals returns the stored goals of a match, looked up by its provider id,
// ordered by minute.
func (s *ImportService) ListGoals(ctx context.Context, matchInterfaceID int64) ([]goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ListGoals")
	defer span.End()

	stored, exists, err := s.repos.Matches.GetByInterfaceID(ctx, matchInterfaceID)
	if err != nil {
		return nil, fmt.Errorf("get match interface_id=%d: %w", matchInterfaceID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchInterfaceID)
	}

	goals, err := s.repos.Goals.ListByMatch(ctx, stored.ID)
	if err != nil {
		return nil, fmt.Errorf("list goals match=%d: %w", stored.ID, err)
	}
	return goals, nil
}

// CreateLeague imports groups, teams, players, fixtures and goals of one
// stored league for season. An empty season means DefaultSeason.
func (s *ImportService) CreateLeague(ctx context.Context, leagueID int64, season string) (*ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.CreateLeague")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		season = DefaultSeason(s.now())
	}
	if !validSeason(season) {
		return nil, fmt.Errorf("%w: season must be four digits, got %q", ErrInvalidInput, season)
	}

	lg, exists, err := s.repos.Leagues.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	teams, err := s.provider.FetchTeamsByLeagueAndSeason(ctx, lg.InterfaceID, season)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	fixtures, err := s.provider.FetchFixturesByLeagueAndSeason(ctx, lg.InterfaceID, season)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	report := newImportReport()
	if lg.IsCup {
		if err := s.importGroups(ctx, lg, season, report); err != nil {
			return report, err
		}
	}

	importedTeams, err := s.importTeams(ctx, teams, report)
	if err != nil {
		return report, err
	}

	rosters, err := s.fetchRosters(ctx, importedTeams)
	if err != nil {
		return report, err
	}
	if err := s.importPlayers(ctx, rosters, report); err != nil {
		return report, err
	}

	if err := s.importMatches(ctx, lg, fixtures, report); err != nil {
		return report, err
	}

	s.logger.InfoContext(ctx, "league created",
		"league_id", lg.ID,
		"season", season,
		"teams", report.Saved[EntityTeam],
		"players", report.Saved[EntityPlayer],
		"matches", report.Saved[EntityMatch],
		"goals", report.Saved[EntityGoal],
		"failed", len(report.Failures),
	)
	return report, nil
}

// UpdateScores stores new goals of live matches that are already imported.
func (s *ImportService) UpdateScores(ctx context.Context) (*ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.UpdateScores")
	defer span.End()

	live, err := s.provider.FetchLiveScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch live scores: %w", err)
	}

	report := newImportReport()
	for _, item := range live {
		stored, exists, err := s.repos.Matches.GetByInterfaceID(ctx, item.InterfaceID)
		if err != nil {
			return report, fmt.Errorf("get match interface_id=%d: %w", item.InterfaceID, err)
		}
		if !exists {
			report.skip(EntityMatch)
			continue
		}
		if !item.HasGoalDetails {
			continue
		}
		if err := s.importGoals(ctx, stored, item, report); err != nil {
			return report, err
		}
	}

	s.logger.InfoContext(ctx, "scores updated", "live_matches", len(live), "goals", report.Saved[EntityGoal])
	return report, nil
}

func (s *ImportService) importGroups(ctx context.Context, lg league.League, season string, report *ImportReport) error {
	groups, err := s.provider.FetchGroupsByLeagueAndSeason(ctx, lg.InterfaceID, season)
	if err != nil {
		return fmt.Errorf("fetch groups: %w", err)
	}

	for _, item := range groups {
		groupSeason := item.Season
		if strings.TrimSpace(groupSeason) == "" {
			groupSeason = season
		}
		candidate := group.Group{
			InterfaceID: item.InterfaceID,
			Name:        item.Name,
			Season:      groupSeason,
			LeagueID:    lg.ID,
		}.Normalize()

		if err := candidate.Validate(); err != nil {
			report.fail(EntityGroup, candidate.Name, err)
			continue
		}
		if _, err := s.repos.Groups.Upsert(ctx, candidate); err != nil {
			return fmt.Errorf("upsert group interface_id=%d: %w", candidate.InterfaceID, err)
		}
		report.save(EntityGroup)
	}
	return nil
}

func (s *ImportService) importTeams(ctx context.Context, teams []ExternalTeam, report *ImportReport) ([]team.Team, error) {
	out := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		candidate := team.Team{
			InterfaceID: item.InterfaceID,
			Name:        item.Name,
			Country:     item.Country,
			Stadium:     item.Stadium,
			HomePageURL: item.HomePageURL,
			WikiLink:    item.WikiLink,
			Coach:       item.Coach,
		}.Normalize()

		if err := candidate.Validate(); err != nil {
			report.fail(EntityTeam, candidate.Name, err)
			continue
		}
		stored, err := s.repos.Teams.Upsert(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("upsert team interface_id=%d: %w", candidate.InterfaceID, err)
		}
		report.save(EntityTeam)
		out = append(out, stored)
	}
	return out, nil
}

type teamRoster struct {
	team    team.Team
	players []ExternalPlayer
}

// fetchRosters loads the players of every team through a bounded pool. The
// first provider error cancels the remaining fetches.
func (s *ImportService) fetchRosters(ctx context.Context, teams []team.Team) ([]teamRoster, error) {
	if len(teams) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create roster pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
		rosters  = make([]teamRoster, len(teams))
	)
	for i, item := range teams {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}

			players, err := s.provider.FetchPlayersByTeam(ctx, item.InterfaceID)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("fetch players team=%s: %w", item.Name, err)
					cancel()
				}
				mu.Unlock()
				return
			}
			rosters[i] = teamRoster{team: item, players: players}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit roster fetch: %w", err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch rosters: %w", err)
	}
	return rosters, nil
}

func (s *ImportService) importPlayers(ctx context.Context, rosters []teamRoster, report *ImportReport) error {
	interfaceIDs := make([]int64, 0)
	for _, roster := range rosters {
		for _, item := range roster.players {
			if item.TeamInterfaceID > 0 {
				interfaceIDs = append(interfaceIDs, item.TeamInterfaceID)
			}
			if item.LoanToInterfaceID > 0 {
				interfaceIDs = append(interfaceIDs, item.LoanToInterfaceID)
			}
		}
	}
	knownTeams, err := s.repos.Teams.ListByInterfaceIDs(ctx, uniqueIDs(interfaceIDs))
	if err != nil {
		return fmt.Errorf("list teams by interface id: %w", err)
	}

	for _, roster := range rosters {
		for _, item := range roster.players {
			teamID := roster.team.ID
			if stored, ok := knownTeams[item.TeamInterfaceID]; ok {
				teamID = stored.ID
			}
			candidate := player.Player{
				InterfaceID:   item.InterfaceID,
				Name:          item.Name,
				Height:        item.Height,
				Weight:        item.Weight,
				Nationality:   item.Nationality,
				Position:      item.Position,
				TeamID:        &teamID,
				PlayerNumber:  item.PlayerNumber,
				DateOfBirth:   item.DateOfBirth,
				DateOfSigning: item.DateOfSigning,
				Signing:       item.Signing,
			}.Normalize()
			if loan, ok := knownTeams[item.LoanToInterfaceID]; ok && item.LoanToInterfaceID > 0 {
				candidate.LoanTo = &loan.ID
			}

			if err := candidate.Validate(); err != nil {
				report.fail(EntityPlayer, candidate.Name, err)
				continue
			}
			if _, err := s.repos.Players.Upsert(ctx, candidate); err != nil {
				return fmt.Errorf("upsert player interface_id=%d: %w", candidate.InterfaceID, err)
			}
			report.save(EntityPlayer)
		}
	}
	return nil
}

func (s *ImportService) importMatches(ctx context.Context, lg league.League, fixtures []ExternalMatch, report *ImportReport) error {
	interfaceIDs := make([]int64, 0, len(fixtures)*2)
	for _, item := range fixtures {
		interfaceIDs = append(interfaceIDs, item.HomeTeamInterfaceID, item.AwayTeamInterfaceID)
	}
	teams, err := s.repos.Teams.ListByInterfaceIDs(ctx, uniqueIDs(interfaceIDs))
	if err != nil {
		return fmt.Errorf("list teams by interface id: %w", err)
	}
	groups, err := s.repos.Groups.ListByLeague(ctx, lg.ID)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	for _, item := range fixtures {
		label := matchLabel(item)
		home, okHome := teams[item.HomeTeamInterfaceID]
		away, okAway := teams[item.AwayTeamInterfaceID]
		if !okHome || !okAway {
			report.fail(EntityMatch, label, fmt.Errorf("%w: team home=%d away=%d", ErrNotFound, item.HomeTeamInterfaceID, item.AwayTeamInterfaceID))
			continue
		}

		candidate := match.Match{
			InterfaceID: item.InterfaceID,
			Date:        item.Date,
			LeagueID:    lg.ID,
			HomeTeamID:  home.ID,
			AwayTeamID:  away.ID,
			Location:    item.Location,
		}.Normalize()
		if item.Round > 0 {
			round := item.Round
			candidate.Round = &round
		}
		if stored, ok := groups[item.GroupInterfaceID]; ok && item.GroupInterfaceID > 0 {
			candidate.GroupID = &stored.ID
		}

		if err := candidate.Validate(); err != nil {
			report.fail(EntityMatch, label, err)
			continue
		}
		stored, err := s.repos.Matches.Upsert(ctx, candidate)
		if err != nil {
			return fmt.Errorf("upsert match interface_id=%d: %w", candidate.InterfaceID, err)
		}
		report.save(EntityMatch)

		if item.HasGoalDetails {
			if err := s.importGoals(ctx, stored, item, report); err != nil {
				return err
			}
		}
	}
	return nil
}

// importGoals parses both goal logs of item against the stored rosters and
// stores goals not seen before for the same team and minute.
func (s *ImportService) importGoals(ctx context.Context, stored match.Match, item ExternalMatch, report *ImportReport) error {
	homePlayers, err := s.repos.Players.ListByTeam(ctx, stored.HomeTeamID)
	if err != nil {
		return fmt.Errorf("list home players: %w", err)
	}
	awayPlayers, err := s.repos.Players.ListByTeam(ctx, stored.AwayTeamID)
	if err != nil {
		return fmt.Errorf("list away players: %w", err)
	}
	rosters := goal.Rosters{Home: goal.NewRoster(homePlayers), Away: goal.NewRoster(awayPlayers)}
	teamBySide := map[goal.Side]int64{
		goal.SideHome: stored.HomeTeamID,
		goal.SideAway: stored.AwayTeamID,
	}

	logs := []struct {
		side goal.Side
		text string
	}{
		{side: goal.SideHome, text: item.HomeGoalDetails},
		{side: goal.SideAway, text: item.AwayGoalDetails},
	}
	for _, entry := range logs {
		for ev := range goal.ParseGoalLog(entry.text, entry.side, rosters) {
			if ev.Blank() {
				continue
			}

			candidate := goal.Goal{
				TeamID:   teamBySide[ev.Side],
				PlayerID: ev.PlayerID,
				MatchID:  stored.ID,
				Minute:   ev.Minute,
				OwnGoal:  ev.OwnGoal,
				Penalty:  ev.Penalty,
			}
			label := strings.TrimSpace(ev.Raw)
			if err := candidate.Validate(); err != nil {
				report.fail(EntityGoal, label, err)
				continue
			}

			exists, err := s.repos.Goals.Exists(ctx, candidate.MatchID, candidate.TeamID, candidate.Minute)
			if err != nil {
				return fmt.Errorf("check goal match=%d minute=%d: %w", candidate.MatchID, candidate.Minute, err)
			}
			if exists {
				s.logger.DebugContext(ctx, "goal already stored", "match_id", candidate.MatchID, "minute", candidate.Minute)
				report.skip(EntityGoal)
				continue
			}

			if _, err := s.repos.Goals.Create(ctx, candidate); err != nil {
				return fmt.Errorf("create goal match=%d minute=%d: %w", candidate.MatchID, candidate.Minute, err)
			}
			report.save(EntityGoal)
		}
	}
	return nil
}

func validSeason(season string) bool {
	if len(season) != 4 {
		return false
	}
	_, err := strconv.Atoi(season)
	return err == nil && season[0] != '-' && season[0] != '+'
}

func matchLabel(item ExternalMatch) string {
	if item.Date.IsZero() {
		return fmt.Sprintf("%d", item.InterfaceID)
	}
	return item.Location + "-" + item.Date.Format(time.RFC3339)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id <= 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
