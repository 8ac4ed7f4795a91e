// Package analytics aggregates halftime results and resolved odds lines over
// sets of games fetched from a GameStore.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"AmHughesAbsalom/halftime-analytics/models"
	"AmHughesAbsalom/halftime-analytics/odds"
)

// GameStore is the read side of the games database.
type GameStore interface {
	// ListGames returns games matching filter, each with team names and
	// odds lines sorted by line ascending.
	ListGames(ctx context.Context, filter models.GameFilter) ([]models.GameModel, error)
	// FindTeamByName matches name case-insensitively within a league and
	// returns nil, nil when there is no such team.
	FindTeamByName(ctx context.Context, leagueId uuid.UUID, name string) (*models.TeamModel, error)
	SearchTeams(ctx context.Context, leagueId uuid.UUID, query string) ([]models.TeamModel, error)
	ListLeagues(ctx context.Context) ([]models.LeagueModel, error)
}

type Defaults struct {
	Threshold       int
	Band            odds.Band
	HeadToHeadLimit int
}

var DefaultSettings = Defaults{
	Threshold:       40,
	Band:            odds.DefaultBand,
	HeadToHeadLimit: 5,
}

type StatsQuery struct {
	LeagueId   *uuid.UUID
	Threshold  int
	LastNGames int
	StartDate  *time.Time
	EndDate    *time.Time
}

type OddsQuery struct {
	LeagueId  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Band      odds.Band
}

type MatchupQuery struct {
	HomeTeamName string
	AwayTeamName string
	LeagueId     uuid.UUID
	Band         odds.Band
	LastNGames   int
}

// Engine fetches games and hands them to the pure aggregators. It keeps no
// state between calls.
type Engine struct {
	store    GameStore
	defaults Defaults
	log      zerolog.Logger
	now      func() time.Time
}

func NewEngine(store GameStore, defaults Defaults, log zerolog.Logger) *Engine {
	return &Engine{
		store:    store,
		defaults: defaults,
		log:      log.With().Str("component", "analytics").Logger(),
		now:      time.Now,
	}
}

func (e *Engine) band(b odds.Band) odds.Band {
	if b.Min.IsZero() && b.Max.IsZero() {
		return e.defaults.Band
	}
	return b
}

func (e *Engine) endDate(t *time.Time) *time.Time {
	if t != nil {
		return t
	}
	now := e.now()
	return &now
}

// TeamStats computes home and away tables for the games in the query window.
func (e *Engine) TeamStats(ctx context.Context, q StatsQuery) (models.AnalyticsResult, error) {
	threshold := q.Threshold
	if threshold == 0 {
		threshold = e.defaults.Threshold
	}

	games, err := e.store.ListGames(ctx, models.GameFilter{
		LeagueId:  q.LeagueId,
		StartDate: q.StartDate,
		EndDate:   e.endDate(q.EndDate),
		Order:     models.SortDesc,
	})
	if err != nil {
		return models.AnalyticsResult{}, fmt.Errorf("list games for team stats: %w", err)
	}

	e.log.Debug().Int("games", len(games)).Int("threshold", threshold).Int("lastNGames", q.LastNGames).Msg("computing team stats")
	return ComputeTeamStats(games, threshold, q.LastNGames), nil
}

// OddsAnalysis resolves a line for every game in the window and tallies the
// outcomes.
func (e *Engine) OddsAnalysis(ctx context.Context, q OddsQuery) (models.OddsAnalysisResult, error) {
	band := e.band(q.Band)

	games, err := e.store.ListGames(ctx, models.GameFilter{
		LeagueId:  q.LeagueId,
		StartDate: q.StartDate,
		EndDate:   e.endDate(q.EndDate),
		Order:     models.SortAsc,
	})
	if err != nil {
		return models.OddsAnalysisResult{}, fmt.Errorf("list games for odds analysis: %w", err)
	}

	result := AnalyzeOddsPerformance(games, band)
	e.log.Debug().
		Int("games", len(games)).
		Str("band", band.String()).
		Int("analyzed", result.Distribution.AnalyzedGames).
		Bool("fallbackBelow140", result.Distribution.FallbackBelow140).
		Msg("odds analysis done")
	return result, nil
}

// AnalyzeMatchup compares the home team's home games with the away team's
// away games and lists their latest meetings. The home team is looked up
// first, so when both names are unknown the error names the home team.
func (e *Engine) AnalyzeMatchup(ctx context.Context, q MatchupQuery) (*models.MatchupAnalysisResult, error) {
	band := e.band(q.Band)

	homeTeam, err := e.findTeam(ctx, q.LeagueId, q.HomeTeamName)
	if err != nil {
		return nil, err
	}
	awayTeam, err := e.findTeam(ctx, q.LeagueId, q.AwayTeamName)
	if err != nil {
		return nil, err
	}

	limit := 0
	if q.LastNGames > 0 {
		limit = q.LastNGames
	}

	homeGames, err := e.store.ListGames(ctx, models.GameFilter{
		LeagueId:   &q.LeagueId,
		HomeTeamId: &homeTeam.TeamId,
		Order:      models.SortDesc,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list home games for %s: %w", homeTeam.Name, err)
	}

	awayGames, err := e.store.ListGames(ctx, models.GameFilter{
		LeagueId:   &q.LeagueId,
		AwayTeamId: &awayTeam.TeamId,
		Order:      models.SortDesc,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list away games for %s: %w", awayTeam.Name, err)
	}

	meetings, err := e.store.ListGames(ctx, models.GameFilter{
		LeagueId:   &q.LeagueId,
		HomeTeamId: &homeTeam.TeamId,
		AwayTeamId: &awayTeam.TeamId,
		HeadToHead: true,
		Order:      models.SortDesc,
		Limit:      e.defaults.HeadToHeadLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list head-to-head games: %w", err)
	}

	e.log.Debug().
		Str("home", homeTeam.Name).
		Str("away", awayTeam.Name).
		Int("homeGames", len(homeGames)).
		Int("awayGames", len(awayGames)).
		Int("meetings", len(meetings)).
		Msg("analyzing matchup")

	return &models.MatchupAnalysisResult{
		HomeTeam:          BuildTeamMatchupStats(homeTeam.Name, models.LocationHome, homeGames, band),
		AwayTeam:          BuildTeamMatchupStats(awayTeam.Name, models.LocationAway, awayGames, band),
		HeadToHeadHistory: BuildHeadToHead(meetings, band),
	}, nil
}

func (e *Engine) findTeam(ctx context.Context, leagueId uuid.UUID, name string) (*models.TeamModel, error) {
	team, err := e.store.FindTeamByName(ctx, leagueId, name)
	if err != nil {
		return nil, fmt.Errorf("find team %q: %w", name, err)
	}
	if team == nil {
		return nil, &TeamNotFoundError{Name: name}
	}
	return team, nil
}

// SearchTeams backs team name autocomplete.
func (e *Engine) SearchTeams(ctx context.Context, leagueId uuid.UUID, query string) ([]models.TeamModel, error) {
	teams, err := e.store.SearchTeams(ctx, leagueId, query)
	if err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}
	return teams, nil
}

func (e *Engine) Leagues(ctx context.Context) ([]models.LeagueModel, error) {
	leagues, err := e.store.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}
