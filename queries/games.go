package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"AmHughesAbsalom/halftime-analytics/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

type GamesDBConnection struct {
	*sqlx.DB
	Log zerolog.Logger
}

type Games interface {
	ListGames(ctx context.Context, filter models.GameFilter) ([]models.GameModel, error)
	FindTeamByName(ctx context.Context, leagueId uuid.UUID, name string) (*models.TeamModel, error)
	SearchTeams(ctx context.Context, leagueId uuid.UUID, query string) ([]models.TeamModel, error)
	ListLeagues(ctx context.Context) ([]models.LeagueModel, error)
}

var _ Games = (*GamesDBConnection)(nil)

const selectGames = `
	SELECT g.game_id, g.date, g.league_id,
	g.home_team_id, h.name AS home_team_name,
	g.away_team_id, a.name AS away_team_name,
	g.home_first, g.home_second, g.home_third, g.home_fourth, g.home_total_points,
	g.away_first, g.away_second, g.away_third, g.away_fourth, g.away_total_points
	FROM games g
	JOIN teams h ON h.team_id = g.home_team_id
	JOIN teams a ON a.team_id = g.away_team_id
	WHERE 1=1`

// buildGamesQuery turns a filter into SQL and positional args. Order falls
// back to DESC for anything but ASC.
func buildGamesQuery(filter models.GameFilter) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(selectGames)
	args := []interface{}{}
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.LeagueId != nil {
		b.WriteString(" AND g.league_id = " + next(*filter.LeagueId))
	}
	if filter.StartDate != nil {
		b.WriteString(" AND g.date >= " + next(*filter.StartDate))
	}
	if filter.EndDate != nil {
		b.WriteString(" AND g.date <= " + next(*filter.EndDate))
	}

	switch {
	case filter.HeadToHead && filter.HomeTeamId != nil && filter.AwayTeamId != nil:
		first := next(*filter.HomeTeamId)
		second := next(*filter.AwayTeamId)
		b.WriteString(fmt.Sprintf(
			" AND ((g.home_team_id = %s AND g.away_team_id = %s) OR (g.home_team_id = %s AND g.away_team_id = %s))",
			first, second, second, first,
		))
	default:
		if filter.HomeTeamId != nil {
			b.WriteString(" AND g.home_team_id = " + next(*filter.HomeTeamId))
		}
		if filter.AwayTeamId != nil {
			b.WriteString(" AND g.away_team_id = " + next(*filter.AwayTeamId))
		}
	}

	order := models.SortDesc
	if filter.Order == models.SortAsc {
		order = models.SortAsc
	}
	b.WriteString(fmt.Sprintf(" ORDER BY g.date %s, g.game_id ASC", order))

	if filter.Limit > 0 {
		b.WriteString(" LIMIT " + next(filter.Limit))
	}
	return b.String(), args
}

// ListGames returns the games matching filter with their odds lines attached,
// each game's lines sorted by line ascending.
func (g *GamesDBConnection) ListGames(ctx context.Context, filter models.GameFilter) ([]models.GameModel, error) {
	games := []models.GameModel{}
	query, args := buildGamesQuery(filter)

	if err := g.SelectContext(ctx, &games, query, args...); err != nil {
		g.Log.Error().Err(err).Msg("error selecting games")
		return nil, fmt.Errorf("select games: %w", err)
	}
	if len(games) == 0 {
		return games, nil
	}

	if err := g.attachOdds(ctx, games); err != nil {
		return nil, err
	}
	return games, nil
}

func (g *GamesDBConnection) attachOdds(ctx context.Context, games []models.GameModel) error {
	ids := make([]string, len(games))
	byGame := make(map[uuid.UUID]int, len(games))
	for i := range games {
		ids[i] = games[i].GameId.String()
		byGame[games[i].GameId] = i
	}

	query :=
		`
	SELECT odds_id, game_id, line, over_odd, under_odd
	FROM odds
	WHERE game_id = ANY($1::uuid[])
	ORDER BY game_id, line ASC
	`
	lines := []models.OddsLineModel{}
	if err := g.SelectContext(ctx, &lines, query, pq.Array(ids)); err != nil {
		g.Log.Error().Err(err).Int("games", len(games)).Msg("error selecting odds")
		return fmt.Errorf("select odds: %w", err)
	}

	for _, l := range lines {
		if i, ok := byGame[l.GameId]; ok {
			games[i].Odds = append(games[i].Odds, l)
		}
	}
	return nil
}

// FindTeamByName matches the name case-insensitively inside one league. It
// returns nil, nil when no team matches.
func (g *GamesDBConnection) FindTeamByName(ctx context.Context, leagueId uuid.UUID, name string) (*models.TeamModel, error) {
	team := models.TeamModel{}
	query :=
		`
	SELECT team_id, name, league_id
	FROM teams
	WHERE league_id = $1 AND LOWER(name) = LOWER($2)
	LIMIT 1
	`
	err := g.GetContext(ctx, &team, query, leagueId, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		g.Log.Error().Err(err).Str("team", name).Msg("error finding team")
		return nil, fmt.Errorf("find team: %w", err)
	}
	return &team, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchTeams lists teams in a league whose name contains query, ignoring case.
func (g *GamesDBConnection) SearchTeams(ctx context.Context, leagueId uuid.UUID, query string) ([]models.TeamModel, error) {
	teams := []models.TeamModel{}
	sqlQuery :=
		`
	SELECT team_id, name, league_id
	FROM teams
	WHERE league_id = $1 AND name ILIKE '%' || $2 || '%'
	ORDER BY name ASC
	`
	if err := g.SelectContext(ctx, &teams, sqlQuery, leagueId, likeEscaper.Replace(query)); err != nil {
		g.Log.Error().Err(err).Str("query", query).Msg("error searching teams")
		return nil, fmt.Errorf("search teams: %w", err)
	}
	return teams, nil
}

func (g *GamesDBConnection) ListLeagues(ctx context.Context) ([]models.LeagueModel, error) {
	leagues := []models.LeagueModel{}
	query :=
		`
	SELECT league_id, name, country, season
	FROM leagues
	ORDER BY name ASC
	`
	if err := g.SelectContext(ctx, &leagues, query); err != nil {
		g.Log.Error().Err(err).Msg("error listing leagues")
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}
