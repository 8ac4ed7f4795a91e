package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"AmHughesAbsalom/halftime-analytics/models"
)

var (
	leagueId = uuid.MustParse("6f1c1c1e-0000-4000-8000-000000000001")
	teamA    = models.TeamModel{TeamId: uuid.MustParse("6f1c1c1e-0000-4000-8000-0000000000a1"), Name: "A", LeagueId: leagueId}
	teamB    = models.TeamModel{TeamId: uuid.MustParse("6f1c1c1e-0000-4000-8000-0000000000b1"), Name: "B", LeagueId: leagueId}
	teamC    = models.TeamModel{TeamId: uuid.MustParse("6f1c1c1e-0000-4000-8000-0000000000c1"), Name: "C", LeagueId: leagueId}
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func oddsLine(value, over float64) models.OddsLineModel {
	return models.OddsLineModel{
		OddsId:   uuid.New(),
		Line:     decimal.NewFromFloat(value),
		OverOdd:  decimal.NewFromFloat(over),
		UnderOdd: decimal.NewFromFloat(2.0),
	}
}

// game builds a game whose first and second quarters carry the halftime
// scores and whose totals decide the winner.
func game(date string, home, away models.TeamModel, homeFirst, homeSecond, awayFirst, awaySecond, homeTotal, awayTotal int, lines ...models.OddsLineModel) models.GameModel {
	g := models.GameModel{
		GameId:          uuid.New(),
		Date:            day(date),
		LeagueId:        leagueId,
		HomeTeamId:      home.TeamId,
		HomeTeamName:    home.Name,
		AwayTeamId:      away.TeamId,
		AwayTeamName:    away.Name,
		HomeFirst:       homeFirst,
		HomeSecond:      homeSecond,
		AwayFirst:       awayFirst,
		AwaySecond:      awaySecond,
		HomeTotalPoints: homeTotal,
		AwayTotalPoints: awayTotal,
		Odds:            lines,
	}
	for i := range g.Odds {
		g.Odds[i].GameId = g.GameId
	}
	return g
}

// fakeStore applies GameFilter in memory the way the SQL store does.
type fakeStore struct {
	teams   []models.TeamModel
	leagues []models.LeagueModel
	games   []models.GameModel
	err     error
	filters []models.GameFilter
	lookups []string
}

func (f *fakeStore) ListGames(ctx context.Context, filter models.GameFilter) ([]models.GameModel, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}

	var out []models.GameModel
	for _, g := range f.games {
		if filter.LeagueId != nil && g.LeagueId != *filter.LeagueId {
			continue
		}
		if filter.StartDate != nil && g.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && g.Date.After(*filter.EndDate) {
			continue
		}
		if filter.HeadToHead {
			h, a := *filter.HomeTeamId, *filter.AwayTeamId
			if !(g.HomeTeamId == h && g.AwayTeamId == a) && !(g.HomeTeamId == a && g.AwayTeamId == h) {
				continue
			}
		} else {
			if filter.HomeTeamId != nil && g.HomeTeamId != *filter.HomeTeamId {
				continue
			}
			if filter.AwayTeamId != nil && g.AwayTeamId != *filter.AwayTeamId {
				continue
			}
		}
		out = append(out, g)
	}

	sortGames(out, filter.Order)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func sortGames(games []models.GameModel, order models.SortOrder) {
	sort.SliceStable(games, func(i, j int) bool {
		if order == models.SortDesc {
			return games[i].Date.After(games[j].Date)
		}
		return games[i].Date.Before(games[j].Date)
	})
}

func (f *fakeStore) FindTeamByName(ctx context.Context, league uuid.UUID, name string) (*models.TeamModel, error) {
	f.lookups = append(f.lookups, name)
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.teams {
		if t.LeagueId == league && strings.EqualFold(t.Name, name) {
			team := t
			return &team, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SearchTeams(ctx context.Context, league uuid.UUID, query string) ([]models.TeamModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.TeamModel
	for _, t := range f.teams {
		if t.LeagueId == league && strings.Contains(strings.ToLower(t.Name), strings.ToLower(query)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) ListLeagues(ctx context.Context) ([]models.LeagueModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.leagues, nil
}
