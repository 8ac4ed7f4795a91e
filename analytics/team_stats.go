package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"AmHughesAbsalom/halftime-analytics/models"
)

type teamGame struct {
	date         time.Time
	teamHalftime int
	oppHalftime  int
	teamTotal    int
	oppTotal     int
}

type teamGames struct {
	name  string
	games []teamGame
}

// ComputeTeamStats builds the home and away tables. Games are grouped per team
// and per venue, sorted newest first, and cut to the most recent lastNGames
// when lastNGames > 0. Each team is windowed on its own. Wins and losses
// compare full game totals; draws count as neither.
func ComputeTeamStats(games []models.GameModel, threshold, lastNGames int) models.AnalyticsResult {
	home := map[uuid.UUID]*teamGames{}
	away := map[uuid.UUID]*teamGames{}

	for _, g := range games {
		homeHalftime := g.HomeHalftime()
		awayHalftime := g.AwayHalftime()

		appendTeamGame(home, g.HomeTeamId, g.HomeTeamName, teamGame{
			date:         g.Date,
			teamHalftime: homeHalftime,
			oppHalftime:  awayHalftime,
			teamTotal:    g.HomeTotalPoints,
			oppTotal:     g.AwayTotalPoints,
		})
		appendTeamGame(away, g.AwayTeamId, g.AwayTeamName, teamGame{
			date:         g.Date,
			teamHalftime: awayHalftime,
			oppHalftime:  homeHalftime,
			teamTotal:    g.AwayTotalPoints,
			oppTotal:     g.HomeTotalPoints,
		})
	}

	return models.AnalyticsResult{
		HomeStats: statsTable(home, threshold, lastNGames),
		AwayStats: statsTable(away, threshold, lastNGames),
	}
}

func appendTeamGame(byTeam map[uuid.UUID]*teamGames, id uuid.UUID, name string, tg teamGame) {
	entry, ok := byTeam[id]
	if !ok {
		entry = &teamGames{name: name}
		byTeam[id] = entry
	}
	entry.games = append(entry.games, tg)
}

func statsTable(byTeam map[uuid.UUID]*teamGames, threshold, lastNGames int) []models.TeamStats {
	ids := make([]uuid.UUID, 0, len(byTeam))
	for id := range byTeam {
		ids = append(ids, id)
	}
	sortTeamIds(ids)

	stats := make([]models.TeamStats, 0, len(byTeam))
	for _, id := range ids {
		entry := byTeam[id]
		games := entry.games
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].date.After(games[j].date)
		})
		if lastNGames > 0 && len(games) > lastNGames {
			games = games[:lastNGames]
		}
		stats = append(stats, calculateStats(entry.name, games, threshold))
	}

	// stable over id order, so same-named teams from different leagues keep
	// a fixed order
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].AvgPoints != stats[j].AvgPoints {
			return stats[i].AvgPoints > stats[j].AvgPoints
		}
		return stats[i].Team < stats[j].Team
	})
	return stats
}

func calculateStats(team string, games []teamGame, threshold int) models.TeamStats {
	played := len(games)
	if played == 0 {
		return models.TeamStats{Team: team}
	}

	var scored, conceded, above, concededAbove, wins, losses int
	for _, g := range games {
		scored += g.teamHalftime
		conceded += g.oppHalftime
		if g.teamHalftime > threshold {
			above++
		}
		if g.oppHalftime > threshold {
			concededAbove++
		}
		switch {
		case g.teamTotal > g.oppTotal:
			wins++
		case g.teamTotal < g.oppTotal:
			losses++
		}
	}

	return models.TeamStats{
		Team:                      team,
		AvgPoints:                 average(scored, played),
		AvgConceded:               average(conceded, played),
		AboveThreshold:            above,
		AboveThresholdPct:         percentage(above, played),
		ConcededAboveThreshold:    concededAbove,
		ConcededAboveThresholdPct: percentage(concededAbove, played),
		Wins:                      wins,
		Losses:                    losses,
		GamesPlayed:               played,
	}
}
