package analytics

import (
	"sort"

	"github.com/google/uuid"

	"AmHughesAbsalom/halftime-analytics/models"
	"AmHughesAbsalom/halftime-analytics/odds"
)

type recurrence struct {
	team      string
	home      int
	away      int
	homeGames int
	awayGames int
}

// AnalyzeOddsPerformance resolves and classifies every game against band.
// Every game counts toward each team's games in its role; only games that
// finish above the line count as occurrences.
func AnalyzeOddsPerformance(games []models.GameModel, band odds.Band) models.OddsAnalysisResult {
	dist := models.OddsDistribution{TotalGames: len(games)}
	byTeam := map[uuid.UUID]*recurrence{}

	for _, g := range games {
		home := teamRecurrence(byTeam, g.HomeTeamId, g.HomeTeamName)
		away := teamRecurrence(byTeam, g.AwayTeamId, g.AwayTeamName)
		home.homeGames++
		away.awayGames++

		eval := EvaluateGame(g, band)
		if eval.Resolution.Tier == odds.TierSubFloor {
			dist.FallbackBelow140 = true
		}

		switch eval.Outcome {
		case odds.OutcomeUnresolved:
			dist.NoOddsAvailable++
			continue
		case odds.OutcomeBelow:
			dist.BelowLine++
		case odds.OutcomeEqual:
			dist.EqualToLine++
		case odds.OutcomeAbove:
			dist.AboveLine++
			home.home++
			away.away++
		}
		dist.AnalyzedGames++
	}

	ids := make([]uuid.UUID, 0, len(byTeam))
	for id := range byTeam {
		ids = append(ids, id)
	}
	sortTeamIds(ids)

	recurrences := make([]models.TeamOddsRecurrence, 0, len(byTeam))
	for _, id := range ids {
		r := byTeam[id]
		recurrences = append(recurrences, models.TeamOddsRecurrence{
			Team:             r.team,
			HomeOccurrences:  r.home,
			HomeGames:        r.homeGames,
			HomePercentage:   percentage(r.home, r.homeGames),
			AwayOccurrences:  r.away,
			AwayGames:        r.awayGames,
			AwayPercentage:   percentage(r.away, r.awayGames),
			TotalOccurrences: r.home + r.away,
		})
	}
	sort.SliceStable(recurrences, func(i, j int) bool {
		if recurrences[i].TotalOccurrences != recurrences[j].TotalOccurrences {
			return recurrences[i].TotalOccurrences > recurrences[j].TotalOccurrences
		}
		return recurrences[i].Team < recurrences[j].Team
	})

	return models.OddsAnalysisResult{
		Distribution:    dist,
		TeamRecurrences: recurrences,
	}
}

func teamRecurrence(byTeam map[uuid.UUID]*recurrence, id uuid.UUID, name string) *recurrence {
	r, ok := byTeam[id]
	if !ok {
		r = &recurrence{team: name}
		byTeam[id] = r
	}
	return r
}
