package analytics

import (
	"AmHughesAbsalom/halftime-analytics/models"
	"AmHughesAbsalom/halftime-analytics/odds"
)

// BuildTeamMatchupStats summarises one team's games in a single venue role.
// The game log keeps the order of games, newest first when the store sorted
// them that way.
func BuildTeamMatchupStats(team string, location models.Location, games []models.GameModel, band odds.Band) models.TeamMatchupStats {
	isHome := location == models.LocationHome
	gameLog := make([]models.GameLogEntry, 0, len(games))

	var scored, conceded, over, wins, losses int
	for _, g := range games {
		eval := EvaluateGame(g, band)

		teamHalftime, oppHalftime := eval.AwayHalftime, eval.HomeHalftime
		teamTotal, oppTotal := g.AwayTotalPoints, g.HomeTotalPoints
		opponent := g.HomeTeamName
		if isHome {
			teamHalftime, oppHalftime = eval.HomeHalftime, eval.AwayHalftime
			teamTotal, oppTotal = g.HomeTotalPoints, g.AwayTotalPoints
			opponent = g.AwayTeamName
		}

		scored += teamHalftime
		conceded += oppHalftime
		if eval.WentOver() {
			over++
		}

		result := models.ResultDraw
		switch {
		case teamTotal > oppTotal:
			wins++
			result = models.ResultWin
		case teamTotal < oppTotal:
			losses++
			result = models.ResultLoss
		}

		gameLog = append(gameLog, models.GameLogEntry{
			Date:          g.Date,
			Opponent:      opponent,
			HalftimeTotal: eval.HalftimeTotal,
			TeamHalftime:  teamHalftime,
			OppHalftime:   oppHalftime,
			OddsLine:      eval.Line(),
			WentOver:      eval.WentOver(),
			Result:        result,
		})
	}

	played := len(games)
	return models.TeamMatchupStats{
		Team:                team,
		Location:            location,
		GamesPlayed:         played,
		AvgHalftimePoints:   average(scored, played),
		AvgHalftimeConceded: average(conceded, played),
		OverOddsCount:       over,
		OverOddsPercentage:  percentage(over, played),
		Wins:                wins,
		Losses:              losses,
		GameLog:             gameLog,
	}
}

// BuildHeadToHead maps meetings between two teams without win/loss framing.
func BuildHeadToHead(games []models.GameModel, band odds.Band) []models.HeadToHeadGame {
	out := make([]models.HeadToHeadGame, 0, len(games))
	for _, g := range games {
		eval := EvaluateGame(g, band)
		out = append(out, models.HeadToHeadGame{
			Date:          g.Date,
			HomeTeam:      g.HomeTeamName,
			AwayTeam:      g.AwayTeamName,
			HomeHalftime:  eval.HomeHalftime,
			AwayHalftime:  eval.AwayHalftime,
			HalftimeTotal: eval.HalftimeTotal,
			OddsLine:      eval.Line(),
			WentOver:      eval.WentOver(),
		})
	}
	return out
}
