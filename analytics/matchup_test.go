package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AmHughesAbsalom/halftime-analytics/models"
	"AmHughesAbsalom/halftime-analytics/odds"
)

func TestBuildTeamMatchupStats_Home(t *testing.T) {
	games := []models.GameModel{
		game("2025-01-03", teamA, teamB, 20, 20, 18, 15, 90, 80, oddsLine(40.5, 1.75)),
		game("2025-01-02", teamA, teamC, 10, 10, 10, 10, 70, 75, oddsLine(45.5, 1.74)),
		game("2025-01-01", teamA, teamB, 15, 15, 15, 15, 80, 80),
	}

	stats := BuildTeamMatchupStats("A", models.LocationHome, games, odds.DefaultBand)

	assert.Equal(t, "A", stats.Team)
	assert.Equal(t, models.LocationHome, stats.Location)
	assert.Equal(t, 3, stats.GamesPlayed)
	assert.InDelta(t, float64(40+20+30)/3, stats.AvgHalftimePoints, 1e-9)
	assert.InDelta(t, float64(33+20+30)/3, stats.AvgHalftimeConceded, 1e-9)
	assert.Equal(t, 1, stats.OverOddsCount)
	assert.InDelta(t, 100.0/3, stats.OverOddsPercentage, 1e-9)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Losses)

	require.Len(t, stats.GameLog, 3)
	first := stats.GameLog[0]
	assert.Equal(t, day("2025-01-03"), first.Date)
	assert.Equal(t, "B", first.Opponent)
	assert.Equal(t, 73, first.HalftimeTotal)
	assert.Equal(t, 40, first.TeamHalftime)
	assert.Equal(t, 33, first.OppHalftime)
	require.NotNil(t, first.OddsLine)
	assert.Equal(t, "40.5", first.OddsLine.String())
	assert.True(t, first.WentOver)
	assert.Equal(t, models.ResultWin, first.Result)

	assert.Equal(t, "C", stats.GameLog[1].Opponent)
	assert.False(t, stats.GameLog[1].WentOver)
	assert.Equal(t, models.ResultLoss, stats.GameLog[1].Result)

	assert.Nil(t, stats.GameLog[2].OddsLine)
	assert.False(t, stats.GameLog[2].WentOver)
	assert.Equal(t, models.ResultDraw, stats.GameLog[2].Result)
}

func TestBuildTeamMatchupStats_Away(t *testing.T) {
	games := []models.GameModel{
		game("2025-01-03", teamC, teamB, 20, 20, 18, 15, 90, 95, oddsLine(40.5, 1.75)),
	}

	stats := BuildTeamMatchupStats("B", models.LocationAway, games, odds.DefaultBand)

	assert.Equal(t, models.LocationAway, stats.Location)
	assert.InDelta(t, 33.0, stats.AvgHalftimePoints, 1e-9)
	assert.InDelta(t, 40.0, stats.AvgHalftimeConceded, 1e-9)
	assert.Equal(t, 1, stats.Wins)
	require.Len(t, stats.GameLog, 1)
	assert.Equal(t, "C", stats.GameLog[0].Opponent)
	assert.Equal(t, 33, stats.GameLog[0].TeamHalftime)
	assert.Equal(t, 40, stats.GameLog[0].OppHalftime)
	assert.Equal(t, models.ResultWin, stats.GameLog[0].Result)
}

func TestBuildTeamMatchupStats_NoGames(t *testing.T) {
	stats := BuildTeamMatchupStats("A", models.LocationHome, nil, odds.DefaultBand)

	assert.Equal(t, 0, stats.GamesPlayed)
	assert.Zero(t, stats.AvgHalftimePoints)
	assert.Zero(t, stats.OverOddsPercentage)
	assert.NotNil(t, stats.GameLog)
	assert.Empty(t, stats.GameLog)
}

func TestBuildHeadToHead(t *testing.T) {
	games := []models.GameModel{
		game("2025-02-01", teamB, teamA, 25, 25, 20, 20, 100, 90, oddsLine(88.5, 1.65)),
		game("2025-01-01", teamA, teamB, 20, 20, 18, 15, 90, 80),
	}

	h2h := BuildHeadToHead(games, odds.DefaultBand)

	require.Len(t, h2h, 2)
	assert.Equal(t, "B", h2h[0].HomeTeam)
	assert.Equal(t, "A", h2h[0].AwayTeam)
	assert.Equal(t, 50, h2h[0].HomeHalftime)
	assert.Equal(t, 40, h2h[0].AwayHalftime)
	assert.Equal(t, 90, h2h[0].HalftimeTotal)
	require.NotNil(t, h2h[0].OddsLine)
	assert.Equal(t, "88.5", h2h[0].OddsLine.String())
	assert.True(t, h2h[0].WentOver)

	assert.Nil(t, h2h[1].OddsLine)
	assert.False(t, h2h[1].WentOver)
}

// The same game must resolve to the same line in all three reports.
func TestResolvedLineIsConsistentAcrossAggregators(t *testing.T) {
	fixtures := [][]models.OddsLineModel{
		{oddsLine(40.5, 1.75)},
		{oddsLine(39, 1.75), oddsLine(42.5, 1.55), oddsLine(43.5, 1.65)},
		{oddsLine(44.5, 1.35), oddsLine(45.5, 1.20)},
		{oddsLine(70.5, 1.85)},
		nil,
	}

	for _, lines := range fixtures {
		g := game("2025-01-01", teamA, teamB, 20, 20, 18, 15, 90, 80, lines...)
		want := odds.Resolve(g.Odds, odds.DefaultBand).Value()

		log := BuildTeamMatchupStats("A", models.LocationHome, []models.GameModel{g}, odds.DefaultBand).GameLog[0]
		h2h := BuildHeadToHead([]models.GameModel{g}, odds.DefaultBand)[0]
		dist := AnalyzeOddsPerformance([]models.GameModel{g}, odds.DefaultBand)

		if want == nil {
			assert.Nil(t, log.OddsLine)
			assert.Nil(t, h2h.OddsLine)
			assert.Equal(t, 1, dist.Distribution.NoOddsAvailable)
			continue
		}
		require.NotNil(t, log.OddsLine)
		require.NotNil(t, h2h.OddsLine)
		assert.True(t, want.Equal(*log.OddsLine))
		assert.True(t, want.Equal(*h2h.OddsLine))
		assert.Equal(t, log.WentOver, h2h.WentOver)
		assert.Equal(t, log.WentOver, dist.Distribution.AboveLine == 1)
	}
}
