package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameModel is a finalized game row joined with its team names. Odds is filled
// by a second query and is always sorted by line ascending.
type GameModel struct {
	GameId          uuid.UUID       `db:"game_id" json:"gameId"`
	Date            time.Time       `db:"date" json:"date"`
	LeagueId        uuid.UUID       `db:"league_id" json:"leagueId"`
	HomeTeamId      uuid.UUID       `db:"home_team_id" json:"homeTeamId"`
	HomeTeamName    string          `db:"home_team_name" json:"homeTeamName"`
	AwayTeamId      uuid.UUID       `db:"away_team_id" json:"awayTeamId"`
	AwayTeamName    string          `db:"away_team_name" json:"awayTeamName"`
	HomeFirst       int             `db:"home_first" json:"homeFirst"`
	HomeSecond      int             `db:"home_second" json:"homeSecond"`
	HomeThird       int             `db:"home_third" json:"homeThird"`
	HomeFourth      int             `db:"home_fourth" json:"homeFourth"`
	HomeTotalPoints int             `db:"home_total_points" json:"homeTotalPoints"`
	AwayFirst       int             `db:"away_first" json:"awayFirst"`
	AwaySecond      int             `db:"away_second" json:"awaySecond"`
	AwayThird       int             `db:"away_third" json:"awayThird"`
	AwayFourth      int             `db:"away_fourth" json:"awayFourth"`
	AwayTotalPoints int             `db:"away_total_points" json:"awayTotalPoints"`
	Odds            []OddsLineModel `db:"-" json:"odds"`
}

// HomeHalftime is first plus second quarter for the home side.
func (g GameModel) HomeHalftime() int {
	return g.HomeFirst + g.HomeSecond
}

func (g GameModel) AwayHalftime() int {
	return g.AwayFirst + g.AwaySecond
}

func (g GameModel) HalftimeTotal() int {
	return g.HomeHalftime() + g.AwayHalftime()
}

// OddsLineModel is one published halftime total line for a game.
type OddsLineModel struct {
	OddsId   uuid.UUID       `db:"odds_id" json:"oddsId"`
	GameId   uuid.UUID       `db:"game_id" json:"gameId"`
	Line     decimal.Decimal `db:"line" json:"line"`
	OverOdd  decimal.Decimal `db:"over_odd" json:"overOdd"`
	UnderOdd decimal.Decimal `db:"under_odd" json:"underOdd"`
}
