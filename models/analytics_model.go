package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeamStats is one row of the home or away table. A team whose window is empty
// still gets a row with every number at zero.
type TeamStats struct {
	Team                      string  `json:"team"`
	AvgPoints                 float64 `json:"avgPoints"`
	AvgConceded               float64 `json:"avgConceded"`
	AboveThreshold            int     `json:"aboveThreshold"`
	AboveThresholdPct         float64 `json:"aboveThresholdPct"`
	ConcededAboveThreshold    int     `json:"concededAboveThreshold"`
	ConcededAboveThresholdPct float64 `json:"concededAboveThresholdPct"`
	Wins                      int     `json:"wins"`
	Losses                    int     `json:"losses"`
	GamesPlayed               int     `json:"gamesPlayed"`
}

type AnalyticsResult struct {
	HomeStats []TeamStats `json:"homeStats"`
	AwayStats []TeamStats `json:"awayStats"`
}

// OddsDistribution counts halftime outcomes against the resolved line.
// FallbackBelow140 is set when any game in the batch resolved through a line
// priced under 1.40.
type OddsDistribution struct {
	BelowLine        int  `json:"belowLine"`
	EqualToLine      int  `json:"equalToLine"`
	AboveLine        int  `json:"aboveLine"`
	NoOddsAvailable  int  `json:"noOddsAvailable"`
	TotalGames       int  `json:"totalGames"`
	AnalyzedGames    int  `json:"analyzedGames"`
	FallbackBelow140 bool `json:"fallbackBelow140"`
}

type TeamOddsRecurrence struct {
	Team             string  `json:"team"`
	HomeOccurrences  int     `json:"homeOccurrences"`
	HomeGames        int     `json:"homeGames"`
	HomePercentage   float64 `json:"homePercentage"`
	AwayOccurrences  int     `json:"awayOccurrences"`
	AwayGames        int     `json:"awayGames"`
	AwayPercentage   float64 `json:"awayPercentage"`
	TotalOccurrences int     `json:"totalOccurrences"`
}

type OddsAnalysisResult struct {
	Distribution    OddsDistribution     `json:"distribution"`
	TeamRecurrences []TeamOddsRecurrence `json:"teamRecurrences"`
}

type Location string

const (
	LocationHome Location = "home"
	LocationAway Location = "away"
)

type GameResult string

const (
	ResultWin  GameResult = "win"
	ResultLoss GameResult = "loss"
	ResultDraw GameResult = "draw"
)

type GameLogEntry struct {
	Date          time.Time        `json:"date"`
	Opponent      string           `json:"opponent"`
	HalftimeTotal int              `json:"halftimeTotal"`
	TeamHalftime  int              `json:"teamHalftime"`
	OppHalftime   int              `json:"oppHalftime"`
	OddsLine      *decimal.Decimal `json:"oddsLine"`
	WentOver      bool             `json:"wentOver"`
	Result        GameResult       `json:"result"`
}

type TeamMatchupStats struct {
	Team                string         `json:"team"`
	Location            Location       `json:"location"`
	GamesPlayed         int            `json:"gamesPlayed"`
	AvgHalftimePoints   float64        `json:"avgHalftimePoints"`
	AvgHalftimeConceded float64        `json:"avgHalftimeConceded"`
	OverOddsCount       int            `json:"overOddsCount"`
	OverOddsPercentage  float64        `json:"overOddsPercentage"`
	Wins                int            `json:"wins"`
	Losses              int            `json:"losses"`
	GameLog             []GameLogEntry `json:"gameLog"`
}

type HeadToHeadGame struct {
	Date          time.Time        `json:"date"`
	HomeTeam      string           `json:"homeTeam"`
	AwayTeam      string           `json:"awayTeam"`
	HomeHalftime  int              `json:"homeHalftime"`
	AwayHalftime  int              `json:"awayHalftime"`
	HalftimeTotal int              `json:"halftimeTotal"`
	OddsLine      *decimal.Decimal `json:"oddsLine"`
	WentOver      bool             `json:"wentOver"`
}

type MatchupAnalysisResult struct {
	HomeTeam          TeamMatchupStats `json:"homeTeam"`
	AwayTeam          TeamMatchupStats `json:"awayTeam"`
	HeadToHeadHistory []HeadToHeadGame `json:"headToHeadHistory"`
}
