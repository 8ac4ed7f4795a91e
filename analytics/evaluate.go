package analytics

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"AmHughesAbsalom/halftime-analytics/models"
	"AmHughesAbsalom/halftime-analytics/odds"
)

// GameEvaluation is the resolved line and outcome for one game. Every
// aggregator goes through EvaluateGame so a game resolves to the same line
// no matter which report asks.
type GameEvaluation struct {
	HomeHalftime  int
	AwayHalftime  int
	HalftimeTotal int
	Resolution    odds.Resolution
	Outcome       odds.Outcome
}

func EvaluateGame(game models.GameModel, band odds.Band) GameEvaluation {
	res := odds.Resolve(game.Odds, band)
	total := game.HalftimeTotal()
	return GameEvaluation{
		HomeHalftime:  game.HomeHalftime(),
		AwayHalftime:  game.AwayHalftime(),
		HalftimeTotal: total,
		Resolution:    res,
		Outcome:       odds.Classify(total, res.Value()),
	}
}

func (e GameEvaluation) Line() *decimal.Decimal {
	return e.Resolution.Value()
}

func (e GameEvaluation) WentOver() bool {
	return e.Outcome == odds.OutcomeAbove
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func average(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// sortTeamIds orders ids bytewise. Rows are built in this order before the
// stable ranking sort, which makes ties on every ranked field deterministic.
func sortTeamIds(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
}
