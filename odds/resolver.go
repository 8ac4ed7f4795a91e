// Package odds selects the qualifying halftime total line for a game and
// classifies the halftime score against it.
package odds

import (
	"github.com/shopspring/decimal"

	"AmHughesAbsalom/halftime-analytics/models"
)

// Tier says which step of the lookup produced a line.
type Tier int

const (
	TierNone Tier = iota
	TierPrimary
	TierCascade
	TierSubFloor
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierCascade:
		return "cascade"
	case TierSubFloor:
		return "sub-floor"
	default:
		return "none"
	}
}

// Resolution is the outcome of Resolve. Line is only meaningful when Tier is
// not TierNone.
type Resolution struct {
	Line decimal.Decimal
	Tier Tier
}

func (r Resolution) Resolved() bool {
	return r.Tier != TierNone
}

// Value returns the line or nil when nothing qualified.
func (r Resolution) Value() *decimal.Decimal {
	if !r.Resolved() {
		return nil
	}
	line := r.Line
	return &line
}

var (
	one  = decimal.NewFromInt(1)
	half = decimal.NewFromFloat(0.5)
)

// IsHalfPoint reports whether line ends in .5. Whole-point lines can push and
// never qualify.
func IsHalfPoint(line decimal.Decimal) bool {
	return line.Mod(one).Abs().Equal(half)
}

// Resolve picks the qualifying half-point line. Lines are scanned in the
// order given, so callers pass them sorted by line ascending. Tiers in order:
//
//  1. a line whose over price is inside band
//  2. when band is one of CanonicalBands, the first lower canonical band
//     that has a line
//  3. when band.Min >= 1.40, any line priced under 1.40
func Resolve(lines []models.OddsLineModel, band Band) Resolution {
	if len(lines) == 0 {
		return Resolution{}
	}

	candidates := make([]models.OddsLineModel, 0, len(lines))
	for _, l := range lines {
		if IsHalfPoint(l.Line) {
			candidates = append(candidates, l)
		}
	}

	if line, ok := firstInBand(candidates, band); ok {
		return Resolution{Line: line, Tier: TierPrimary}
	}

	if idx := canonicalIndex(band); idx != -1 {
		for _, lower := range CanonicalBands[idx+1:] {
			if line, ok := firstInBand(candidates, lower); ok {
				return Resolution{Line: line, Tier: TierCascade}
			}
		}
	}

	if band.Min.GreaterThanOrEqual(SubFloor) {
		for _, l := range candidates {
			if l.OverOdd.LessThan(SubFloor) {
				return Resolution{Line: l.Line, Tier: TierSubFloor}
			}
		}
	}

	return Resolution{}
}

// ResolveQualifyingLine is Resolve for callers that only want the line.
func ResolveQualifyingLine(lines []models.OddsLineModel, minOdds, maxOdds decimal.Decimal) *decimal.Decimal {
	return Resolve(lines, Band{Min: minOdds, Max: maxOdds}).Value()
}

func firstInBand(lines []models.OddsLineModel, band Band) (decimal.Decimal, bool) {
	for _, l := range lines {
		if band.Contains(l.OverOdd) {
			return l.Line, true
		}
	}
	return decimal.Decimal{}, false
}
