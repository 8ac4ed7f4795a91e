package odds

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AmHughesAbsalom/halftime-analytics/models"
)

func line(value, over float64) models.OddsLineModel {
	return models.OddsLineModel{
		Line:     decimal.NewFromFloat(value),
		OverOdd:  decimal.NewFromFloat(over),
		UnderOdd: decimal.NewFromFloat(1.90),
	}
}

func assertLine(t *testing.T, want float64, got Resolution) {
	t.Helper()
	require.True(t, got.Resolved(), "expected a line, got none")
	assert.True(t, got.Line.Equal(decimal.NewFromFloat(want)), "want %v got %s", want, got.Line)
}

func TestResolve_EmptyInput(t *testing.T) {
	res := Resolve(nil, DefaultBand)

	assert.False(t, res.Resolved())
	assert.Nil(t, res.Value())
	assert.Equal(t, TierNone, res.Tier)
}

func TestResolve_PrimaryTier(t *testing.T) {
	lines := []models.OddsLineModel{
		line(39.5, 1.95),
		line(40.5, 1.75),
		line(41.5, 1.72),
	}

	res := Resolve(lines, DefaultBand)

	assertLine(t, 40.5, res)
	assert.Equal(t, TierPrimary, res.Tier)
}

func TestResolve_BandIsInclusive(t *testing.T) {
	assertLine(t, 40.5, Resolve([]models.OddsLineModel{line(40.5, 1.70)}, DefaultBand))
	assertLine(t, 41.5, Resolve([]models.OddsLineModel{line(41.5, 1.79)}, DefaultBand))
}

func TestResolve_WholePointLinesNeverQualify(t *testing.T) {
	lines := []models.OddsLineModel{
		line(40, 1.75),
		line(41, 1.35),
		line(42, 1.65),
	}

	res := Resolve(lines, DefaultBand)

	assert.False(t, res.Resolved())
}

func TestResolve_ResultIsAlwaysHalfPoint(t *testing.T) {
	lines := []models.OddsLineModel{
		line(38, 2.05),
		line(38.5, 2.01),
		line(39, 1.85),
		line(39.5, 1.81),
		line(40, 1.62),
		line(40.5, 1.55),
		line(41, 1.30),
		line(41.5, 1.25),
	}

	bands := append([]Band{NewBand(1.75, 1.85), NewBand(1.0, 3.0)}, CanonicalBands...)
	for _, b := range bands {
		res := Resolve(lines, b)
		if res.Resolved() {
			assert.True(t, IsHalfPoint(res.Line), "band %s resolved whole line %s", b, res.Line)
		}
	}
}

func TestResolve_FirstMatchInInputOrderWins(t *testing.T) {
	lines := []models.OddsLineModel{
		line(40.5, 1.78),
		line(41.5, 1.71),
	}

	assertLine(t, 40.5, Resolve(lines, DefaultBand))

	reversed := []models.OddsLineModel{lines[1], lines[0]}
	assertLine(t, 41.5, Resolve(reversed, DefaultBand))
}

func TestResolve_CascadePrefersNearestLowerBand(t *testing.T) {
	// 1.55 sits two bands below the selected band, 1.65 one band below.
	lines := []models.OddsLineModel{
		line(42.5, 1.55),
		line(43.5, 1.65),
	}

	res := Resolve(lines, DefaultBand)

	assertLine(t, 43.5, res)
	assert.Equal(t, TierCascade, res.Tier)
}

func TestResolve_CascadeNeverWalksUpward(t *testing.T) {
	lines := []models.OddsLineModel{line(40.5, 1.85)}

	res := Resolve(lines, DefaultBand)

	assert.False(t, res.Resolved())
}

func TestResolve_CascadeMatchesBandNumerically(t *testing.T) {
	lines := []models.OddsLineModel{line(43.5, 1.65)}
	band := Band{Min: decimal.RequireFromString("1.7"), Max: decimal.RequireFromString("1.790")}

	assertLine(t, 43.5, Resolve(lines, band))
}

func TestResolve_NonCanonicalBandSkipsCascade(t *testing.T) {
	lines := []models.OddsLineModel{line(43.5, 1.65)}

	res := Resolve(lines, NewBand(1.75, 1.85))

	assert.False(t, res.Resolved())
}

func TestResolve_LowestCanonicalBandHasNoCascade(t *testing.T) {
	lines := []models.OddsLineModel{line(43.5, 1.39)}

	res := Resolve(lines, NewBand(1.40, 1.49))

	assertLine(t, 43.5, res)
	assert.Equal(t, TierSubFloor, res.Tier)
}

func TestResolve_SubFloorTier(t *testing.T) {
	lines := []models.OddsLineModel{
		line(39, 1.30),
		line(44.5, 1.35),
		line(45.5, 1.20),
	}

	res := Resolve(lines, DefaultBand)

	assertLine(t, 44.5, res)
	assert.Equal(t, TierSubFloor, res.Tier)
}

func TestResolve_CascadeBeatsSubFloor(t *testing.T) {
	lines := []models.OddsLineModel{
		line(44.5, 1.35),
		line(45.5, 1.41),
	}

	res := Resolve(lines, DefaultBand)

	assertLine(t, 45.5, res)
	assert.Equal(t, TierCascade, res.Tier)
}

func TestResolve_SubFloorNeedsMinAtLeast140(t *testing.T) {
	lines := []models.OddsLineModel{line(44.5, 1.35)}

	res := Resolve(lines, NewBand(1.30, 1.34))

	assert.False(t, res.Resolved())
}

func TestResolve_GapBetweenBandsIsNotCovered(t *testing.T) {
	// 1.695 falls between [1.60,1.69] and [1.70,1.79].
	lines := []models.OddsLineModel{line(40.5, 1.695)}

	res := Resolve(lines, DefaultBand)

	assert.False(t, res.Resolved())
}

func TestResolveQualifyingLine(t *testing.T) {
	lines := []models.OddsLineModel{line(40.5, 1.75)}

	got := ResolveQualifyingLine(lines, decimal.NewFromFloat(1.70), decimal.NewFromFloat(1.79))
	require.NotNil(t, got)
	assert.Equal(t, "40.5", got.String())

	assert.Nil(t, ResolveQualifyingLine(nil, decimal.NewFromFloat(1.70), decimal.NewFromFloat(1.79)))
}

func TestResolve_InvertedBandDoesNotPanic(t *testing.T) {
	lines := []models.OddsLineModel{line(40.5, 1.75), line(41.5, 1.35)}

	res := Resolve(lines, NewBand(1.79, 1.70))

	// nothing fits an inverted band, so only the sub-floor tier can answer
	assertLine(t, 41.5, res)
	assert.Equal(t, TierSubFloor, res.Tier)
}

func TestIsHalfPoint(t *testing.T) {
	assert.True(t, IsHalfPoint(decimal.NewFromFloat(40.5)))
	assert.True(t, IsHalfPoint(decimal.RequireFromString("0.50")))
	assert.False(t, IsHalfPoint(decimal.NewFromFloat(40)))
	assert.False(t, IsHalfPoint(decimal.NewFromFloat(40.25)))
}
