package odds

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Band is an inclusive over-price range, e.g. 1.70 to 1.79.
type Band struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func NewBand(minOdds, maxOdds float64) Band {
	return Band{Min: decimal.NewFromFloat(minOdds), Max: decimal.NewFromFloat(maxOdds)}
}

// Contains reports whether price lies in [Min, Max].
func (b Band) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(b.Min) && price.LessThanOrEqual(b.Max)
}

// Equal compares both bounds numerically, so 1.7 equals 1.70.
func (b Band) Equal(other Band) bool {
	return b.Min.Equal(other.Min) && b.Max.Equal(other.Max)
}

func (b Band) String() string {
	return fmt.Sprintf("[%s, %s]", b.Min.StringFixed(2), b.Max.StringFixed(2))
}

// CanonicalBands is the fixed cascade, highest prices first.
var CanonicalBands = []Band{
	NewBand(2.00, 2.09),
	NewBand(1.90, 1.99),
	NewBand(1.80, 1.89),
	NewBand(1.70, 1.79),
	NewBand(1.60, 1.69),
	NewBand(1.50, 1.59),
	NewBand(1.40, 1.49),
}

// SubFloor is the price under which a line is only used as a last resort.
var SubFloor = decimal.NewFromFloat(1.40)

// DefaultBand is used when a caller does not pick one.
var DefaultBand = NewBand(1.70, 1.79)

func canonicalIndex(b Band) int {
	for i, c := range CanonicalBands {
		if c.Equal(b) {
			return i
		}
	}
	return -1
}
