package odds

import "github.com/shopspring/decimal"

type Outcome int

const (
	OutcomeUnresolved Outcome = iota
	OutcomeBelow
	// OutcomeEqual cannot happen with half-point lines but whole-point lines
	// would land here.
	OutcomeEqual
	OutcomeAbove
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBelow:
		return "below"
	case OutcomeEqual:
		return "equal"
	case OutcomeAbove:
		return "above"
	default:
		return "unresolved"
	}
}

// Classify compares a halftime total with a resolved line.
func Classify(halftimeTotal int, line *decimal.Decimal) Outcome {
	if line == nil {
		return OutcomeUnresolved
	}
	switch decimal.NewFromInt(int64(halftimeTotal)).Cmp(*line) {
	case -1:
		return OutcomeBelow
	case 0:
		return OutcomeEqual
	default:
		return OutcomeAbove
	}
}
