package analytics

import (
	"errors"
	"fmt"

	"AmHughesAbsalom/halftime-analytics/odds"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrInvalidRange = errors.New("invalid range")
)

// TeamNotFoundError names the team that could not be located.
type TeamNotFoundError struct {
	Name string
}

func (e *TeamNotFoundError) Error() string {
	return "Team not found: " + e.Name
}

func (e *TeamNotFoundError) Is(target error) bool {
	return target == ErrTeamNotFound
}

// ValidateBand rejects bands with min above max or a non-positive bound. The
// engine itself never checks this; request layers call it first.
func ValidateBand(band odds.Band) error {
	if !band.Min.IsPositive() || !band.Max.IsPositive() {
		return fmt.Errorf("%w: odds must be positive, got %s", ErrInvalidRange, band)
	}
	if band.Min.GreaterThan(band.Max) {
		return fmt.Errorf("%w: minOdds %s is above maxOdds %s", ErrInvalidRange, band.Min, band.Max)
	}
	return nil
}

// ValidatePositive rejects a non-positive threshold or game window.
func ValidatePositive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidRange, name, value)
	}
	return nil
}
