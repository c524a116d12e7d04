package core

import (
	"fmt"
	"math"

	"github.com/winnowlabs/winnow/schema"
)

// RoundHalfAwayFromZero returns the nearest integer to x, with halves
// rounded away from zero: 2.5 becomes 3 and -2.5 becomes -3.
func RoundHalfAwayFromZero(x float64) int {
	if x >= 0 {
		return int(math.Floor(x + 0.5))
	}
	return int(math.Ceil(x - 0.5))
}

// roundFloor maps x to the greatest integer <= x. True floor, not
// truncation toward zero: -2.3 becomes -3.
func roundFloor(x float64) int {
	return int(math.Floor(x))
}

// roundCeil maps x to the least integer >= x.
func roundCeil(x float64) int {
	return int(math.Ceil(x))
}

// rounderFor selects the rounding function for a policy.
func rounderFor(policy schema.RoundingPolicy) (func(float64) int, error) {
	switch policy {
	case schema.NearestRounding:
		return RoundHalfAwayFromZero, nil
	case schema.FloorRounding:
		return roundFloor, nil
	case schema.CeilRounding:
		return roundCeil, nil
	default:
		return nil, fmt.Errorf("%w (received %q)", ErrInvalidRounding, policy)
	}
}
