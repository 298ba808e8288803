package questgen

import (
	"fmt"
	"math"
)

// integerTolerance bounds how far a float result may sit from the nearest
// integer before the guard rejects it.
const integerTolerance = 1e-9

// intFromFloat converts a float result to an exact integer, rejecting
// NaN, infinities, and values that are not integral within tolerance.
// Every shape that touches transcendental math must route its result
// through this guard: the multiple-choice UI cannot render a non-integer.
func intFromFloat(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite result %v", v)
	}
	rounded := math.Round(v)
	if math.Abs(v-rounded) > integerTolerance {
		return 0, fmt.Errorf("non-integer result %v", v)
	}
	if rounded > math.MaxInt32 || rounded < math.MinInt32 {
		return 0, fmt.Errorf("result %v out of range", v)
	}
	return int(rounded), nil
}
