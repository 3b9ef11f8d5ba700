package number

import (
	"github.com/ar90n/primext/constraints"
)

type Number = constraints.Number

// Wrap brings value back into [min, max] by re-entering an overshoot from the
// opposite bound. Only one overshoot is corrected: a value further out than
// max-min stays outside the range. The result for min > max is unspecified.
func Wrap[T Number](value, min, max T) T {
	if value > max {
		return (value - max) + min
	}

	if value < min {
		return max - (min - value)
	}

	return value
}

// ToBool reports whether v is positive.
func ToBool[T constraints.Integer](v T) bool {
	return v > 0
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
