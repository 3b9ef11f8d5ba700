package number

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Wrap(t *testing.T) {
	type TestCase struct {
		Value, Min, Max float64
		Want            float64
	}

	testCases := []TestCase{
		{Value: 15, Min: 0, Max: 10, Want: 5},
		{Value: -3, Min: 0, Max: 10, Want: 7},
		{Value: 10, Min: 0, Max: 10, Want: 10},
		{Value: 0, Min: 0, Max: 10, Want: 0},
		{Value: 4.5, Min: 0, Max: 10, Want: 4.5},
		{Value: 370, Min: 0, Max: 360, Want: 10},
		{Value: -190, Min: -180, Max: 180, Want: 170},
		// a single pass only: the overshoot is larger than the range width
		{Value: 25, Min: 0, Max: 10, Want: 15},
		{Value: -25, Min: 0, Max: 10, Want: -15},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v in [%v,%v]", tc.Value, tc.Min, tc.Max), func(t *testing.T) {
			assert.Equal(t, tc.Want, Wrap(tc.Value, tc.Min, tc.Max))
		})
	}
}

func Test_WrapInRangeIsIdentity(t *testing.T) {
	for v := -5.0; v <= 5.0; v += 0.25 {
		assert.Equal(t, v, Wrap(v, -5.0, 5.0))
	}
}

func Test_WrapSingleOvershoot(t *testing.T) {
	min, max := int64(-7), int64(13)
	for d := int64(1); d <= max-min; d++ {
		assert.Equal(t, min+d, Wrap(max+d, min, max))
		assert.Equal(t, max-d, Wrap(min-d, min, max))
	}
}

func Test_WrapDegenerateRange(t *testing.T) {
	assert.Equal(t, 5, Wrap(5, 5, 5))

	// min == max has no meaningful wrap; these pin what the formulas produce.
	assert.Equal(t, 7, Wrap(7, 5, 5))
	assert.Equal(t, 3, Wrap(3, 5, 5))
	assert.Equal(t, float32(5.5), Wrap(float32(5.5), 5, 5))
}

func Test_WrapInvertedRange(t *testing.T) {
	// min > max is garbage in, garbage out; the value is still deterministic.
	assert.Equal(t, 15, Wrap(5, 10, 0))
	assert.Equal(t, -15, Wrap(-5, 10, 0))
}

func Test_WrapFloat32Formula(t *testing.T) {
	value, min, max := float32(-0.1), float32(0.3), float32(0.7)
	want := max - (min - value)
	assert.Equal(t, math.Float32bits(want), math.Float32bits(Wrap(value, min, max)))

	value = float32(0.9)
	want = (value - max) + min
	assert.Equal(t, math.Float32bits(want), math.Float32bits(Wrap(value, min, max)))
}

func Test_WrapNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Wrap(math.NaN(), 0, 1)))
}

func Test_ToBool(t *testing.T) {
	assert.True(t, ToBool(1))
	assert.True(t, ToBool(int8(127)))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(-1))
	assert.True(t, ToBool(uint(3)))
}

func Test_BoolToInt(t *testing.T) {
	assert.Equal(t, 1, BoolToInt(true))
	assert.Equal(t, 0, BoolToInt(false))
	assert.True(t, ToBool(BoolToInt(true)))
	assert.False(t, ToBool(BoolToInt(false)))
}
