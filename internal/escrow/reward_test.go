package escrow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportionalReward(t *testing.T) {
	tests := []struct {
		name        string
		burn        uint64
		remaining   uint64
		supply      uint64
		expected    uint64
		expectError bool
	}{
		{
			name:      "quarter of supply yields quarter of pool",
			burn:      250,
			remaining: 500,
			supply:    1000,
			expected:  125,
		},
		{
			name:      "fractional result floors",
			burn:      3,
			remaining: 500,
			supply:    1000,
			expected:  1,
		},
		{
			name:      "tiny burn against large supply floors to zero",
			burn:      1,
			remaining: 5,
			supply:    1000,
			expected:  0,
		},
		{
			name:      "depleted pool yields zero",
			burn:      100,
			remaining: 0,
			supply:    1000,
			expected:  0,
		},
		{
			name:      "full supply drains the pool",
			burn:      1000,
			remaining: 500,
			supply:    1000,
			expected:  500,
		},
		{
			name:      "large operands survive the widening",
			burn:      math.MaxUint64 / 2,
			remaining: 2,
			supply:    math.MaxUint64,
			expected:  0,
		},
		{
			name:      "product beyond uint64 still divides back down",
			burn:      math.MaxUint64,
			remaining: math.MaxUint64,
			supply:    math.MaxUint64,
			expected:  math.MaxUint64,
		},
		{
			name:        "zero supply",
			burn:        100,
			remaining:   500,
			supply:      0,
			expectError: true,
		},
		{
			name:        "result exceeds uint64",
			burn:        math.MaxUint64,
			remaining:   math.MaxUint64,
			supply:      1,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reward, err := ProportionalReward(tt.burn, tt.remaining, tt.supply)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reward)
		})
	}
}
