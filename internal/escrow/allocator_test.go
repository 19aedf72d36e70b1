package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEven(t *testing.T) {
	tests := []struct {
		name        string
		total       uint64
		shards      int
		expected    uint64
		expectError bool
	}{
		{
			name:     "exact division",
			total:    500,
			shards:   5,
			expected: 100,
		},
		{
			name:        "remainder rejected",
			total:       501,
			shards:      5,
			expectError: true,
		},
		{
			name:     "zero total",
			total:    0,
			shards:   5,
			expected: 0,
		},
		{
			name:     "single shard takes all",
			total:    7,
			shards:   1,
			expected: 7,
		},
		{
			name:        "zero shards",
			total:       100,
			shards:      0,
			expectError: true,
		},
		{
			name:        "total smaller than shard count",
			total:       3,
			shards:      5,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perShard, err := SplitEven(tt.total, tt.shards)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, perShard)
		})
	}
}

func TestSplitWithRemainder(t *testing.T) {
	tests := []struct {
		name     string
		amount   uint64
		shards   int
		expected []uint64
	}{
		{
			name:     "exact division",
			amount:   125,
			shards:   5,
			expected: []uint64{25, 25, 25, 25, 25},
		},
		{
			name:     "remainder goes to lowest indices",
			amount:   127,
			shards:   5,
			expected: []uint64{26, 26, 25, 25, 25},
		},
		{
			name:     "amount below shard count",
			amount:   1,
			shards:   5,
			expected: []uint64{1, 0, 0, 0, 0},
		},
		{
			name:     "zero amount",
			amount:   0,
			shards:   5,
			expected: []uint64{0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitWithRemainder(tt.amount, tt.shards))
		})
	}
}

func TestSplitWithRemainderConservation(t *testing.T) {
	// the allocations must sum back to the input with at most one unit of
	// spread, whatever the amount
	for amount := uint64(0); amount < 1000; amount += 13 {
		allocations := SplitWithRemainder(amount, ShardCount)
		require.Len(t, allocations, ShardCount)

		var sum, minAlloc, maxAlloc uint64
		minAlloc = allocations[0]
		for _, a := range allocations {
			sum += a
			if a < minAlloc {
				minAlloc = a
			}
			if a > maxAlloc {
				maxAlloc = a
			}
		}
		require.Equal(t, amount, sum)
		require.LessOrEqual(t, maxAlloc-minAlloc, uint64(1))
	}
}
