package escrow

import "fmt"

// ShardCount is the number of escrow accounts the locked reward is sharded
// across. The arithmetic below works for any positive value; 5 matches the
// account layout provisioned by the hosting environment.
const ShardCount = 5

// SplitEven divides total across shards and fails on any remainder. Lock
// funding has no remainder owner, so the initial amount must divide exactly.
func SplitEven(total uint64, shards int) (uint64, error) {
	if shards <= 0 {
		return 0, fmt.Errorf("shard count must be positive, got %d", shards)
	}

	perShard := total / uint64(shards)
	if perShard*uint64(shards) != total {
		return 0, fmt.Errorf("%d does not divide evenly across %d shards", total, shards)
	}

	return perShard, nil
}

// SplitWithRemainder divides amount across shards, assigning the remainder
// one unit at a time to the lowest shard indices. The returned quantities
// always sum to amount exactly and differ by at most one unit, in a fixed
// order reproducible for auditing.
func SplitWithRemainder(amount uint64, shards int) []uint64 {
	if shards <= 0 {
		return nil
	}

	base := amount / uint64(shards)
	remainder := amount % uint64(shards)

	allocations := make([]uint64, shards)
	for i := range allocations {
		allocations[i] = base
		if uint64(i) < remainder {
			allocations[i]++
		}
	}

	return allocations
}
