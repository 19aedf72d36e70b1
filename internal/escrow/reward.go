package escrow

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// ProportionalReward computes floor(burnAmount * remainingRewardValue /
// totalMainSupply). The multiplication is widened through big-int math so it
// cannot wrap before the division; the result must still fit a uint64.
func ProportionalReward(burnAmount, remainingRewardValue, totalMainSupply uint64) (uint64, error) {
	if totalMainSupply == 0 {
		return 0, fmt.Errorf("total main supply is zero")
	}

	reward := sdkmath.NewIntFromUint64(burnAmount).
		Mul(sdkmath.NewIntFromUint64(remainingRewardValue)).
		Quo(sdkmath.NewIntFromUint64(totalMainSupply))

	if !reward.IsUint64() {
		return 0, fmt.Errorf("reward %s does not fit into uint64", reward)
	}

	return reward.Uint64(), nil
}
