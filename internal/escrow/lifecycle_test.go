package escrow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestFullLifecycle walks one lock through fund, partial redemption and
// post-expiry reclamation, checking that every reward unit ends up either
// with the distributor or back with the minter.
func TestFullLifecycle(t *testing.T) {
	env := newTestEnv(t, testNow)
	shards := env.setupShardAccounts(t, 500)

	env.emitter.On("EmitEscrowLockedEvent", mock.Anything, mock.Anything).Return(nil).Once()
	env.emitter.On("EmitRewardsRedeemedEvent", mock.Anything, mock.Anything).Return(nil).Once()
	env.emitter.On("EmitRewardsReclaimedEvent", mock.Anything, mock.Anything).Return(nil).Once()
	env.db.On("SaveNewEscrowLock", mock.Anything, mock.Anything).Return(nil).Once()
	env.db.On("UpdateEscrowLockOnRedeem", mock.Anything, testMainAsset, testMinter, uint64(250), uint64(125)).Return(nil).Once()
	env.db.On("CloseEscrowLock", mock.Anything, testMainAsset, testMinter).Return(nil).Once()
	env.db.On("IncrementMinterLockStats", mock.Anything, testMinter, uint64(500)).Return(nil).Once()
	env.db.On("IncrementDistributorStats", mock.Anything, testDistributor, uint64(250), uint64(125)).Return(nil).Once()
	env.db.On("IncrementMinterClaimStats", mock.Anything, testMinter, uint64(375)).Return(nil).Once()

	// lock: no record yet
	env.db.On("GetEscrowLock", mock.Anything, testMainAsset, testMinter).
		Return(nil, notFound()).Once()

	lockDoc, opErr := env.service.Lock(t.Context(), testMinter, validLockParams(shards))
	require.Nil(t, opErr)

	// redeem a quarter of the supply against the stored record
	env.db.On("GetEscrowLock", mock.Anything, testMainAsset, testMinter).
		Return(lockDoc, nil).Once()
	require.NoError(t, env.ledger.CreateAccount(testBurnAcct, testMainAsset, testDistributor))
	require.NoError(t, env.ledger.Mint(testBurnAcct, 250))
	require.NoError(t, env.ledger.CreateAccount(testPayoutAcct, testRewardAsset, testDistributor))

	result, opErr := env.service.Redeem(t.Context(), testDistributor, validRedeemParams(250))
	require.Nil(t, opErr)
	assert.Equal(t, uint64(125), result.RewardsRedeemed)

	// cross the expiry and reclaim what is left
	afterRedeem := *lockDoc
	afterRedeem.RemainingRewardValue = 375
	afterRedeem.BurnedTokenAmount = 250
	env.db.On("GetEscrowLock", mock.Anything, testMainAsset, testMinter).
		Return(&afterRedeem, nil).Once()

	env.clock.Advance(2 * time.Hour)

	totalWithdrawn, opErr := env.service.Reclaim(t.Context(), testMinter, validReclaimParams())
	require.Nil(t, opErr)
	assert.Equal(t, uint64(375), totalWithdrawn)

	// conservation: distributor share plus reclaimed remainder is the lock
	assert.Equal(t, uint64(125), env.balance(t, testPayoutAcct))
	assert.Equal(t, uint64(375), env.balance(t, testSourceAcct))
	for _, shard := range shards {
		assert.Equal(t, uint64(0), env.balance(t, shard))
	}
}
