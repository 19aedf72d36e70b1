package escrow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fluterlabs/reward-escrow/internal/types"
)

func validReclaimParams() ReclaimParams {
	return ReclaimParams{
		MainAsset:     testMainAsset,
		Minter:        testMinter,
		RewardAccount: testSourceAcct,
	}
}

func TestReclaim(t *testing.T) {
	env := newTestEnv(t, testNow)
	shards := env.setupShardAccounts(t, 0)

	// a partial redemption already drew down the last shard
	balances := []uint64{100, 100, 100, 100, 75}
	for i, shard := range shards {
		require.NoError(t, env.ledger.Mint(shard, balances[i]))
	}

	// expiring exactly now is enough: the boundary instant is reclaimable
	env.db.On("GetEscrowLock", mock.Anything, testMainAsset, testMinter).
		Return(activeLockDoc(shards, testNow.Unix()), nil).Once()
	env.db.On("CloseEscrowLock", mock.Anything, testMainAsset, testMinter).Return(nil).Once()
	env.db.On("IncrementMinterClaimStats", mock.Anything, testMinter, uint64(475)).
		Return(nil).Once()
	env.emitter.On("EmitRewardsReclaimedEvent", mock.Anything, &types.RewardsReclaimedEvent{
		MainAsset:      testMainAsset,
		Minter:         testMinter,
		TotalWithdrawn: 475,
		Timestamp:      testNow.Unix(),
	}).Return(nil).Once()

	totalWithdrawn, opErr := env.service.Reclaim(t.Context(), testMinter, validReclaimParams())
	require.Nil(t, opErr)
	assert.Equal(t, uint64(475), totalWithdrawn)

	assert.Equal(t, uint64(475), env.balance(t, testSourceAcct))
	for _, shard := range shards {
		assert.Equal(t, uint64(0), env.balance(t, shard))
	}
}

func TestReclaimDrainedLock(t *testing.T) {
	env := newTestEnv(t, testNow)
	shards := env.setupShardAccounts(t, 0)

	lockDoc := activeLockDoc(shards, testNow.Unix())
	lockDoc.RemainingRewardValue = 0

	env.db.On("GetEscrowLock", mock.Anything, testMainAsset, testMinter).
		Return(lockDoc, nil).Once()
	env.db.On("CloseEscrowLock", mock.Anything, testMainAsset, testMinter).Return(nil).Once()
	env.db.On("IncrementMinterClaimStats", mock.Anything, testMinter, uint64(0)).
		Return(nil).Once()
	env.emitter.On("EmitRewardsReclaimedEvent", mock.Anything, mock.Anything).Return(nil).Once()

	// reclaiming an empty lock still closes it, just moves nothing
	totalWithdrawn, opErr := env.service.Reclaim(t.Context(), testMinter, validReclaimParams())
	require.Nil(t, opErr)
	assert.Equal(t, uint64(0), totalWithdrawn)
	assert.Equal(t, uint64(0), env.balance(t, testSourceAcct))
}

func TestReclaimValidation(t *testing.T) {
	tests := []struct {
		name         string
		caller       string
		missing      bool
		state        types.EscrowState
		expiresAt    int64
		expectedCode types.ErrorCode
	}{
		{
			name:         "lock not found",
			caller:       testMinter,
			missing:      true,
			expectedCode: types.EscrowNotFound,
		},
		{
			name:         "lock already closed",
			caller:       testMinter,
			state:        types.StateClosed,
			expiresAt:    testNow.Unix(),
			expectedCode: types.EscrowNotFound,
		},
		{
			name:         "not expired yet",
			caller:       testMinter,
			state:        types.StateActive,
			expiresAt:    testNow.Add(time.Second).Unix(),
			expectedCode: types.EscrowNotExpired,
		},
		{
			name:         "caller is not the minter",
			caller:       testDistributor,
			state:        types.StateActive,
			expiresAt:    testNow.Unix(),
			expectedCode: types.UnauthorizedMinter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testNow)
			shards := env.setupShardAccounts(t, 0)
			for _, shard := range shards {
				require.NoError(t, env.ledger.Mint(shard, 100))
			}

			if tt.missing {
				env.db.On("GetEscrowLock", mock.Anything, testMainAsset, testMinter).
					Return(nil, notFound()).Once()
			} else {
				lockDoc := activeLockDoc(shards, tt.expiresAt)
				lockDoc.State = tt.state
				env.db.On("GetEscrowLock", mock.Anything, testMainAsset, testMinter).
					Return(lockDoc, nil).Once()
			}

			totalWithdrawn, opErr := env.service.Reclaim(t.Context(), tt.caller, validReclaimParams())
			require.NotNil(t, opErr)
			assert.Equal(t, uint64(0), totalWithdrawn)
			assert.Equal(t, tt.expectedCode, opErr.ErrorCode)

			// a rejected reclaim leaves the shards funded
			for _, shard := range shards {
				assert.Equal(t, uint64(100), env.balance(t, shard))
			}
		})
	}
}
