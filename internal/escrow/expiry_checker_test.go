package escrow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/types"
)

func expiredLockDoc(minter string, remaining uint64) model.EscrowLockDocument {
	return model.EscrowLockDocument{
		MainAsset:            testMainAsset,
		RewardAsset:          testRewardAsset,
		Minter:               minter,
		State:                types.StateActive,
		TotalRewardValue:     500,
		RemainingRewardValue: remaining,
		ExpiresAt:            testNow.Add(-1).Unix(),
	}
}

func TestCheckExpiry(t *testing.T) {
	env := newTestEnv(t, testNow)

	expired := []model.EscrowLockDocument{
		expiredLockDoc("minter-a", 475),
		expiredLockDoc("minter-b", 0),
	}
	env.db.On("FindExpiredEscrowLocks", mock.Anything, testNow.Unix(), uint64(100)).
		Return(expired, nil).Once()

	for _, lockDoc := range expired {
		env.emitter.On("EmitEscrowExpiredEvent", mock.Anything, &types.EscrowExpiredEvent{
			MainAsset:       testMainAsset,
			Minter:          lockDoc.Minter,
			UnclaimedAmount: lockDoc.RemainingRewardValue,
			Timestamp:       testNow.Unix(),
		}).Return(nil).Once()
		env.db.On("MarkExpiryNotified", mock.Anything, testMainAsset, lockDoc.Minter).
			Return(nil).Once()
	}

	opErr := env.service.checkExpiry(t.Context())
	require.Nil(t, opErr)
}

func TestCheckExpiryNothingExpired(t *testing.T) {
	env := newTestEnv(t, testNow)

	env.db.On("FindExpiredEscrowLocks", mock.Anything, testNow.Unix(), uint64(100)).
		Return([]model.EscrowLockDocument{}, nil).Once()

	opErr := env.service.checkExpiry(t.Context())
	require.Nil(t, opErr)
}

func TestCheckExpiryEmitFailureRetriesNextCycle(t *testing.T) {
	env := newTestEnv(t, testNow)

	env.db.On("FindExpiredEscrowLocks", mock.Anything, testNow.Unix(), uint64(100)).
		Return([]model.EscrowLockDocument{expiredLockDoc("minter-a", 475)}, nil).Once()
	env.emitter.On("EmitEscrowExpiredEvent", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	// the lock stays unnotified, so the next poll picks it up again
	opErr := env.service.checkExpiry(t.Context())
	require.NotNil(t, opErr)
	assert.Equal(t, types.InternalServiceError, opErr.ErrorCode)
	env.db.AssertNotCalled(t, "MarkExpiryNotified", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckExpiryDbFailure(t *testing.T) {
	env := newTestEnv(t, testNow)

	env.db.On("FindExpiredEscrowLocks", mock.Anything, testNow.Unix(), uint64(100)).
		Return(nil, errors.New("connection reset")).Once()

	opErr := env.service.checkExpiry(t.Context())
	require.NotNil(t, opErr)
	assert.Equal(t, types.InternalServiceError, opErr.ErrorCode)
}
