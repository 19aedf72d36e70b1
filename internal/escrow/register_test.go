package escrow

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fluterlabs/reward-escrow/internal/db"
	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/types"
)

func TestRegisterMinter(t *testing.T) {
	env := newTestEnv(t, testNow)

	env.db.On("SaveNewMinter", mock.Anything, &model.MinterDocument{
		ID:        testMinter,
		CreatedAt: testNow.Unix(),
	}).Return(nil).Once()
	env.emitter.On("EmitMinterRegisteredEvent", mock.Anything, &types.MinterRegisteredEvent{
		Minter:    testMinter,
		Timestamp: testNow.Unix(),
	}).Return(nil).Once()

	opErr := env.service.RegisterMinter(t.Context(), testMinter)
	require.Nil(t, opErr)
}

func TestRegisterMinterTwice(t *testing.T) {
	env := newTestEnv(t, testNow)

	env.db.On("SaveNewMinter", mock.Anything, mock.Anything).
		Return(&db.DuplicateKeyError{Key: testMinter, Message: "duplicate key"}).Once()

	opErr := env.service.RegisterMinter(t.Context(), testMinter)
	require.NotNil(t, opErr)
	assert.Equal(t, http.StatusConflict, opErr.StatusCode)
	assert.Equal(t, types.ValidationError, opErr.ErrorCode)
}

func TestRegisterDistributor(t *testing.T) {
	env := newTestEnv(t, testNow)

	env.db.On("SaveNewDistributor", mock.Anything, &model.DistributorDocument{
		ID:        testDistributor,
		CreatedAt: testNow.Unix(),
	}).Return(nil).Once()
	env.emitter.On("EmitDistributorRegisteredEvent", mock.Anything, &types.DistributorRegisteredEvent{
		Distributor: testDistributor,
		Timestamp:   testNow.Unix(),
	}).Return(nil).Once()

	opErr := env.service.RegisterDistributor(t.Context(), testDistributor)
	require.Nil(t, opErr)
}

func TestRegisterDistributorTwice(t *testing.T) {
	env := newTestEnv(t, testNow)

	env.db.On("SaveNewDistributor", mock.Anything, mock.Anything).
		Return(&db.DuplicateKeyError{Key: testDistributor, Message: "duplicate key"}).Once()

	opErr := env.service.RegisterDistributor(t.Context(), testDistributor)
	require.NotNil(t, opErr)
	assert.Equal(t, http.StatusConflict, opErr.StatusCode)
	assert.Equal(t, types.ValidationError, opErr.ErrorCode)
}
