package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer(t *testing.T) {
	l := NewInMemory()
	require.NoError(t, l.CreateAccount("a", "usd", "alice"))
	require.NoError(t, l.CreateAccount("b", "usd", "bob"))
	require.NoError(t, l.Mint("a", 100))

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, l.Transfer("alice", "a", "b", 40))

		src, err := l.Account("a")
		require.NoError(t, err)
		dst, err := l.Account("b")
		require.NoError(t, err)
		assert.Equal(t, uint64(60), src.Balance)
		assert.Equal(t, uint64(40), dst.Balance)
	})
	t.Run("wrong authority", func(t *testing.T) {
		err := l.Transfer("bob", "a", "b", 1)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
	t.Run("insufficient balance leaves both accounts unchanged", func(t *testing.T) {
		err := l.Transfer("alice", "a", "b", 1000)
		require.ErrorIs(t, err, ErrInsufficientFunds)

		src, _ := l.Account("a")
		dst, _ := l.Account("b")
		assert.Equal(t, uint64(60), src.Balance)
		assert.Equal(t, uint64(40), dst.Balance)
	})
	t.Run("unknown account", func(t *testing.T) {
		assert.ErrorIs(t, l.Transfer("alice", "a", "missing", 1), ErrAccountNotFound)
		assert.ErrorIs(t, l.Transfer("alice", "missing", "b", 1), ErrAccountNotFound)
	})
	t.Run("asset mismatch", func(t *testing.T) {
		require.NoError(t, l.CreateAccount("c", "eur", "carol"))
		assert.ErrorIs(t, l.Transfer("alice", "a", "c", 1), ErrAssetMismatch)
	})
}

func TestBurn(t *testing.T) {
	l := NewInMemory()
	require.NoError(t, l.CreateAccount("a", "usd", "alice"))
	require.NoError(t, l.Mint("a", 10))

	require.NoError(t, l.Burn("alice", "a", 4))
	acc, err := l.Account("a")
	require.NoError(t, err)
	assert.Equal(t, uint64(6), acc.Balance)

	assert.ErrorIs(t, l.Burn("bob", "a", 1), ErrNotAuthorized)
	assert.ErrorIs(t, l.Burn("alice", "a", 100), ErrInsufficientFunds)
	assert.ErrorIs(t, l.Burn("alice", "missing", 1), ErrAccountNotFound)
}

func TestCreateAccount(t *testing.T) {
	l := NewInMemory()
	require.NoError(t, l.CreateAccount("a", "usd", "alice"))
	assert.ErrorIs(t, l.CreateAccount("a", "usd", "alice"), ErrAccountExists)
}

func TestMintOverflow(t *testing.T) {
	l := NewInMemory()
	require.NoError(t, l.CreateAccount("a", "usd", "alice"))
	require.NoError(t, l.Mint("a", math.MaxUint64))
	assert.ErrorIs(t, l.Mint("a", 1), ErrOverflow)
}
