package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveEscrowKey(t *testing.T) {
	key := DeriveEscrowKey("main-token", "minter-1")
	require.Len(t, key, 64)

	assert.Equal(t, key, DeriveEscrowKey("main-token", "minter-1"))
	assert.NotEqual(t, key, DeriveEscrowKey("main-token", "minter-2"))
	assert.NotEqual(t, key, DeriveEscrowKey("other-token", "minter-1"))
	// boundary shifts between the parts must not collide
	assert.NotEqual(t, DeriveEscrowKey("ab", "c"), DeriveEscrowKey("a", "bc"))
}

func TestDeriveShardKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := range 5 {
		key := DeriveShardKey("main-token", "minter-1", i)
		require.Len(t, key, 64)
		assert.False(t, seen[key], "shard keys must be distinct")
		seen[key] = true
	}

	assert.NotEqual(t, DeriveShardKey("main-token", "minter-1", 0), DeriveEscrowKey("main-token", "minter-1"))
}
