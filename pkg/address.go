package pkg

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Escrow lock records and their shard accounts are addressed by a stable
// derivation from the lock parameters. The derived key is a lookup contract
// shared with the hosting ledger, not a security mechanism.
const (
	escrowKeyTag = "escrow"
	shardKeyTag  = "escrow-shard"
)

// DeriveEscrowKey returns the key of the escrow lock record for a
// (mainAsset, minter) pair. The same value tags the shard accounts as their
// sole authority.
func DeriveEscrowKey(mainAsset, minter string) string {
	return deriveKey(escrowKeyTag, mainAsset, minter)
}

// DeriveShardKey returns the key of the shard account at index for the given lock.
func DeriveShardKey(mainAsset, minter string, index int) string {
	return deriveKey(shardKeyTag, mainAsset, minter, fmt.Sprintf("%d", index))
}

func deriveKey(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		// length prefix keeps ("ab","c") and ("a","bc") distinct
		fmt.Fprintf(h, "%d:%s", len(part), part)
	}
	return hex.EncodeToString(h.Sum(nil))
}
