package model

import (
	"github.com/fluterlabs/reward-escrow/internal/types"
	"github.com/fluterlabs/reward-escrow/pkg"
)

const EscrowLockCollection = "escrow_locks"

// EscrowLockDocument is one escrow lock per (main asset, minter) pair. The
// document id is the deterministic escrow key, which doubles as the shard
// accounts' authority tag on the ledger.
type EscrowLockDocument struct {
	ID                   string            `bson:"_id"`
	MainAsset            string            `bson:"main_asset"`
	RewardAsset          string            `bson:"reward_asset"`
	Minter               string            `bson:"minter"`
	State                types.EscrowState `bson:"state"`
	TotalRewardValue     uint64            `bson:"total_reward_value"`
	RemainingRewardValue uint64            `bson:"remaining_reward_value"`
	ValuePerShard        uint64            `bson:"value_per_shard"`
	TotalMainSupply      uint64            `bson:"total_main_supply"`
	BurnedTokenAmount    uint64            `bson:"burned_token_amount"`
	ShardAccounts        []string          `bson:"shard_accounts"`
	CreatedAt            int64             `bson:"created_at"`
	ExpiresAt            int64             `bson:"expires_at"`
	ExpiryNotified       bool              `bson:"expiry_notified"`
}

func NewEscrowLockDocument(
	mainAsset, rewardAsset, minter string,
	rewardValue, valuePerShard, mainSupply uint64,
	shardAccounts []string,
	createdAt, expiresAt int64,
) *EscrowLockDocument {
	return &EscrowLockDocument{
		ID:                   pkg.DeriveEscrowKey(mainAsset, minter),
		MainAsset:            mainAsset,
		RewardAsset:          rewardAsset,
		Minter:               minter,
		State:                types.StateActive,
		TotalRewardValue:     rewardValue,
		RemainingRewardValue: rewardValue,
		ValuePerShard:        valuePerShard,
		TotalMainSupply:      mainSupply,
		ShardAccounts:        shardAccounts,
		CreatedAt:            createdAt,
		ExpiresAt:            expiresAt,
	}
}
