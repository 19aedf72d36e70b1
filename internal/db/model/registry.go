package model

const (
	MinterCollection      = "minters"
	DistributorCollection = "distributors"
)

// MinterDocument aggregates lifetime stats for a registered minter.
type MinterDocument struct {
	ID                  string `bson:"_id"` // minter principal
	TotalEscrowsCreated uint64 `bson:"total_escrows_created"`
	TotalRewardsLocked  uint64 `bson:"total_rewards_locked"`
	TotalRewardsClaimed uint64 `bson:"total_rewards_claimed"`
	CreatedAt           int64  `bson:"created_at"`
}

// DistributorDocument aggregates lifetime stats for a registered redeemer.
type DistributorDocument struct {
	ID                   string `bson:"_id"` // distributor principal
	TotalTokensBurned    uint64 `bson:"total_tokens_burned"`
	TotalRewardsRedeemed uint64 `bson:"total_rewards_redeemed"`
	CreatedAt            int64  `bson:"created_at"`
}
