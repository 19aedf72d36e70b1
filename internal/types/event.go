package types

type EventType string

func (e EventType) String() string {
	return string(e)
}

const (
	EventEscrowLocked          EventType = "rewardescrow.v1.EventEscrowLocked"
	EventRewardsRedeemed       EventType = "rewardescrow.v1.EventRewardsRedeemed"
	EventRewardsReclaimed      EventType = "rewardescrow.v1.EventRewardsReclaimed"
	EventEscrowExpired         EventType = "rewardescrow.v1.EventEscrowExpired"
	EventMinterRegistered      EventType = "rewardescrow.v1.EventMinterRegistered"
	EventDistributorRegistered EventType = "rewardescrow.v1.EventDistributorRegistered"
)

// EscrowLockedEvent is emitted once per successful Lock, after all shard
// accounts are funded.
type EscrowLockedEvent struct {
	MainAsset        string `json:"main_asset"`
	RewardAsset      string `json:"reward_asset"`
	Minter           string `json:"minter"`
	TotalRewardValue uint64 `json:"total_reward_value"`
	TotalMainSupply  uint64 `json:"total_main_supply"`
	ExpiresAt        int64  `json:"expires_at"`
	CreatedAt        int64  `json:"created_at"`
}

type RewardsRedeemedEvent struct {
	MainAsset            string `json:"main_asset"`
	User                 string `json:"user"`
	TokensBurned         uint64 `json:"tokens_burned"`
	RewardsRedeemed      uint64 `json:"rewards_redeemed"`
	RemainingRewardValue uint64 `json:"remaining_reward_value"`
	Timestamp            int64  `json:"timestamp"`
}

type RewardsReclaimedEvent struct {
	MainAsset      string `json:"main_asset"`
	Minter         string `json:"minter"`
	TotalWithdrawn uint64 `json:"total_withdrawn"`
	Timestamp      int64  `json:"timestamp"`
}

// EscrowExpiredEvent is a notification only; funds move when the minter
// reclaims, not when the expiry checker observes the deadline.
type EscrowExpiredEvent struct {
	MainAsset       string `json:"main_asset"`
	Minter          string `json:"minter"`
	UnclaimedAmount uint64 `json:"unclaimed_amount"`
	Timestamp       int64  `json:"timestamp"`
}

type MinterRegisteredEvent struct {
	Minter    string `json:"minter"`
	Timestamp int64  `json:"timestamp"`
}

type DistributorRegisteredEvent struct {
	Distributor string `json:"distributor"`
	Timestamp   int64  `json:"timestamp"`
}
