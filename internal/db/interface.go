package db

import (
	"context"

	"github.com/fluterlabs/reward-escrow/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error

	SaveNewEscrowLock(ctx context.Context, lockDoc *model.EscrowLockDocument) error
	GetEscrowLock(ctx context.Context, mainAsset, minter string) (*model.EscrowLockDocument, error)
	GetEscrowLocksByMainAsset(ctx context.Context, mainAsset string) ([]model.EscrowLockDocument, error)
	UpdateEscrowLockOnRedeem(ctx context.Context, mainAsset, minter string, burnAmount, rewardAmount uint64) error
	CloseEscrowLock(ctx context.Context, mainAsset, minter string) error
	FindExpiredEscrowLocks(ctx context.Context, now int64, limit uint64) ([]model.EscrowLockDocument, error)
	MarkExpiryNotified(ctx context.Context, mainAsset, minter string) error

	SaveNewMinter(ctx context.Context, minterDoc *model.MinterDocument) error
	GetMinter(ctx context.Context, minter string) (*model.MinterDocument, error)
	IncrementMinterLockStats(ctx context.Context, minter string, rewardsLocked uint64) error
	IncrementMinterClaimStats(ctx context.Context, minter string, rewardsClaimed uint64) error

	SaveNewDistributor(ctx context.Context, distributorDoc *model.DistributorDocument) error
	GetDistributor(ctx context.Context, distributor string) (*model.DistributorDocument, error)
	IncrementDistributorStats(ctx context.Context, distributor string, tokensBurned, rewardsRedeemed uint64) error
}
