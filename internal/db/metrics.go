package db

import (
	"context"
	"time"

	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveNewEscrowLock(ctx context.Context, lockDoc *model.EscrowLockDocument) error {
	return d.run("SaveNewEscrowLock", func() error {
		return d.db.SaveNewEscrowLock(ctx, lockDoc)
	})
}

func (d *DbWithMetrics) GetEscrowLock(ctx context.Context, mainAsset, minter string) (result *model.EscrowLockDocument, err error) {
	//nolint:errcheck
	d.run("GetEscrowLock", func() error {
		result, err = d.db.GetEscrowLock(ctx, mainAsset, minter)
		return err
	})

	return
}

func (d *DbWithMetrics) GetEscrowLocksByMainAsset(ctx context.Context, mainAsset string) (result []model.EscrowLockDocument, err error) {
	//nolint:errcheck
	d.run("GetEscrowLocksByMainAsset", func() error {
		result, err = d.db.GetEscrowLocksByMainAsset(ctx, mainAsset)
		return err
	})

	return
}

func (d *DbWithMetrics) UpdateEscrowLockOnRedeem(ctx context.Context, mainAsset, minter string, burnAmount, rewardAmount uint64) error {
	return d.run("UpdateEscrowLockOnRedeem", func() error {
		return d.db.UpdateEscrowLockOnRedeem(ctx, mainAsset, minter, burnAmount, rewardAmount)
	})
}

func (d *DbWithMetrics) CloseEscrowLock(ctx context.Context, mainAsset, minter string) error {
	return d.run("CloseEscrowLock", func() error {
		return d.db.CloseEscrowLock(ctx, mainAsset, minter)
	})
}

func (d *DbWithMetrics) FindExpiredEscrowLocks(ctx context.Context, now int64, limit uint64) (result []model.EscrowLockDocument, err error) {
	//nolint:errcheck
	d.run("FindExpiredEscrowLocks", func() error {
		result, err = d.db.FindExpiredEscrowLocks(ctx, now, limit)
		return err
	})

	return
}

func (d *DbWithMetrics) MarkExpiryNotified(ctx context.Context, mainAsset, minter string) error {
	return d.run("MarkExpiryNotified", func() error {
		return d.db.MarkExpiryNotified(ctx, mainAsset, minter)
	})
}

func (d *DbWithMetrics) SaveNewMinter(ctx context.Context, minterDoc *model.MinterDocument) error {
	return d.run("SaveNewMinter", func() error {
		return d.db.SaveNewMinter(ctx, minterDoc)
	})
}

func (d *DbWithMetrics) GetMinter(ctx context.Context, minter string) (result *model.MinterDocument, err error) {
	//nolint:errcheck
	d.run("GetMinter", func() error {
		result, err = d.db.GetMinter(ctx, minter)
		return err
	})

	return
}

func (d *DbWithMetrics) IncrementMinterLockStats(ctx context.Context, minter string, rewardsLocked uint64) error {
	return d.run("IncrementMinterLockStats", func() error {
		return d.db.IncrementMinterLockStats(ctx, minter, rewardsLocked)
	})
}

func (d *DbWithMetrics) IncrementMinterClaimStats(ctx context.Context, minter string, rewardsClaimed uint64) error {
	return d.run("IncrementMinterClaimStats", func() error {
		return d.db.IncrementMinterClaimStats(ctx, minter, rewardsClaimed)
	})
}

func (d *DbWithMetrics) SaveNewDistributor(ctx context.Context, distributorDoc *model.DistributorDocument) error {
	return d.run("SaveNewDistributor", func() error {
		return d.db.SaveNewDistributor(ctx, distributorDoc)
	})
}

func (d *DbWithMetrics) GetDistributor(ctx context.Context, distributor string) (result *model.DistributorDocument, err error) {
	//nolint:errcheck
	d.run("GetDistributor", func() error {
		result, err = d.db.GetDistributor(ctx, distributor)
		return err
	})

	return
}

func (d *DbWithMetrics) IncrementDistributorStats(ctx context.Context, distributor string, tokensBurned, rewardsRedeemed uint64) error {
	return d.run("IncrementDistributorStats", func() error {
		return d.db.IncrementDistributorStats(ctx, distributor, tokensBurned, rewardsRedeemed)
	})
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	// not found is an expected outcome, not a db failure
	failure := err != nil && !IsNotFoundError(err) && !IsDuplicateKeyError(err)
	metrics.RecordDbLatency(time.Since(start), method, failure)

	return err
}
