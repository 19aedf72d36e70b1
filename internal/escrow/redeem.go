package escrow

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fluterlabs/reward-escrow/internal/db"
	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
	"github.com/fluterlabs/reward-escrow/internal/types"
	"github.com/fluterlabs/reward-escrow/pkg"
)

type RedeemParams struct {
	MainAsset string
	Minter    string
	// MainTokenAccount is the caller's main-asset account the burn debits.
	MainTokenAccount string
	// RewardAccount is the caller's reward-asset account credited with the
	// redeemed share.
	RewardAccount string
	BurnAmount    uint64
}

// RedeemResult reports what a redemption burned and paid out.
type RedeemResult struct {
	TokensBurned         uint64
	RewardsRedeemed      uint64
	RemainingRewardValue uint64
}

// Redeem burns the caller's main tokens and pays out the proportional share
// of the remaining locked reward. Redemption is only legal strictly before
// expiry; the boundary instant belongs to Reclaim.
func (s *Service) Redeem(
	ctx context.Context, caller string, params RedeemParams,
) (result *RedeemResult, opErr *types.Error) {
	start := time.Now()
	defer func() {
		metrics.RecordEscrowOpDuration(time.Since(start), "redeem", opErr != nil)
	}()

	lockDoc, err := s.db.GetEscrowLock(ctx, params.MainAsset, params.Minter)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.EscrowNotFound,
				"escrow lock not found",
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to load escrow lock: %w", err),
		)
	}
	if lockDoc.State != types.StateActive {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.EscrowNotFound,
			"escrow lock is closed",
		)
	}

	now := s.clock.Now().Unix()
	if now >= lockDoc.ExpiresAt {
		return nil, types.NewErrorWithMsg(
			http.StatusConflict, types.EscrowExpired,
			"escrow lock has expired",
		)
	}

	if params.BurnAmount == 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount,
			"burn amount must be positive",
		)
	}

	account, err := s.ledger.Account(params.MainTokenAccount)
	if err != nil {
		return nil, types.NewError(
			http.StatusBadRequest, types.ValidationError,
			fmt.Errorf("main token account: %w", err),
		)
	}
	if account.Balance < params.BurnAmount {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InsufficientTokenBalance,
			"burn amount exceeds main token balance",
		)
	}

	rewardAmount, calcErr := ProportionalReward(
		params.BurnAmount, lockDoc.RemainingRewardValue, lockDoc.TotalMainSupply,
	)
	if calcErr != nil {
		return nil, types.NewError(
			http.StatusInternalServerError, types.CalculationOverflow, calcErr,
		)
	}
	// unreachable while burnAmount <= totalMainSupply; guards a caller
	// burning more than the nominal supply
	if rewardAmount > lockDoc.RemainingRewardValue {
		return nil, types.NewErrorWithMsg(
			http.StatusInternalServerError, types.InsufficientFunds,
			"computed reward exceeds remaining escrow value",
		)
	}

	allocations := SplitWithRemainder(rewardAmount, ShardCount)

	// every shard must be able to cover its allocation before anything is
	// burned, so a failed payout can never strand a completed burn
	for i, allocation := range allocations {
		if allocation == 0 {
			continue
		}
		shard, err := s.ledger.Account(lockDoc.ShardAccounts[i])
		if err != nil {
			return nil, types.NewError(
				http.StatusInternalServerError, types.TransferFailed,
				fmt.Errorf("shard account %d: %w", i, err),
			)
		}
		if shard.Balance < allocation {
			return nil, types.NewErrorWithMsg(
				http.StatusInternalServerError, types.InsufficientFunds,
				fmt.Sprintf("shard %d cannot cover its allocation", i),
			)
		}
	}

	if err := s.ledger.Burn(caller, params.MainTokenAccount, params.BurnAmount); err != nil {
		return nil, types.NewError(
			http.StatusInternalServerError, types.BurnFailed,
			fmt.Errorf("failed to burn main tokens: %w", err),
		)
	}

	authority := pkg.DeriveEscrowKey(params.MainAsset, params.Minter)
	for i, allocation := range allocations {
		if allocation == 0 {
			continue
		}
		if err := s.ledger.Transfer(authority, lockDoc.ShardAccounts[i], params.RewardAccount, allocation); err != nil {
			return nil, types.NewError(
				http.StatusInternalServerError, types.TransferFailed,
				fmt.Errorf("failed to pay out from shard %d: %w", i, err),
			)
		}
	}

	if err := s.db.UpdateEscrowLockOnRedeem(
		ctx, params.MainAsset, params.Minter, params.BurnAmount, rewardAmount,
	); err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to update escrow lock: %w", err),
		)
	}

	remaining := lockDoc.RemainingRewardValue - rewardAmount

	if err := s.db.IncrementDistributorStats(ctx, caller, params.BurnAmount, rewardAmount); err != nil {
		log.Error().Err(err).Str("distributor", caller).Msg("failed to update distributor stats")
	}

	metrics.RecordRedemption(params.BurnAmount, rewardAmount)

	ev := &types.RewardsRedeemedEvent{
		MainAsset:            params.MainAsset,
		User:                 caller,
		TokensBurned:         params.BurnAmount,
		RewardsRedeemed:      rewardAmount,
		RemainingRewardValue: remaining,
		Timestamp:            now,
	}
	if err := s.emitter.EmitRewardsRedeemedEvent(ctx, ev); err != nil {
		log.Error().Err(err).Str("main_asset", params.MainAsset).Msg("failed to emit rewards redeemed event")
	}

	log.Info().
		Str("main_asset", params.MainAsset).
		Str("user", caller).
		Uint64("tokens_burned", params.BurnAmount).
		Uint64("rewards_redeemed", rewardAmount).
		Uint64("remaining_reward_value", remaining).
		Msg("rewards redeemed")

	return &RedeemResult{
		TokensBurned:         params.BurnAmount,
		RewardsRedeemed:      rewardAmount,
		RemainingRewardValue: remaining,
	}, nil
}
