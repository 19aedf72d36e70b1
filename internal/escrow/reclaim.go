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

type ReclaimParams struct {
	MainAsset string
	Minter    string
	// RewardAccount is the minter's reward-asset account the shard balances
	// are returned to.
	RewardAccount string
}

// Reclaim drains the live shard balances back to the minter once the lock
// has expired and closes the record. now == expiresAt is reclaimable: the
// redemption and reclamation windows meet without overlap or gap.
func (s *Service) Reclaim(
	ctx context.Context, caller string, params ReclaimParams,
) (totalWithdrawn uint64, opErr *types.Error) {
	start := time.Now()
	defer func() {
		metrics.RecordEscrowOpDuration(time.Since(start), "reclaim", opErr != nil)
	}()

	lockDoc, err := s.db.GetEscrowLock(ctx, params.MainAsset, params.Minter)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, types.NewErrorWithMsg(
				http.StatusNotFound, types.EscrowNotFound,
				"escrow lock not found",
			)
		}
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to load escrow lock: %w", err),
		)
	}
	if lockDoc.State != types.StateActive {
		return 0, types.NewErrorWithMsg(
			http.StatusNotFound, types.EscrowNotFound,
			"escrow lock is closed",
		)
	}

	now := s.clock.Now().Unix()
	if now < lockDoc.ExpiresAt {
		return 0, types.NewErrorWithMsg(
			http.StatusConflict, types.EscrowNotExpired,
			"escrow lock has not expired yet",
		)
	}

	if caller != lockDoc.Minter {
		return 0, types.NewErrorWithMsg(
			http.StatusForbidden, types.UnauthorizedMinter,
			"only the minter may reclaim unredeemed funds",
		)
	}

	authority := pkg.DeriveEscrowKey(params.MainAsset, params.Minter)
	for i, shardKey := range lockDoc.ShardAccounts {
		shard, err := s.ledger.Account(shardKey)
		if err != nil {
			return 0, types.NewError(
				http.StatusInternalServerError, types.TransferFailed,
				fmt.Errorf("shard account %d: %w", i, err),
			)
		}
		if shard.Balance == 0 {
			continue
		}
		if err := s.ledger.Transfer(authority, shardKey, params.RewardAccount, shard.Balance); err != nil {
			return 0, types.NewError(
				http.StatusInternalServerError, types.TransferFailed,
				fmt.Errorf("failed to drain shard %d: %w", i, err),
			)
		}
		totalWithdrawn += shard.Balance
	}

	if err := s.db.CloseEscrowLock(ctx, params.MainAsset, params.Minter); err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to close escrow lock: %w", err),
		)
	}

	if err := s.db.IncrementMinterClaimStats(ctx, params.Minter, totalWithdrawn); err != nil {
		log.Error().Err(err).Str("minter", params.Minter).Msg("failed to update minter stats")
	}

	ev := &types.RewardsReclaimedEvent{
		MainAsset:      params.MainAsset,
		Minter:         params.Minter,
		TotalWithdrawn: totalWithdrawn,
		Timestamp:      now,
	}
	if err := s.emitter.EmitRewardsReclaimedEvent(ctx, ev); err != nil {
		log.Error().Err(err).Str("main_asset", params.MainAsset).Msg("failed to emit rewards reclaimed event")
	}

	log.Info().
		Str("main_asset", params.MainAsset).
		Str("minter", params.Minter).
		Uint64("total_withdrawn", totalWithdrawn).
		Msg("expired escrow reclaimed")

	return totalWithdrawn, nil
}
