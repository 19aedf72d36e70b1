package escrow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
	"github.com/fluterlabs/reward-escrow/internal/types"
	"github.com/fluterlabs/reward-escrow/internal/utils/poller"
)

func (s *Service) StartExpiryChecker(ctx context.Context) {
	expiryCheckerPoller := poller.NewPoller(
		"expiry-checker",
		s.cfg.Poller.ExpiryCheckerPollingInterval,
		s.checkExpiry,
	)
	go expiryCheckerPoller.Start(ctx)
}

// checkExpiry notifies observers of locks that crossed their expiry while
// still active. It never moves funds: reclamation stays a minter decision.
func (s *Service) checkExpiry(ctx context.Context) *types.Error {
	now := s.clock.Now().Unix()
	expiredLocks, err := s.db.FindExpiredEscrowLocks(ctx, now, s.cfg.Poller.ExpiredLocksLimit)
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to find expired escrow locks: %w", err),
		)
	}

	metrics.RecordExpiredLocksCount(len(expiredLocks))

	for _, lockDoc := range expiredLocks {
		log.Debug().
			Str("main_asset", lockDoc.MainAsset).
			Str("minter", lockDoc.Minter).
			Int64("expires_at", lockDoc.ExpiresAt).
			Uint64("remaining_reward_value", lockDoc.RemainingRewardValue).
			Msg("escrow lock expired, notifying")

		ev := &types.EscrowExpiredEvent{
			MainAsset:       lockDoc.MainAsset,
			Minter:          lockDoc.Minter,
			UnclaimedAmount: lockDoc.RemainingRewardValue,
			Timestamp:       now,
		}
		if err := s.emitter.EmitEscrowExpiredEvent(ctx, ev); err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("failed to emit escrow expired event: %w", err),
			)
		}

		if err := s.db.MarkExpiryNotified(ctx, lockDoc.MainAsset, lockDoc.Minter); err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("failed to mark escrow lock as notified: %w", err),
			)
		}
	}

	return nil
}
