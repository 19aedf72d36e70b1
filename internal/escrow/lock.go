package escrow

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fluterlabs/reward-escrow/internal/db"
	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
	"github.com/fluterlabs/reward-escrow/internal/types"
	"github.com/fluterlabs/reward-escrow/pkg"
)

type LockParams struct {
	MainAsset   string
	RewardAsset string
	Minter      string
	// RewardSource is the minter's reward-asset account funding the lock.
	RewardSource  string
	RewardValue   uint64
	MainSupply    uint64
	ExpiresAt     int64
	ShardAccounts []string
}

// Lock funds the shard accounts from the minter's reward account and creates
// the escrow lock record. The operation is all-or-nothing: any failure after
// a partial funding round refunds the shards before returning.
func (s *Service) Lock(
	ctx context.Context, caller string, params LockParams,
) (lockDoc *model.EscrowLockDocument, opErr *types.Error) {
	start := time.Now()
	defer func() {
		metrics.RecordEscrowOpDuration(time.Since(start), "lock", opErr != nil)
	}()

	if params.RewardValue == 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount,
			"reward value must be positive",
		)
	}
	if params.MainSupply == 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount,
			"main token supply must be positive",
		)
	}
	if caller != params.Minter {
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.UnauthorizedCaller,
			"only the minter may lock funds",
		)
	}

	now := s.clock.Now().Unix()
	if params.ExpiresAt <= now {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			"expiry must be after creation time",
		)
	}

	if err := s.validateShardAccounts(params); err != nil {
		return nil, err
	}

	if _, err := s.db.GetEscrowLock(ctx, params.MainAsset, params.Minter); err == nil {
		return nil, types.NewErrorWithMsg(
			http.StatusConflict, types.ValidationError,
			"escrow lock already exists for this asset and minter",
		)
	} else if !db.IsNotFoundError(err) {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to check for existing escrow lock: %w", err),
		)
	}

	perShard, err := SplitEven(params.RewardValue, ShardCount)
	if err != nil {
		return nil, types.NewError(http.StatusBadRequest, types.UnevenDistribution, err)
	}

	for i, shard := range params.ShardAccounts {
		if err := s.ledger.Transfer(caller, params.RewardSource, shard, perShard); err != nil {
			s.refundShards(params, i, perShard)
			return nil, types.NewError(
				http.StatusInternalServerError, types.TransferFailed,
				fmt.Errorf("failed to fund shard %d: %w", i, err),
			)
		}
	}

	lockDoc = model.NewEscrowLockDocument(
		params.MainAsset, params.RewardAsset, params.Minter,
		params.RewardValue, perShard, params.MainSupply,
		params.ShardAccounts, now, params.ExpiresAt,
	)
	if err := s.db.SaveNewEscrowLock(ctx, lockDoc); err != nil {
		s.refundShards(params, ShardCount, perShard)
		if db.IsDuplicateKeyError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusConflict, types.ValidationError,
				"escrow lock already exists for this asset and minter",
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to save escrow lock: %w", err),
		)
	}

	// registry is auxiliary: an unregistered minter is a silent no-op, a db
	// failure must not unwind a lock that already funded and persisted
	if err := s.db.IncrementMinterLockStats(ctx, params.Minter, params.RewardValue); err != nil {
		log.Error().Err(err).Str("minter", params.Minter).Msg("failed to update minter stats")
	}

	s.emitEscrowLockedEvent(ctx, lockDoc)

	log.Info().
		Str("main_asset", params.MainAsset).
		Str("minter", params.Minter).
		Uint64("reward_value", params.RewardValue).
		Uint64("value_per_shard", perShard).
		Int64("expires_at", params.ExpiresAt).
		Msg("escrow lock created")

	return lockDoc, nil
}

// validateShardAccounts checks the preconditions Lock places on its shard
// accounts: exact count, distinct, existing, empty, reward-asset
// denominated and owned by the lock's derived authority.
func (s *Service) validateShardAccounts(params LockParams) *types.Error {
	if len(params.ShardAccounts) != ShardCount {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError,
			fmt.Sprintf("expected %d shard accounts, got %d", ShardCount, len(params.ShardAccounts)),
		)
	}

	authority := pkg.DeriveEscrowKey(params.MainAsset, params.Minter)
	seen := make(map[string]bool, ShardCount)
	for i, shard := range params.ShardAccounts {
		if seen[shard] {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.ValidationError,
				fmt.Sprintf("shard account %d is duplicated", i),
			)
		}
		seen[shard] = true

		acc, err := s.ledger.Account(shard)
		if err != nil {
			return types.NewError(
				http.StatusBadRequest, types.ValidationError,
				fmt.Errorf("shard account %d: %w", i, err),
			)
		}
		if acc.Authority != authority {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.ValidationError,
				fmt.Sprintf("shard account %d is not owned by the escrow authority", i),
			)
		}
		if acc.Asset != params.RewardAsset {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.ValidationError,
				fmt.Sprintf("shard account %d is not denominated in the reward asset", i),
			)
		}
		if acc.Balance != 0 {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.ValidationError,
				fmt.Sprintf("shard account %d must start empty", i),
			)
		}
	}

	return nil
}

// refundShards returns perShard from the first funded shards to the reward
// source after a partial Lock. funded is the count of successful transfers.
func (s *Service) refundShards(params LockParams, funded int, perShard uint64) {
	authority := pkg.DeriveEscrowKey(params.MainAsset, params.Minter)
	for i := range funded {
		if err := s.ledger.Transfer(authority, params.ShardAccounts[i], params.RewardSource, perShard); err != nil {
			log.Error().Err(err).
				Str("main_asset", params.MainAsset).
				Int("shard", i).
				Msg("failed to refund shard after aborted lock")
		}
	}
}

func (s *Service) emitEscrowLockedEvent(ctx context.Context, lockDoc *model.EscrowLockDocument) {
	ev := &types.EscrowLockedEvent{
		MainAsset:        lockDoc.MainAsset,
		RewardAsset:      lockDoc.RewardAsset,
		Minter:           lockDoc.Minter,
		TotalRewardValue: lockDoc.TotalRewardValue,
		TotalMainSupply:  lockDoc.TotalMainSupply,
		ExpiresAt:        lockDoc.ExpiresAt,
		CreatedAt:        lockDoc.CreatedAt,
	}
	// emission failures are logged, not propagated: the lock itself is
	// already funded and persisted, and the publisher retries internally
	if err := s.emitter.EmitEscrowLockedEvent(ctx, ev); err != nil {
		log.Error().Err(err).Str("main_asset", lockDoc.MainAsset).Msg("failed to emit escrow locked event")
	}
}
