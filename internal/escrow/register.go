package escrow

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fluterlabs/reward-escrow/internal/db"
	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/types"
)

// RegisterMinter creates the stats record for a minter. Registration is
// optional; Lock and Reclaim only bump the counters when the record exists.
func (s *Service) RegisterMinter(ctx context.Context, minter string) *types.Error {
	now := s.clock.Now().Unix()
	minterDoc := &model.MinterDocument{
		ID:        minter,
		CreatedAt: now,
	}
	if err := s.db.SaveNewMinter(ctx, minterDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict, types.ValidationError,
				"minter already registered",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to register minter: %w", err),
		)
	}

	ev := &types.MinterRegisteredEvent{
		Minter:    minter,
		Timestamp: now,
	}
	if err := s.emitter.EmitMinterRegisteredEvent(ctx, ev); err != nil {
		log.Error().Err(err).Str("minter", minter).Msg("failed to emit minter registered event")
	}

	return nil
}

// RegisterDistributor creates the stats record for a redeeming principal.
func (s *Service) RegisterDistributor(ctx context.Context, distributor string) *types.Error {
	now := s.clock.Now().Unix()
	distributorDoc := &model.DistributorDocument{
		ID:        distributor,
		CreatedAt: now,
	}
	if err := s.db.SaveNewDistributor(ctx, distributorDoc); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict, types.ValidationError,
				"distributor already registered",
			)
		}
		return types.NewInternalServiceError(
			fmt.Errorf("failed to register distributor: %w", err),
		)
	}

	ev := &types.DistributorRegisteredEvent{
		Distributor: distributor,
		Timestamp:   now,
	}
	if err := s.emitter.EmitDistributorRegisteredEvent(ctx, ev); err != nil {
		log.Error().Err(err).Str("distributor", distributor).Msg("failed to emit distributor registered event")
	}

	return nil
}
