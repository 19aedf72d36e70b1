package escrow

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fluterlabs/reward-escrow/internal/types"
	"github.com/fluterlabs/reward-escrow/pkg"
)

// InitializeShardAccounts creates the ShardCount reward-asset accounts that
// will hold a lock's funds, tagged with the lock's derived authority as sole
// mutator. It must run before Lock; the accounts start with zero balance.
func (s *Service) InitializeShardAccounts(
	ctx context.Context, mainAsset, rewardAsset, minter string,
) ([]string, *types.Error) {
	authority := pkg.DeriveEscrowKey(mainAsset, minter)

	keys := make([]string, 0, ShardCount)
	for i := range ShardCount {
		key := pkg.DeriveShardKey(mainAsset, minter, i)
		if err := s.ledger.CreateAccount(key, rewardAsset, authority); err != nil {
			return nil, types.NewError(
				http.StatusConflict,
				types.ValidationError,
				fmt.Errorf("failed to create shard account %d: %w", i, err),
			)
		}
		keys = append(keys, key)
	}

	log.Debug().
		Str("main_asset", mainAsset).
		Str("minter", minter).
		Int("shard_count", ShardCount).
		Msg("initialized shard accounts")

	return keys, nil
}
