package escrow

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/fluterlabs/reward-escrow/internal/config"
	"github.com/fluterlabs/reward-escrow/internal/db"
	"github.com/fluterlabs/reward-escrow/internal/ledger"
	"github.com/fluterlabs/reward-escrow/internal/types"
)

// EventEmitter records lifecycle facts for off-system observers.
type EventEmitter interface {
	EmitEscrowLockedEvent(ctx context.Context, ev *types.EscrowLockedEvent) error
	EmitRewardsRedeemedEvent(ctx context.Context, ev *types.RewardsRedeemedEvent) error
	EmitRewardsReclaimedEvent(ctx context.Context, ev *types.RewardsReclaimedEvent) error
	EmitEscrowExpiredEvent(ctx context.Context, ev *types.EscrowExpiredEvent) error
	EmitMinterRegisteredEvent(ctx context.Context, ev *types.MinterRegisteredEvent) error
	EmitDistributorRegisteredEvent(ctx context.Context, ev *types.DistributorRegisteredEvent) error
}

// Service is the escrow lifecycle controller. The hosting environment
// serializes operations per lock record and presents caller identity as a
// trusted credential; the controller validates state, moves value through
// the ledger and keeps the stored record consistent.
type Service struct {
	cfg     *config.Config
	db      db.DbInterface
	ledger  ledger.Ledger
	clock   clockwork.Clock
	emitter EventEmitter
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	ledger ledger.Ledger,
	clock clockwork.Clock,
	emitter EventEmitter,
) *Service {
	return &Service{
		cfg:     cfg,
		db:      db,
		ledger:  ledger,
		clock:   clock,
		emitter: emitter,
	}
}
