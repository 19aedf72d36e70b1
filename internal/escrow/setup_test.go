package escrow

import (
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/fluterlabs/reward-escrow/internal/config"
	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/ledger"
	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
	"github.com/fluterlabs/reward-escrow/internal/types"
	"github.com/fluterlabs/reward-escrow/pkg"
	"github.com/fluterlabs/reward-escrow/tests/mocks"
)

const (
	testMainAsset   = "main-token-7f3a"
	testRewardAsset = "reward-token-9c1d"
	testMinter      = "minter-account-1"
	testDistributor = "distributor-account-1"
	testSourceAcct  = "minter-reward-source"
	testPayoutAcct  = "distributor-reward-account"
	testBurnAcct    = "distributor-main-account"
)

func TestMain(m *testing.M) {
	metrics.Init(9990)
	os.Exit(m.Run())
}

type testEnv struct {
	service *Service
	ledger  *ledger.InMemory
	db      *mocks.DbInterface
	emitter *mocks.EventEmitter
	clock   *clockwork.FakeClock
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	cfg := &config.Config{
		Poller: config.PollerConfig{
			ExpiryCheckerPollingInterval: time.Minute,
			ExpiredLocksLimit:            100,
		},
	}

	env := &testEnv{
		ledger:  ledger.NewInMemory(),
		db:      mocks.NewDbInterface(t),
		emitter: mocks.NewEventEmitter(t),
		clock:   clockwork.NewFakeClockAt(now),
	}
	env.service = NewService(cfg, env.db, env.ledger, env.clock, env.emitter)

	return env
}

// setupShardAccounts provisions the shard accounts for the test lock and the
// minter's reward source account holding sourceBalance.
func (env *testEnv) setupShardAccounts(t *testing.T, sourceBalance uint64) []string {
	t.Helper()

	shards, opErr := env.service.InitializeShardAccounts(
		t.Context(), testMainAsset, testRewardAsset, testMinter,
	)
	if opErr != nil {
		t.Fatalf("failed to initialize shard accounts: %v", opErr)
	}

	if err := env.ledger.CreateAccount(testSourceAcct, testRewardAsset, testMinter); err != nil {
		t.Fatalf("failed to create source account: %v", err)
	}
	if sourceBalance > 0 {
		if err := env.ledger.Mint(testSourceAcct, sourceBalance); err != nil {
			t.Fatalf("failed to fund source account: %v", err)
		}
	}

	return shards
}

// activeLockDoc is the stored record of a fully funded 500-unit lock backed
// by a 1000-unit main supply.
func activeLockDoc(shards []string, expiresAt int64) *model.EscrowLockDocument {
	return &model.EscrowLockDocument{
		ID:                   pkg.DeriveEscrowKey(testMainAsset, testMinter),
		MainAsset:            testMainAsset,
		RewardAsset:          testRewardAsset,
		Minter:               testMinter,
		State:                types.StateActive,
		TotalRewardValue:     500,
		RemainingRewardValue: 500,
		ValuePerShard:        100,
		TotalMainSupply:      1000,
		ShardAccounts:        shards,
		CreatedAt:            expiresAt - 3600,
		ExpiresAt:            expiresAt,
	}
}

func (env *testEnv) balance(t *testing.T, key string) uint64 {
	t.Helper()

	acc, err := env.ledger.Account(key)
	if err != nil {
		t.Fatalf("failed to read account %s: %v", key, err)
	}
	return acc.Balance
}
