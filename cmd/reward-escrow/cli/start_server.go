package cli

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fluterlabs/reward-escrow/internal/api"
	"github.com/fluterlabs/reward-escrow/internal/config"
	"github.com/fluterlabs/reward-escrow/internal/db"
	dbmodel "github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/escrow"
	"github.com/fluterlabs/reward-escrow/internal/ledger"
	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
	"github.com/fluterlabs/reward-escrow/internal/observability/tracing"
	"github.com/fluterlabs/reward-escrow/internal/queue"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the reward escrow server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up escrow db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	qm, err := queue.NewQueueManager(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating queue manager")
	}
	defer qm.Shutdown()

	service := escrow.NewService(
		cfg, dbClient, ledger.NewInMemory(), clockwork.NewRealClock(), qm,
	)
	service.StartExpiryChecker(ctx)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	apiServer := api.New(&cfg.API, dbClient)
	if err := apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while running escrow API server")
	}
	return nil
}
