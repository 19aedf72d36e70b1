package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avast/retry-go/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/fluterlabs/reward-escrow/internal/config"
	"github.com/fluterlabs/reward-escrow/internal/observability/metrics"
	"github.com/fluterlabs/reward-escrow/internal/types"
)

// QueueManager publishes lifecycle facts to a fanout exchange so off-system
// observers can follow every transition without polling the store.
type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Url)
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.ExchangeName,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.ExchangeName, err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

func (qm *QueueManager) publish(ctx context.Context, eventType types.EventType, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	err = retry.Do(
		func() error {
			return qm.channel.PublishWithContext(
				ctx,
				qm.cfg.ExchangeName,
				eventType.String(), // routing key, ignored by fanout but kept for tracing
				false,              // mandatory
				false,              // immediate
				amqp.Publishing{
					ContentType:  "application/json",
					DeliveryMode: amqp.Persistent,
					Type:         eventType.String(),
					Body:         body,
				},
			)
		},
		retry.Attempts(qm.cfg.MaxRetryTimes),
		retry.Delay(qm.cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Msgf("failed to publish %s event, retrying (attempt %d)", eventType, n+1)
		}),
	)
	if err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

func (qm *QueueManager) EmitEscrowLockedEvent(ctx context.Context, ev *types.EscrowLockedEvent) error {
	return qm.publish(ctx, types.EventEscrowLocked, ev)
}

func (qm *QueueManager) EmitRewardsRedeemedEvent(ctx context.Context, ev *types.RewardsRedeemedEvent) error {
	return qm.publish(ctx, types.EventRewardsRedeemed, ev)
}

func (qm *QueueManager) EmitRewardsReclaimedEvent(ctx context.Context, ev *types.RewardsReclaimedEvent) error {
	return qm.publish(ctx, types.EventRewardsReclaimed, ev)
}

func (qm *QueueManager) EmitEscrowExpiredEvent(ctx context.Context, ev *types.EscrowExpiredEvent) error {
	return qm.publish(ctx, types.EventEscrowExpired, ev)
}

func (qm *QueueManager) EmitMinterRegisteredEvent(ctx context.Context, ev *types.MinterRegisteredEvent) error {
	return qm.publish(ctx, types.EventMinterRegistered, ev)
}

func (qm *QueueManager) EmitDistributorRegisteredEvent(ctx context.Context, ev *types.DistributorRegisteredEvent) error {
	return qm.publish(ctx, types.EventDistributorRegistered, ev)
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue connection")
	}
}
