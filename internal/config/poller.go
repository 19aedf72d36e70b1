package config

import (
	"errors"
	"time"
)

type PollerConfig struct {
	ExpiryCheckerPollingInterval time.Duration `mapstructure:"expiry-checker-polling-interval"`
	ExpiredLocksLimit            uint64        `mapstructure:"expired-locks-limit"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.ExpiryCheckerPollingInterval <= 0 {
		return errors.New("expiry-checker-polling-interval must be positive")
	}

	if cfg.ExpiredLocksLimit <= 0 {
		return errors.New("expired-locks-limit must be positive")
	}

	return nil
}
