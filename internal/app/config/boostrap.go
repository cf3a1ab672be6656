package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown closes what the process opened. Redis is only set when session
// persistence uses it.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Debug("Successfully closing Redis")
	}

	// Sync fails on stdout/stderr for some terminals, which is harmless
	_ = b.Logger.Sync()
	return nil
}
