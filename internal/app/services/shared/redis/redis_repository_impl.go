package redis

import (
	"context"
	"errors"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"

	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisRepository struct {
	client *redis.Client
	Log    *zap.Logger
}

func NewRedisRepository(client *redis.Client, logger *zap.Logger) contracts.RedisRepository {
	return &redisRepository{client: client, Log: logger}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	requestID := utils.GetRequestID(ctx)
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.Log.Error("redisRepository.Delete error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Set stores the JSON encoding of value, so strings come back quoted from Get.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	requestID := utils.GetRequestID(ctx)
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		r.Log.Error("redisRepository.Set error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	} else if err != nil {
		r.Log.Error("redisRepository.Get error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return "", exceptions.ErrRedisGet(err)
	}

	return data, nil
}
