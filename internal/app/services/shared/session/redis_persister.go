package session

import (
	"context"
	"fmt"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisTokenPersister struct {
	RedisRepository contracts.RedisRepository
	key             string
	Log             *zap.Logger
}

func NewRedisTokenPersister(redisRepository contracts.RedisRepository, profile string, logger *zap.Logger) contracts.TokenPersister {
	return &redisTokenPersister{
		RedisRepository: redisRepository,
		key:             fmt.Sprintf(constvars.SessionRedisKeyFormat, profile),
		Log:             logger,
	}
}

func (p *redisTokenPersister) Load(ctx context.Context) (string, error) {
	raw, err := p.RedisRepository.Get(ctx, p.key)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}

	var token string
	err = json.Unmarshal([]byte(raw), &token)
	if err != nil {
		p.Log.Error("redisTokenPersister.Load error unmarshaling token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, p.key),
			zap.Error(err),
		)
		return "", exceptions.ErrDecodeResponse(err, constvars.ResourceSession)
	}
	return token, nil
}

func (p *redisTokenPersister) Save(ctx context.Context, token string, ttl time.Duration) error {
	return p.RedisRepository.Set(ctx, p.key, token, ttl)
}

func (p *redisTokenPersister) Delete(ctx context.Context) error {
	return p.RedisRepository.Delete(ctx, p.key)
}
