package session

import (
	"context"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// tokenStore holds the one bearer token of the process. Authenticated calls run
// under the read lock, so Set and Clear wait until they are done.
type tokenStore struct {
	mu         sync.RWMutex
	session    *models.SessionInfo
	persister  contracts.TokenPersister
	defaultTTL time.Duration
	now        func() time.Time
	Log        *zap.Logger
}

// NewTokenStore keeps the token in memory only when persister is nil.
func NewTokenStore(persister contracts.TokenPersister, defaultTTL time.Duration, logger *zap.Logger) contracts.TokenStore {
	return &tokenStore{
		persister:  persister,
		defaultTTL: defaultTTL,
		now:        time.Now,
		Log:        logger,
	}
}

func (s *tokenStore) WithToken(ctx context.Context, fn func(token string) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return exceptions.ErrTokenMissing(nil)
	}
	if s.session.Expired(s.now()) {
		s.Log.Info("tokenStore.WithToken token expired",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Time(constvars.LoggingTokenExpiresAtKey, s.session.ExpiresAt),
		)
		return exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return fn(s.session.Token)
}

func (s *tokenStore) Set(ctx context.Context, token string) (*models.SessionInfo, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("tokenStore.Set called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	info, err := utils.ParseSessionToken(token)
	if err != nil {
		s.Log.Error("tokenStore.Set error parsing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if info.Expired(s.now()) {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a caller cancelled while waiting for the lock has been superseded
	if err = ctx.Err(); err != nil {
		s.Log.Info("tokenStore.Set refused for a cancelled caller",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	s.session = info

	if s.persister != nil {
		ttl := s.ttlOf(info)
		err = s.persister.Save(ctx, info.Token, ttl)
		if err != nil {
			// the in-memory session stays usable for this run
			s.Log.Warn("tokenStore.Set error persisting token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Duration(constvars.LoggingTokenTTLKey, ttl),
				zap.Error(err),
			)
		}
	}

	s.Log.Info("tokenStore.Set succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenSubjectKey, info.Subject),
		zap.Time(constvars.LoggingTokenExpiresAtKey, info.ExpiresAt),
	)
	copied := *info
	return &copied, nil
}

func (s *tokenStore) Clear(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("tokenStore.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil

	if s.persister != nil {
		err := s.persister.Delete(ctx)
		if err != nil {
			s.Log.Error("tokenStore.Clear error deleting persisted token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
	}

	s.Log.Info("tokenStore.Clear succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *tokenStore) Current() *models.SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

func (s *tokenStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil && !s.session.Expired(s.now())
}

// Restore loads a token saved by an earlier run. A stale or unreadable token
// is dropped and the store stays logged out.
func (s *tokenStore) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	requestID := utils.GetRequestID(ctx)

	token, err := s.persister.Load(ctx)
	if err != nil {
		s.Log.Error("tokenStore.Restore error loading token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if token == "" {
		return nil
	}

	info, err := utils.ParseSessionToken(token)
	if err != nil || info.Expired(s.now()) {
		s.Log.Info("tokenStore.Restore dropping stale token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return s.persister.Delete(ctx)
	}

	s.mu.Lock()
	s.session = info
	s.mu.Unlock()

	s.Log.Info("tokenStore.Restore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenSubjectKey, info.Subject),
	)
	return nil
}

func (s *tokenStore) ttlOf(info *models.SessionInfo) time.Duration {
	if info.ExpiresAt.IsZero() {
		return s.defaultTTL
	}
	return info.ExpiresAt.Sub(s.now())
}
