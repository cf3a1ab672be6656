package contracts

import (
	"context"
	"medifax-client/internal/app/models"
	"time"
)

// TokenProvider hands the current bearer token to authenticated calls. The
// token cannot be swapped while fn runs.
type TokenProvider interface {
	WithToken(ctx context.Context, fn func(token string) error) error
}

type TokenStore interface {
	TokenProvider
	Set(ctx context.Context, token string) (*models.SessionInfo, error)
	Clear(ctx context.Context) error
	Current() *models.SessionInfo
	IsLoggedIn() bool
	Restore(ctx context.Context) error
}

type TokenPersister interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, ttl time.Duration) error
	Delete(ctx context.Context) error
}
