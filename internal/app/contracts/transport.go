package contracts

import (
	"context"
	"medifax-client/internal/pkg/dto/responses"
)

// Transport performs one backend call. Non-2xx answers come back as
// *exceptions.CustomError, a cancelled context is returned as is.
type Transport interface {
	Invoke(ctx context.Context, endpoint, method string, payload interface{}, authenticated bool) (*responses.RawResponse, error)
}
