package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"medifax-client/internal/app/config"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/dto/responses"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// paths tried in order for a human readable rejection reason
var backendMessagePaths = []string{
	"message",
	"detail",
	"hydra:description",
	"violations.0.title",
	"violations.0.message",
	"error",
}

type httpTransport struct {
	Client  *http.Client
	BaseUrl string
	Timeout time.Duration
	Limiter *RateLimiter
	Tokens  contracts.TokenProvider
	Log     *zap.Logger
}

func NewHttpTransport(internalConfig *config.InternalConfig, tokens contracts.TokenProvider, logger *zap.Logger) contracts.Transport {
	return &httpTransport{
		Client:  &http.Client{},
		BaseUrl: strings.TrimRight(internalConfig.API.BaseUrl, "/"),
		Timeout: time.Duration(internalConfig.API.RequestTimeoutInSeconds) * time.Second,
		Limiter: NewRateLimiter(internalConfig.API.MaxRequestsPerSecond, internalConfig.API.Burst),
		Tokens:  tokens,
		Log:     logger,
	}
}

func (t *httpTransport) Invoke(ctx context.Context, endpoint, method string, payload interface{}, authenticated bool) (*responses.RawResponse, error) {
	requestID := utils.GetRequestID(ctx)
	t.Log.Info("httpTransport.Invoke called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.String(constvars.LoggingMethodKey, method),
		zap.Bool(constvars.LoggingAuthenticatedKey, authenticated),
	)

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			t.Log.Error("httpTransport.Invoke error marshaling payload",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
	}

	if !authenticated {
		return t.do(ctx, endpoint, method, body, "")
	}

	var raw *responses.RawResponse
	err := t.Tokens.WithToken(ctx, func(token string) error {
		var doErr error
		raw, doErr = t.do(ctx, endpoint, method, body, token)
		return doErr
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (t *httpTransport) do(ctx context.Context, endpoint, method string, body []byte, token string) (*responses.RawResponse, error) {
	requestID := utils.GetRequestID(ctx)

	err := t.Limiter.Wait(ctx, endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return nil, t.mapSendError(ctx, ctx.Err(), endpoint)
		}
		t.Log.Error("httpTransport.Invoke error waiting for rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrRateLimiterWait(err)
	}

	callCtx := ctx
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	url := t.BaseUrl + endpoint
	req, err := http.NewRequestWithContext(callCtx, method, url, reader)
	if err != nil {
		t.Log.Error("httpTransport.Invoke error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderRequestID, requestID)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, token))
	}

	start := time.Now()
	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, t.mapSendError(ctx, err, endpoint)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if callCtx.Err() != nil {
			return nil, t.mapSendError(ctx, err, endpoint)
		}
		t.Log.Error("httpTransport.Invoke error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		mapped := mapStatus(resp.StatusCode, data, endpoint)
		t.Log.Warn("httpTransport.Invoke backend returned non-2xx status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(mapped))),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
		return nil, mapped
	}

	t.Log.Info("httpTransport.Invoke succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return &responses.RawResponse{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}

// mapSendError leaves a cancellation by the caller untouched, only timeouts and
// connection failures become network errors.
func (t *httpTransport) mapSendError(ctx context.Context, err error, endpoint string) error {
	requestID := utils.GetRequestID(ctx)

	if errors.Is(ctx.Err(), context.Canceled) {
		t.Log.Info("httpTransport.Invoke cancelled by caller",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
		)
		return ctx.Err()
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		t.Log.Error("httpTransport.Invoke request timed out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrRequestTimeout(err, endpoint)
	}

	t.Log.Error("httpTransport.Invoke error sending HTTP request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Error(err),
	)
	return exceptions.ErrSendHTTPRequest(err)
}

func mapStatus(statusCode int, body []byte, endpoint string) error {
	cause := fmt.Errorf("status %d: %s", statusCode, truncateBody(body))

	switch statusCode {
	case constvars.StatusUnauthorized, constvars.StatusForbidden:
		return exceptions.ErrRemoteUnauthorized(cause, endpoint)
	case constvars.StatusNotFound:
		return exceptions.ErrRemoteNotFound(cause, endpoint)
	case constvars.StatusBadRequest, constvars.StatusConflict, constvars.StatusUnprocessableEntity:
		return exceptions.ErrRemoteRejected(cause, endpoint, extractBackendMessage(body))
	default:
		return exceptions.ErrRemoteUnexpectedStatus(cause, statusCode, endpoint)
	}
}

func extractBackendMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range backendMessagePaths {
		result := gjson.GetBytes(body, path)
		if result.Type == gjson.String && strings.TrimSpace(result.String()) != "" {
			return strings.TrimSpace(result.String())
		}
	}
	return ""
}

func truncateBody(body []byte) string {
	const limit = 512
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
