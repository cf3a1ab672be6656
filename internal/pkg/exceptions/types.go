package exceptions

import (
	"fmt"
	"medifax-client/internal/pkg/constvars"
)

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvariant, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInvariant = func(err error, what string) *CustomError {
		return BuildNewCustomError(err, KindInvariant, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevInvariantViolated, what))
	}

	// Booking
	ErrDoctorNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientDoctorNotAvailable, constvars.ErrDevDoctorNotAvailable)
	}
	ErrProfileIncomplete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientProfileIncomplete, constvars.ErrDevProfileIncomplete)
	}

	// Auth
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusServiceUnavailable, constvars.ErrClientNetworkUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusBadGateway, constvars.ErrClientNetworkUnavailable, constvars.ErrDevReadResponseBody)
	}
	ErrRequestTimeout = func(err error, endpoint string) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, fmt.Sprintf(constvars.ErrDevRequestTimeout, endpoint))
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusTooManyRequests, constvars.ErrClientServerLongRespond, constvars.ErrDevRateLimiterWait)
	}

	// Remote API
	ErrRemoteUnauthorized = func(err error, endpoint string) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevRemoteUnauthorized, endpoint))
	}
	ErrRemoteNotFound = func(err error, endpoint string) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientDataNotFound, fmt.Sprintf(constvars.ErrDevRemoteNotFound, endpoint))
	}
	ErrRemoteRejected = func(err error, endpoint, clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, clientMessage, fmt.Sprintf(constvars.ErrDevRemoteRejected, endpoint))
	}
	ErrRemoteUnexpectedStatus = func(err error, statusCode int, endpoint string) *CustomError {
		return BuildNewCustomError(err, KindNetwork, statusCode, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRemoteUnexpectedStatus, statusCode, endpoint))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindDecode, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrResponseSchema = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindDecode, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevResponseSchema, resource))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
)
