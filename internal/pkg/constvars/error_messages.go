package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"len":       "must be %s characters long",
	"not_blank": "must not be blank",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"len": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNetworkUnavailable            = "cannot reach the server, please check your connection"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientDataNotFound                  = "the requested data could not be found"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientDoctorNotAvailable            = "this doctor is not available for appointments"
	ErrClientProfileIncomplete             = "please complete your profile before booking"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevReadResponseBody          = "failed to read HTTP response body"
	ErrDevRequestTimeout            = "request to %s timed out"
	ErrDevRateLimiterWait           = "outgoing request limiter refused to wait"
	ErrDevRemoteUnexpectedStatus    = "unexpected status %d from %s"
	ErrDevRemoteUnauthorized        = "backend refused credentials on %s"
	ErrDevRemoteNotFound            = "backend has no resource at %s"
	ErrDevRemoteRejected            = "backend rejected payload sent to %s"
	ErrDevDecodeResponse            = "failed to decode %s response"
	ErrDevResponseSchema            = "%s response does not match the expected schema"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevAuthTokenMissing          = "no session token available"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired session token"
	ErrDevDoctorNotAvailable        = "doctor is flagged as unavailable"
	ErrDevProfileIncomplete         = "current patient profile is absent"
	ErrDevInvariantViolated         = "invariant violated: %s"

	// Redis
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisConnect    = "failed to connect to redis"
)
