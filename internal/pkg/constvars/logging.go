package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingDurationKey       = "duration"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingErrorKindKey      = "error_kind"

	LoggingEndpointKey      = "endpoint"
	LoggingMethodKey        = "method"
	LoggingStatusCodeKey    = "status_code"
	LoggingURLKey           = "url"
	LoggingAuthenticatedKey = "authenticated"

	LoggingPatientIDKey        = "patient_id"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingDoctorCountKey      = "doctor_count"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingEmailKey            = "email"

	LoggingPipelineKey    = "pipeline"
	LoggingCommandKey     = "command"
	LoggingGenerationKey  = "generation"
	LoggingLatestGenKey   = "latest_generation"
	LoggingStateKey       = "state"
	LoggingIntentKey      = "intent"
	LoggingIntentRouteKey = "intent_route"
	LoggingIntentCountKey = "intent_count"
	LoggingClosedKey      = "closed"

	LoggingRedisKey          = "redis_key"
	LoggingTokenExpiresAtKey = "token_expires_at"
	LoggingTokenSubjectKey   = "token_subject"
	LoggingTokenTTLKey       = "token_ttl"
)
