package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Resource names used in log lines and error messages.
const (
	ResourcePatient     = "patient"
	ResourceDoctor      = "doctor"
	ResourceAppointment = "appointment"
	ResourceSession     = "session"
)

const (
	EndpointLoginCheck   = "/api/login_check"
	EndpointPatients     = "/api/patients"
	EndpointMe           = "/api/me"
	EndpointDoctors      = "/api/doctors"
	EndpointAppointments = "/api/appointments"
)

const (
	AppointmentDescriptionMaxLength = 255
)

const (
	SessionPersistenceMemory = "memory"
	SessionPersistenceRedis  = "redis"
	SessionRedisKeyFormat    = "medifax:session:%s"
)
