package config

import (
	"medifax-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "Africa/Kinshasa"),
		},
		API: API{
			BaseUrl:                 utils.GetEnvString("API_BASE_URL", "https://medifax.devscast.tech"),
			UploadsPath:             utils.GetEnvString("API_UPLOADS_PATH", "/uploads"),
			RequestTimeoutInSeconds: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SECONDS", 30),
			MaxRequestsPerSecond:    utils.GetEnvFloat("API_MAX_REQUESTS_PER_SECOND", 10),
			Burst:                   utils.GetEnvInt("API_BURST", 5),
		},
		Session: Session{
			Persistence:       utils.GetEnvString("SESSION_PERSISTENCE", "memory"),
			Profile:           utils.GetEnvString("SESSION_PROFILE", "default"),
			DefaultTTLInHours: utils.GetEnvInt("SESSION_DEFAULT_TTL_IN_HOURS", 1),
		},
	}
}
