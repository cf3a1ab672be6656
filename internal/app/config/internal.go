package config

type InternalConfig struct {
	App     App     `mapstructure:"app"`
	API     API     `mapstructure:"api"`
	Session Session `mapstructure:"session"`
}

type App struct {
	Env      string `mapstructure:"env"`
	Version  string `mapstructure:"version"`
	Timezone string `mapstructure:"timezone"`
}

// API describes the backend the client talks to.
type API struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	UploadsPath             string  `mapstructure:"uploads_path"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond    float64 `mapstructure:"max_requests_per_second"`
	Burst                   int     `mapstructure:"burst"`
}

type Session struct {
	// Persistence is "memory" or "redis"
	Persistence       string `mapstructure:"persistence"`
	Profile           string `mapstructure:"profile"`
	DefaultTTLInHours int    `mapstructure:"default_ttl_in_hours"`
}
