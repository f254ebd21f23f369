package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Backend  AppBackend  `mapstructure:"backend"`
	JWT      AppJWT      `mapstructure:"jwt"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                               string `mapstructure:"env"`
	Port                              string `mapstructure:"port"`
	Version                           string `mapstructure:"version"`
	Timezone                          string `mapstructure:"timezone"`
	EndpointPrefix                    string `mapstructure:"endpoint_prefix"`
	LoginPath                         string `mapstructure:"login_path"`
	AllowedOrigins                    string `mapstructure:"allowed_origins"`
	MaxRequests                       int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds          int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte        int    `mapstructure:"request_body_limit_in_megabyte"`
	SessionDriver                     string `mapstructure:"session_driver"`
	SessionSlotName                   string `mapstructure:"session_slot_name"`
	SessionSlotTTLInHours             int    `mapstructure:"session_slot_ttl_in_hours"`
	ClientCookieName                  string `mapstructure:"client_cookie_name"`
	ClientCookieExpTimeInHours        int    `mapstructure:"client_cookie_exp_time_in_hours"`
	ClientCookieSecure                bool   `mapstructure:"client_cookie_secure"`
	BookingWizardIdleTimeoutInMinutes int    `mapstructure:"booking_wizard_idle_timeout_in_minutes"`
	LoginMaxAttempts                  int    `mapstructure:"login_max_attempts"`
	LoginAttemptWindowInSeconds       int    `mapstructure:"login_attempt_window_in_seconds"`
	LoginBlockTimeInSeconds           int    `mapstructure:"login_block_time_in_seconds"`
}

type AppBackend struct {
	BaseUrl                 string `mapstructure:"base_url"`
	LoginPath               string `mapstructure:"login_path"`
	RegisterPath            string `mapstructure:"register_path"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppRabbitMQ struct {
	AuthEventQueue string `mapstructure:"auth_event_queue"`
}
