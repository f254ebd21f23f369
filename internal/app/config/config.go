package config

import (
	"errors"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "anyjwt"

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medical_portal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                               utils.GetEnvString("APP_ENV", "development"),
			Port:                              utils.GetEnvString("APP_PORT", "8080"),
			Version:                           utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                          utils.GetEnvString("APP_TIMEZONE", "Africa/Cairo"),
			EndpointPrefix:                    utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			LoginPath:                         utils.GetEnvString("APP_LOGIN_PATH", constvars.PathLogin),
			AllowedOrigins:                    utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                       utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeoutInSeconds:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:        utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SessionDriver:                     utils.GetEnvString("APP_SESSION_DRIVER", constvars.SessionDriverRedis),
			SessionSlotName:                   utils.GetEnvString("APP_SESSION_SLOT_NAME", "medical_portal_session"),
			SessionSlotTTLInHours:             utils.GetEnvInt("APP_SESSION_SLOT_TTL_IN_HOURS", 0),
			ClientCookieName:                  utils.GetEnvString("APP_CLIENT_COOKIE_NAME", "mp_client"),
			ClientCookieExpTimeInHours:        utils.GetEnvInt("APP_CLIENT_COOKIE_EXP_TIME_IN_HOURS", 24*30),
			ClientCookieSecure:                utils.GetEnvBool("APP_CLIENT_COOKIE_SECURE", false),
			BookingWizardIdleTimeoutInMinutes: utils.GetEnvInt("APP_BOOKING_WIZARD_IDLE_TIMEOUT_IN_MINUTES", 30),
			LoginMaxAttempts:                  utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 5),
			LoginAttemptWindowInSeconds:       utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_IN_SECONDS", 60),
			LoginBlockTimeInSeconds:           utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_IN_SECONDS", 300),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api"),
			LoginPath:               utils.GetEnvString("BACKEND_LOGIN_PATH", "/auth/login"),
			RegisterPath:            utils.GetEnvString("BACKEND_REGISTER_PATH", "/auth/register"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", DefaultJWTSecret),
		},
		RabbitMQ: AppRabbitMQ{
			AuthEventQueue: utils.GetEnvString("APP_RABBITMQ_AUTH_EVENT_QUEUE", "auth_events"),
		},
	}
}

// Validate rejects settings that must never reach a production deployment.
func (c *InternalConfig) Validate() error {
	if c.App.Env != constvars.EnvProduction {
		return nil
	}
	if c.JWT.Secret == "" || c.JWT.Secret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set to a non-default value in production")
	}
	return nil
}

func (c *InternalConfig) ClientCookieOptions() utils.ClientCookieOptions {
	return utils.ClientCookieOptions{
		Name:          c.App.ClientCookieName,
		Secret:        c.JWT.Secret,
		ExpiryInHours: c.App.ClientCookieExpTimeInHours,
		Secure:        c.App.ClientCookieSecure,
	}
}
