package middlewares

import (
	"medical-portal/internal/app/config"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/services/core/access"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionStores  contracts.SessionStoreProvider
	LoginLimiter   contracts.LoginLimiter
	AccessEnforcer *access.Enforcer
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	sessionStores contracts.SessionStoreProvider,
	loginLimiter contracts.LoginLimiter,
	accessEnforcer *access.Enforcer,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionStores:  sessionStores,
		LoginLimiter:   loginLimiter,
		AccessEnforcer: accessEnforcer,
	}
}
