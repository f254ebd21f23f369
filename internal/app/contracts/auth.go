package contracts

import (
	"context"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// Login returns nil only when the backend explicitly accepted the
	// credentials and the session was stored.
	Login(ctx context.Context, store SessionStore, email, password string) error
	Logout(ctx context.Context, store SessionStore) error
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
}

type AuthBackendClient interface {
	Login(ctx context.Context, request *requests.BackendLogin) (*responses.BackendLogin, error)
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.BackendStatus, error)
}

type AuthEventPublisher interface {
	Publish(ctx context.Context, event *models.AuthEvent) error
}

// ClientRotationListener moves client scoped state when a login replaces the
// caller's client id.
type ClientRotationListener interface {
	ClientRotated(ctx context.Context, previousClientID, clientID string)
}

type LoginLimiter interface {
	// Allow reports whether another login attempt from key is permitted.
	Allow(key string) bool
}
