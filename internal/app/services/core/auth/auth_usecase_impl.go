package auth

import (
	"context"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	BackendClient  contracts.AuthBackendClient
	EventPublisher contracts.AuthEventPublisher
	Log            *zap.Logger
	now            func() time.Time
}

func NewAuthUsecase(
	backendClient contracts.AuthBackendClient,
	eventPublisher contracts.AuthEventPublisher,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		BackendClient:  backendClient,
		EventPublisher: eventPublisher,
		Log:            logger,
		now:            time.Now,
	}
}

// Login stores a session only when the backend answers with status
// "success". Any other answer is ErrInvalidCredentials, a transport or
// decoding failure is ErrLoginFailed, and the prior session is left as is.
func (uc *authUsecase) Login(ctx context.Context, store contracts.SessionStore, email, password string) error {
	requestID := utils.GetRequestID(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	response, err := uc.BackendClient.Login(ctx, &requests.BackendLogin{Email: email, Password: password})
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.publish(ctx, constvars.AuthEventLoginFailed, nil, email)
		return exceptions.ErrLoginFailed(err)
	}

	if response.Status != constvars.BackendStatusSuccess {
		uc.Log.Info("authUsecase.Login rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("backend_status", response.Status),
		)
		uc.publish(ctx, constvars.AuthEventLoginFailed, nil, email)
		return exceptions.ErrInvalidCredentials(nil)
	}

	session := buildSession(response.Data)
	err = store.Set(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.publish(ctx, constvars.AuthEventLoginFailed, nil, email)
		return exceptions.ErrLoginFailed(err)
	}

	uc.publish(ctx, constvars.AuthEventLoginSucceeded, session, email)
	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, session.Role.String()),
	)
	return nil
}

// Logout only clears the local session. The backend keeps no session state
// for this client.
func (uc *authUsecase) Logout(ctx context.Context, store contracts.SessionStore) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session := store.Current()
	err := store.Clear(ctx)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if session != nil {
		uc.publish(ctx, constvars.AuthEventLogout, session, session.Email)
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	response, err := uc.BackendClient.Register(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if response.Status != constvars.BackendStatusSuccess {
		uc.Log.Info("authUsecase.Register rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("backend_status", response.Status),
		)
		return nil, exceptions.ErrRegistrationRejected(nil, response.Message)
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.RegisterUser{RedirectTo: constvars.PathLogin}, nil
}

// publish never affects the outcome of the operation that triggered it.
func (uc *authUsecase) publish(ctx context.Context, eventType string, session *models.Session, email string) {
	event := &models.AuthEvent{
		Type:       eventType,
		ClientID:   utils.GetClientID(ctx),
		Email:      email,
		RequestID:  utils.GetRequestID(ctx),
		OccurredAt: uc.now().UTC(),
	}
	if session != nil {
		event.UserID = session.UserID
		event.Role = session.Role
	}

	err := uc.EventPublisher.Publish(context.WithoutCancel(ctx), event)
	if err != nil {
		uc.Log.Warn("authUsecase.publish error publishing auth event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingEventKey, eventType),
			zap.Error(err),
		)
	}
}

// buildSession maps the backend identity. Missing fields stay empty and
// only status "active" marks the account active.
func buildSession(user *responses.BackendLoginUser) *models.Session {
	if user == nil {
		user = &responses.BackendLoginUser{}
	}
	return &models.Session{
		UserID:      user.UserID,
		DisplayName: user.Name,
		Email:       user.Email,
		Role:        models.Role(user.Role),
		Permissions: models.NewPermissionSet(user.Permissions...),
		IsActive:    user.Status == constvars.BackendUserActive,
	}
}
