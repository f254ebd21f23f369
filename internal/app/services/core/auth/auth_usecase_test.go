package auth

import (
	"context"
	"errors"
	"medical-portal/internal/app/models"
	"medical-portal/internal/app/services/core/access"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthBackendClient struct {
	mock.Mock
}

func (m *MockAuthBackendClient) Login(ctx context.Context, request *requests.BackendLogin) (*responses.BackendLogin, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.BackendLogin)
	return response, args.Error(1)
}

func (m *MockAuthBackendClient) Register(ctx context.Context, request *requests.RegisterUser) (*responses.BackendStatus, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.BackendStatus)
	return response, args.Error(1)
}

type MockAuthEventPublisher struct {
	mock.Mock
}

func (m *MockAuthEventPublisher) Publish(ctx context.Context, event *models.AuthEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type fakeSessionStore struct {
	current  *models.Session
	setErr   error
	cleared  int
	clearErr error
}

func (f *fakeSessionStore) Restore(ctx context.Context) *models.Session { return f.current }

func (f *fakeSessionStore) Set(ctx context.Context, session *models.Session) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.current = session
	return nil
}

func (f *fakeSessionStore) Clear(ctx context.Context) error {
	f.cleared++
	f.current = nil
	return f.clearErr
}

func (f *fakeSessionStore) Current() *models.Session { return f.current }

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(event *models.AuthEvent) bool { return event.Type == eventType })
}

func statusOf(t *testing.T, err error) (int, string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode, customErr.ClientMessage
}

func TestAuthUsecaseLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin Login Grants Every Permission", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		publisher := new(MockAuthEventPublisher)
		backend.On("Login", mock.Anything, &requests.BackendLogin{Email: "admin@medical.com", Password: "admin123"}).Return(&responses.BackendLogin{
			Status: "success",
			Data: &responses.BackendLoginUser{
				UserID:      "1",
				Name:        "Admin",
				Email:       "admin@medical.com",
				Role:        "admin",
				Permissions: []string{},
				Status:      "active",
			},
		}, nil)
		publisher.On("Publish", mock.Anything, eventOfType(constvars.AuthEventLoginSucceeded)).Return(nil)

		store := &fakeSessionStore{}
		uc := NewAuthUsecase(backend, publisher, zap.NewNop())

		require.NoError(t, uc.Login(ctx, store, " Admin@Medical.com ", "admin123"))
		assert.True(t, access.HasPermission(store.Current(), "anything"))
		assert.True(t, store.Current().IsActive)
		backend.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Missing Fields Default To Empty", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		publisher := new(MockAuthEventPublisher)
		backend.On("Login", mock.Anything, mock.Anything).Return(&responses.BackendLogin{Status: "success"}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		store := &fakeSessionStore{}
		uc := NewAuthUsecase(backend, publisher, zap.NewNop())

		require.NoError(t, uc.Login(ctx, store, "x@y.com", "pw"))
		assert.Equal(t, &models.Session{Permissions: models.NewPermissionSet()}, store.Current())
	})

	t.Run("Rejected Login Keeps Prior Session", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		publisher := new(MockAuthEventPublisher)
		backend.On("Login", mock.Anything, mock.Anything).Return(&responses.BackendLogin{Status: "error", Message: "wrong"}, nil)
		publisher.On("Publish", mock.Anything, eventOfType(constvars.AuthEventLoginFailed)).Return(nil)

		prior := &models.Session{UserID: "prior"}
		store := &fakeSessionStore{current: prior}
		uc := NewAuthUsecase(backend, publisher, zap.NewNop())

		err := uc.Login(ctx, store, "x@y.com", "bad")
		code, message := statusOf(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, code)
		assert.Equal(t, "Invalid email or password", message)
		assert.Same(t, prior, store.Current())
	})

	t.Run("Transport Failure Uses Generic Message", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		publisher := new(MockAuthEventPublisher)
		backend.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused")))
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		store := &fakeSessionStore{}
		uc := NewAuthUsecase(backend, publisher, zap.NewNop())

		code, message := statusOf(t, uc.Login(ctx, store, "x@y.com", "pw"))
		assert.Equal(t, constvars.StatusUnauthorized, code)
		assert.Equal(t, "An error occurred during login", message)
		assert.Nil(t, store.Current())
	})

	t.Run("Publisher Failure Does Not Fail Login", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		publisher := new(MockAuthEventPublisher)
		backend.On("Login", mock.Anything, mock.Anything).Return(&responses.BackendLogin{
			Status: "success",
			Data:   &responses.BackendLoginUser{UserID: "7", Role: "doctor", Status: "active"},
		}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		store := &fakeSessionStore{}
		uc := NewAuthUsecase(backend, publisher, zap.NewNop())

		assert.NoError(t, uc.Login(ctx, store, "d@y.com", "pw"))
		assert.Equal(t, "7", store.Current().UserID)
	})

	t.Run("Store Failure Is A Login Failure", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		publisher := new(MockAuthEventPublisher)
		backend.On("Login", mock.Anything, mock.Anything).Return(&responses.BackendLogin{Status: "success"}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		store := &fakeSessionStore{setErr: errors.New("redis down")}
		uc := NewAuthUsecase(backend, publisher, zap.NewNop())

		_, message := statusOf(t, uc.Login(ctx, store, "x@y.com", "pw"))
		assert.Equal(t, "An error occurred during login", message)
	})
}

func TestAuthUsecaseLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears Session And Publishes Event", func(t *testing.T) {
		publisher := new(MockAuthEventPublisher)
		publisher.On("Publish", mock.Anything, eventOfType(constvars.AuthEventLogout)).Return(nil)

		store := &fakeSessionStore{current: &models.Session{UserID: "1"}}
		uc := NewAuthUsecase(new(MockAuthBackendClient), publisher, zap.NewNop())

		require.NoError(t, uc.Logout(ctx, store))
		assert.Nil(t, store.Current())
		publisher.AssertExpectations(t)
	})

	t.Run("Logout Without Session Is Quiet", func(t *testing.T) {
		publisher := new(MockAuthEventPublisher)
		store := &fakeSessionStore{}
		uc := NewAuthUsecase(new(MockAuthBackendClient), publisher, zap.NewNop())

		require.NoError(t, uc.Logout(ctx, store))
		assert.Equal(t, 1, store.cleared)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecaseRegister(t *testing.T) {
	ctx := context.Background()
	request := &requests.RegisterUser{Name: "Nour", Email: "n@x.com", Password: "secret1", Role: "doctor"}

	t.Run("Success Redirects To Login", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		backend.On("Register", mock.Anything, request).Return(&responses.BackendStatus{Status: "success"}, nil)

		uc := NewAuthUsecase(backend, new(MockAuthEventPublisher), zap.NewNop())
		response, err := uc.Register(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "/login", response.RedirectTo)
	})

	t.Run("Backend Message Is Surfaced", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		backend.On("Register", mock.Anything, request).Return(&responses.BackendStatus{Status: "error", Message: "email already registered"}, nil)

		uc := NewAuthUsecase(backend, new(MockAuthEventPublisher), zap.NewNop())
		_, err := uc.Register(ctx, request)
		code, message := statusOf(t, err)
		assert.Equal(t, constvars.StatusBadRequest, code)
		assert.Equal(t, "email already registered", message)
	})

	t.Run("Missing Message Falls Back To Generic", func(t *testing.T) {
		backend := new(MockAuthBackendClient)
		backend.On("Register", mock.Anything, request).Return(&responses.BackendStatus{Status: "fail"}, nil)

		uc := NewAuthUsecase(backend, new(MockAuthEventPublisher), zap.NewNop())
		_, err := uc.Register(ctx, request)
		_, message := statusOf(t, err)
		assert.Equal(t, constvars.ErrClientRegistrationFailed, message)
	})
}
