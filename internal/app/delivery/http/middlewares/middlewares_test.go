package middlewares

import (
	"context"
	"medical-portal/internal/app/config"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
	"medical-portal/internal/app/services/core/access"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Restore(ctx context.Context) *models.Session {
	args := m.Called(ctx)
	session, _ := args.Get(0).(*models.Session)
	return session
}

func (m *MockSessionStore) Set(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionStore) Current() *models.Session {
	args := m.Called()
	session, _ := args.Get(0).(*models.Session)
	return session
}

type MockSessionStoreProvider struct {
	mock.Mock
}

func (m *MockSessionStoreProvider) ForClient(clientID string) contracts.SessionStore {
	args := m.Called(clientID)
	return args.Get(0).(contracts.SessionStore)
}

type MockLoginLimiter struct {
	mock.Mock
}

func (m *MockLoginLimiter) Allow(clientID string) bool {
	args := m.Called(clientID)
	return args.Bool(0)
}

func newTestEnforcer() *access.Enforcer {
	enforcer, err := access.NewEnforcer()
	if err != nil {
		panic(err)
	}
	routes := map[string]models.AccessRequirement{
		"/":          {},
		"/dashboard": {RequireAuth: true},
		"/analytics": {RequireAuth: true, RequiredPermission: models.PermissionAnalytics},
	}
	for pattern, requirement := range routes {
		if err := enforcer.Register(http.MethodGet, pattern, requirement); err != nil {
			panic(err)
		}
	}
	return enforcer
}

func newTestMiddlewares(provider contracts.SessionStoreProvider, limiter contracts.LoginLimiter) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{
			Timezone:                   "UTC",
			LoginPath:                  "/login",
			ClientCookieName:           "mp_client",
			ClientCookieExpTimeInHours: 1,
		},
		JWT: config.AppJWT{Secret: "test-secret"},
	}, provider, limiter, newTestEnforcer())
}

func withStore(r *http.Request, store contracts.SessionStore) *http.Request {
	ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_STORE_KEY, store)
	return r.WithContext(ctx)
}

func TestRouteGuard(t *testing.T) {
	m := newTestMiddlewares(nil, nil)
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Missing Session Redirects With Original URI", func(t *testing.T) {
		store := new(MockSessionStore)
		store.On("Current").Return(nil)

		req := withStore(httptest.NewRequest(http.MethodGet, "/dashboard?tab=1", nil), store)
		rec := httptest.NewRecorder()
		m.RouteGuard(http.MethodGet, "/dashboard")(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/login", location.Path)
		assert.Equal(t, "/dashboard?tab=1", location.Query().Get(constvars.QueryParamRedirect))
	})

	t.Run("Missing Permission Renders Unauthorized", func(t *testing.T) {
		store := new(MockSessionStore)
		store.On("Current").Return(&models.Session{
			UserID:      "p1",
			Role:        models.RolePatient,
			Permissions: models.NewPermissionSet(models.PermissionDashboard, models.PermissionAppointments),
			IsActive:    true,
		})

		req := withStore(httptest.NewRequest(http.MethodGet, "/analytics", nil), store)
		rec := httptest.NewRecorder()
		m.RouteGuard(http.MethodGet, "/analytics")(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Location"))
		assert.Contains(t, rec.Body.String(), `"page":"unauthorized"`)
	})

	t.Run("Public Page Needs No Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		m.RouteGuard(http.MethodGet, "/")(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unregistered Route Is Denied", func(t *testing.T) {
		store := new(MockSessionStore)
		store.On("Current").Return(&models.Session{UserID: "a1", Role: models.RoleAdmin, IsActive: true, Permissions: models.NewPermissionSet()})

		req := withStore(httptest.NewRequest(http.MethodGet, "/secret", nil), store)
		rec := httptest.NewRecorder()
		m.RouteGuard(http.MethodGet, "/secret")(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestClientSession(t *testing.T) {
	t.Run("Issues Cookie And Restores Store", func(t *testing.T) {
		store := new(MockSessionStore)
		store.On("Restore", mock.Anything).Return(nil)
		provider := new(MockSessionStoreProvider)
		provider.On("ForClient", mock.AnythingOfType("string")).Return(store)
		m := newTestMiddlewares(provider, nil)

		var seenClientID string
		var seenStore contracts.SessionStore
		handler := m.ClientSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenClientID = utils.GetClientID(r.Context())
			seenStore = utils.GetSessionStore(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].HttpOnly)
		assert.NotEmpty(t, seenClientID)
		assert.Equal(t, store, seenStore)
		store.AssertCalled(t, "Restore", mock.Anything)

		parsed, err := utils.ParseClientJWT(cookies[0].Value, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, seenClientID, parsed)
	})

	t.Run("Valid Cookie Keeps Client ID", func(t *testing.T) {
		store := new(MockSessionStore)
		store.On("Restore", mock.Anything).Return(nil)
		provider := new(MockSessionStoreProvider)
		provider.On("ForClient", "client-42").Return(store)
		m := newTestMiddlewares(provider, nil)

		token, err := utils.GenerateClientJWT("client-42", "test-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "mp_client", Value: token})
		rec := httptest.NewRecorder()
		m.ClientSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "client-42", utils.GetClientID(r.Context()))
		})).ServeHTTP(rec, req)

		assert.Empty(t, rec.Result().Cookies())
		provider.AssertExpectations(t)
	})

	t.Run("Tampered Cookie Gets A Fresh Client ID", func(t *testing.T) {
		store := new(MockSessionStore)
		store.On("Restore", mock.Anything).Return(nil)
		provider := new(MockSessionStoreProvider)
		provider.On("ForClient", mock.AnythingOfType("string")).Return(store)
		m := newTestMiddlewares(provider, nil)

		token, err := utils.GenerateClientJWT("client-42", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "mp_client", Value: token})
		rec := httptest.NewRecorder()
		m.ClientSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEqual(t, "client-42", utils.GetClientID(r.Context()))
		})).ServeHTTP(rec, req)

		assert.Len(t, rec.Result().Cookies(), 1)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil, nil)

	t.Run("Propagates Client Request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-1")
		rec := httptest.NewRecorder()
		m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "req-1", utils.GetRequestID(r.Context()))
		})).ServeHTTP(rec, req)

		assert.Equal(t, "req-1", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generates Missing Request ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLoginRateLimit(t *testing.T) {
	t.Run("Throttled Address Gets 429", func(t *testing.T) {
		limiter := new(MockLoginLimiter)
		limiter.On("Allow", "192.0.2.1").Return(false)
		m := newTestMiddlewares(nil, limiter)

		called := false
		rec := httptest.NewRecorder()
		m.LoginRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		limiter.AssertExpectations(t)
	})

	t.Run("Key Ignores Client Cookie", func(t *testing.T) {
		limiter := new(MockLoginLimiter)
		limiter.On("Allow", "192.0.2.1").Return(true).Twice()
		m := newTestMiddlewares(nil, limiter)
		handler := m.LoginRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		withCookie := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		withCookie = withCookie.WithContext(context.WithValue(withCookie.Context(), constvars.CONTEXT_CLIENT_ID_KEY, "client-a"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withCookie)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		limiter.AssertExpectations(t)
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(nil, nil)
	rec := httptest.NewRecorder()
	m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
