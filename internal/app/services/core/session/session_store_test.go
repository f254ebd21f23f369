package session

import (
	"context"
	"errors"
	"medical-portal/internal/app/models"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySlotRepository struct {
	mu       sync.Mutex
	slots    map[string]string
	writeErr error
	readErr  error
	deletes  int
}

func newMemorySlotRepository() *memorySlotRepository {
	return &memorySlotRepository{slots: make(map[string]string)}
}

func (m *memorySlotRepository) Read(ctx context.Context, slot string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.slots[slot], nil
}

func (m *memorySlotRepository) Write(ctx context.Context, slot string, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	raw, err := marshalForTest(session)
	if err != nil {
		return err
	}
	m.slots[slot] = raw
	return nil
}

func (m *memorySlotRepository) Delete(ctx context.Context, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.slots, slot)
	return nil
}

func sampleSession() *models.Session {
	return &models.Session{
		UserID:      "u-1",
		DisplayName: "Mona Adel",
		Email:       "mona@medical.com",
		Role:        models.RolePatient,
		Permissions: models.NewPermissionSet(models.PermissionDashboard, models.PermissionAppointments),
		IsActive:    true,
	}
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("Set Then Restore After Reload Round Trips", func(t *testing.T) {
		repo := newMemorySlotRepository()
		store := NewSessionStore("slot:client-1", repo, logger)

		require.NoError(t, store.Set(ctx, sampleSession()))

		reloaded := NewSessionStore("slot:client-1", repo, logger)
		assert.Nil(t, reloaded.Current())

		restored := reloaded.Restore(ctx)
		assert.Equal(t, sampleSession(), restored)
		assert.Equal(t, sampleSession(), reloaded.Current())
	})

	t.Run("Nil Permissions Round Trip As Empty Set", func(t *testing.T) {
		repo := newMemorySlotRepository()
		store := NewSessionStore("slot:client-5", repo, logger)

		session := sampleSession()
		session.Permissions = nil
		require.NoError(t, store.Set(ctx, session))

		expected := sampleSession()
		expected.Permissions = models.NewPermissionSet()
		assert.Equal(t, expected, store.Current())
		assert.Contains(t, repo.slots["slot:client-5"], `"permissions":[]`)

		restored := NewSessionStore("slot:client-5", repo, logger).Restore(ctx)
		require.NotNil(t, restored)
		assert.NotNil(t, restored.Permissions)
		assert.Equal(t, expected, restored)
	})

	t.Run("Restore With Empty Slot Yields No Session", func(t *testing.T) {
		store := NewSessionStore("slot:client-2", newMemorySlotRepository(), logger)
		assert.Nil(t, store.Restore(ctx))
		assert.Nil(t, store.Current())
	})

	t.Run("Restore Discards Corrupt Slot", func(t *testing.T) {
		repo := newMemorySlotRepository()
		repo.slots["slot:client-3"] = "{not json"
		store := NewSessionStore("slot:client-3", repo, logger)

		assert.NotPanics(t, func() {
			assert.Nil(t, store.Restore(ctx))
		})
		_, exists := repo.slots["slot:client-3"]
		assert.False(t, exists, "corrupt slot should be deleted")
		assert.Nil(t, store.Current())
	})

	t.Run("Restore Treats Null Slot As Corrupt", func(t *testing.T) {
		repo := newMemorySlotRepository()
		repo.slots["slot:client-4"] = "null"
		store := NewSessionStore("slot:client-4", repo, logger)

		assert.Nil(t, store.Restore(ctx))
		assert.Equal(t, 1, repo.deletes)
	})

	t.Run("Restore Read Failure Yields No Session", func(t *testing.T) {
		repo := newMemorySlotRepository()
		repo.readErr = errors.New("connection refused")
		store := NewSessionStore("slot:client-5", repo, logger)

		assert.Nil(t, store.Restore(ctx))
		assert.Equal(t, 0, repo.deletes, "an unreadable slot is not a corrupt slot")
	})

	t.Run("Failed Write Keeps Previous Session", func(t *testing.T) {
		repo := newMemorySlotRepository()
		store := NewSessionStore("slot:client-6", repo, logger)
		require.NoError(t, store.Set(ctx, sampleSession()))

		repo.writeErr = errors.New("disk full")
		replacement := sampleSession()
		replacement.UserID = "u-2"

		assert.Error(t, store.Set(ctx, replacement))
		assert.Equal(t, "u-1", store.Current().UserID)
	})

	t.Run("Clear Twice Equals Clear Once", func(t *testing.T) {
		repo := newMemorySlotRepository()
		store := NewSessionStore("slot:client-7", repo, logger)
		require.NoError(t, store.Set(ctx, sampleSession()))

		require.NoError(t, store.Clear(ctx))
		assert.Nil(t, store.Current())
		assert.Empty(t, repo.slots)

		require.NoError(t, store.Clear(ctx))
		assert.Nil(t, store.Current())
		assert.Empty(t, repo.slots)
	})

	t.Run("Current Returns A Copy", func(t *testing.T) {
		store := NewSessionStore("slot:client-8", newMemorySlotRepository(), logger)
		require.NoError(t, store.Set(ctx, sampleSession()))

		current := store.Current()
		current.Permissions[models.PermissionAnalytics] = struct{}{}
		current.Role = models.RoleAdmin

		assert.False(t, store.Current().Permissions.Has(models.PermissionAnalytics))
		assert.Equal(t, models.RolePatient, store.Current().Role)
	})

	t.Run("Set Rejects Nil Session", func(t *testing.T) {
		store := NewSessionStore("slot:client-9", newMemorySlotRepository(), logger)
		assert.Error(t, store.Set(ctx, nil))
	})
}

func TestSessionStoreProvider(t *testing.T) {
	repo := newMemorySlotRepository()
	provider := NewSessionStoreProvider("medical_portal_session", repo, zap.NewNop())

	store := provider.ForClient("abc")
	require.NoError(t, store.Set(context.Background(), sampleSession()))

	_, exists := repo.slots["medical_portal_session:abc"]
	assert.True(t, exists)
	assert.Nil(t, provider.ForClient("xyz").Restore(context.Background()), "clients must not share slots")
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func TestRedisSlotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Write Uses Configured TTL", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		session := sampleSession()
		redisRepo.On("Set", ctx, "slot:a", session, 2*time.Hour).Return(nil)

		repo := NewRedisSlotRepository(redisRepo, 2*time.Hour)
		assert.NoError(t, repo.Write(ctx, "slot:a", session))
		redisRepo.AssertExpectations(t)
	})

	t.Run("Read Failure Is Wrapped", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", ctx, "slot:b").Return("", errors.New("timeout"))

		repo := NewRedisSlotRepository(redisRepo, 0)
		_, err := repo.Read(ctx, "slot:b")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "slot:b")
	})
}
