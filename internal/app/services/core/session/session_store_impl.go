package session

import (
	"context"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionStore struct {
	Slot           string
	SlotRepository contracts.SessionSlotRepository
	Log            *zap.Logger
	mu             sync.RWMutex
	current        *models.Session
}

func NewSessionStore(slot string, slotRepository contracts.SessionSlotRepository, logger *zap.Logger) contracts.SessionStore {
	return &sessionStore{
		Slot:           slot,
		SlotRepository: slotRepository,
		Log:            logger,
	}
}

// Restore loads the persisted session. It never fails: an empty, unreadable
// or corrupt slot all mean no session, and a corrupt slot is discarded.
func (s *sessionStore) Restore(ctx context.Context) *models.Session {
	requestID := utils.GetRequestID(ctx)

	raw, err := s.SlotRepository.Read(ctx, s.Slot)
	if err != nil {
		s.Log.Error("sessionStore.Restore error reading session slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotKey, s.Slot),
			zap.Error(err),
		)
		s.swap(nil)
		return nil
	}

	if raw == "" {
		s.swap(nil)
		return nil
	}

	session, err := parseSession(raw)
	if err != nil {
		s.Log.Warn("sessionStore.Restore discarding corrupt session slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotKey, s.Slot),
			zap.Error(err),
		)
		if err := s.SlotRepository.Delete(ctx, s.Slot); err != nil {
			s.Log.Error("sessionStore.Restore error deleting corrupt session slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotKey, s.Slot),
				zap.Error(err),
			)
		}
		s.swap(nil)
		return nil
	}

	s.swap(session)
	return session.Clone()
}

// Set persists first. If persisting fails the previous session stays current.
// A nil Permissions set is stored as an empty one.
func (s *sessionStore) Set(ctx context.Context, session *models.Session) error {
	if session == nil {
		return exceptions.ErrServerProcess(nil)
	}

	next := session.Clone()

	err := s.SlotRepository.Write(ctx, s.Slot, next)
	if err != nil {
		s.Log.Error("sessionStore.Set error writing session slot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSlotKey, s.Slot),
			zap.Error(err),
		)
		return err
	}

	s.swap(next)
	return nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	s.swap(nil)

	err := s.SlotRepository.Delete(ctx, s.Slot)
	if err != nil {
		s.Log.Error("sessionStore.Clear error deleting session slot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSlotKey, s.Slot),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *sessionStore) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *sessionStore) swap(session *models.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}

func parseSession(raw string) (*models.Session, error) {
	var session *models.Session
	err := json.Unmarshal([]byte(raw), &session)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errNullSession
	}
	if session.Permissions == nil {
		session.Permissions = models.NewPermissionSet()
	}
	return session, nil
}
