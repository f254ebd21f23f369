package session

import (
	"fmt"
	"medical-portal/internal/app/contracts"

	"go.uber.org/zap"
)

var errNullSession = fmt.Errorf("session slot holds null")

type sessionStoreProvider struct {
	SlotName       string
	SlotRepository contracts.SessionSlotRepository
	Log            *zap.Logger
}

func NewSessionStoreProvider(slotName string, slotRepository contracts.SessionSlotRepository, logger *zap.Logger) contracts.SessionStoreProvider {
	return &sessionStoreProvider{
		SlotName:       slotName,
		SlotRepository: slotRepository,
		Log:            logger,
	}
}

func (p *sessionStoreProvider) ForClient(clientID string) contracts.SessionStore {
	return NewSessionStore(SlotKey(p.SlotName, clientID), p.SlotRepository, p.Log)
}

// SlotKey names the persisted slot of one client.
func SlotKey(slotName, clientID string) string {
	return fmt.Sprintf("%s:%s", slotName, clientID)
}
