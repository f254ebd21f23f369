package contracts

import (
	"context"
	"medical-portal/internal/app/models"
)

// SessionStore is the single source of truth for who is logged in on one
// client. Only the auth usecase and logout mutate it.
type SessionStore interface {
	Restore(ctx context.Context) *models.Session
	Set(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
	Current() *models.Session
}

// SessionStoreProvider hands out the store bound to one client id.
type SessionStoreProvider interface {
	ForClient(clientID string) SessionStore
}

// SessionSlotRepository persists a serialized session under a named slot.
// Read returns "" with a nil error when the slot is empty.
type SessionSlotRepository interface {
	Read(ctx context.Context, slot string) (string, error)
	Write(ctx context.Context, slot string, session *models.Session) error
	Delete(ctx context.Context, slot string) error
}
