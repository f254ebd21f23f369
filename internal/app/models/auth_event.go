package models

import "time"

// AuthEvent is published whenever a login attempt finishes or a session is
// cleared.
type AuthEvent struct {
	Type       string    `json:"type"`
	ClientID   string    `json:"client_id"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Role       Role      `json:"role,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
