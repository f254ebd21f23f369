package responses

import "medical-portal/internal/app/models"

type Login struct {
	RedirectTo string   `json:"redirect_to"`
	Session    *Session `json:"session"`
}

type Session struct {
	UserID      string      `json:"user_id"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	Permissions []string    `json:"permissions"`
	IsActive    bool        `json:"is_active"`
	IsAdmin     bool        `json:"is_admin"`
}

type RegisterUser struct {
	RedirectTo string `json:"redirect_to"`
}

// BackendLogin mirrors the backend authentication response envelope.
type BackendLogin struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    *BackendLoginUser `json:"data,omitempty"`
}

type BackendLoginUser struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
}

type BackendStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewSession projects a session into its client view. A nil session yields
// nil.
func NewSession(session *models.Session) *Session {
	if session == nil {
		return nil
	}
	return &Session{
		UserID:      session.UserID,
		DisplayName: session.DisplayName,
		Email:       session.Email,
		Role:        session.Role,
		Permissions: session.Permissions.Slice(),
		IsActive:    session.IsActive,
		IsAdmin:     session.Role == models.RoleAdmin,
	}
}
