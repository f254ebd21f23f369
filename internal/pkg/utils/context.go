package utils

import (
	"context"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetClientID(ctx context.Context) string {
	if clientID, ok := ctx.Value(constvars.CONTEXT_CLIENT_ID_KEY).(string); ok {
		return clientID
	}
	return ""
}

// GetSessionStore returns the store the client session middleware attached
// to the request, or nil outside of it.
func GetSessionStore(ctx context.Context) contracts.SessionStore {
	if store, ok := ctx.Value(constvars.CONTEXT_SESSION_STORE_KEY).(contracts.SessionStore); ok {
		return store
	}
	return nil
}
