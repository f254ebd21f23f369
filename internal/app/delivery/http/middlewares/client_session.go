package middlewares

import (
	"context"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// ClientSession identifies the client from its signed cookie, issuing a new
// client id when the cookie is missing or invalid, and restores that
// client's session store into the request context.
func (m *Middlewares) ClientSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())
		cookieName := m.InternalConfig.App.ClientCookieName

		clientID := ""
		if cookie, err := r.Cookie(cookieName); err == nil {
			clientID, err = utils.ParseClientJWT(cookie.Value, m.InternalConfig.JWT.Secret)
			if err != nil {
				m.Log.Warn("Middlewares.ClientSession invalid client cookie",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}

		if clientID == "" {
			clientID = utils.GenerateClientID()
			err := utils.SetClientCookie(w, clientID, m.InternalConfig.ClientCookieOptions())
			if err != nil {
				m.Log.Error("Middlewares.ClientSession error signing client cookie",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLIENT_ID_KEY, clientID)
		store := m.SessionStores.ForClient(clientID)
		store.Restore(ctx)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_STORE_KEY, store)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
