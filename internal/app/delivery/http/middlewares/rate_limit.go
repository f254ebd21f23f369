package middlewares

import (
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit limits every client IP to APP_MAX_REQUEST requests per
// second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// LoginRateLimit throttles login attempts per client IP. The client cookie is
// not part of the key, since a caller can drop it to get a fresh budget.
func (m *Middlewares) LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.LoginLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		key, err := httprate.KeyByIP(r)
		if err != nil {
			key = r.RemoteAddr
		}
		if !m.LoginLimiter.Allow(key) {
			utils.LogSecurityEvent(m.Log, "login_throttled", utils.GetRequestID(r.Context()), "medium")
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(m.InternalConfig.App.LoginBlockTimeInSeconds))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyLoginAttempts(nil, key))
			return
		}
		next.ServeHTTP(w, r)
	})
}
