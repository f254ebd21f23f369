package middlewares

import (
	"medical-portal/internal/app/models"
	"medical-portal/internal/app/services/core/access"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const PageUnauthorized = "unauthorized"

// RouteGuard asks the access enforcer about method and pattern for the
// current session on every request. A missing session is redirected to the
// login page with the requested URI preserved; an insufficient one gets the
// unauthorized view.
func (m *Middlewares) RouteGuard(method, pattern string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var session *models.Session
			if store := utils.GetSessionStore(r.Context()); store != nil {
				session = store.Current()
			}

			decision := m.AccessEnforcer.Decide(session, method, pattern)
			switch decision {
			case access.Allow:
				next.ServeHTTP(w, r)
			case access.DenyUnauthenticated:
				m.Log.Info("Middlewares.RouteGuard redirecting to login",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingPathKey, r.URL.Path),
					zap.String(constvars.LoggingDecisionKey, decision.String()),
				)
				http.Redirect(w, r, utils.BuildLoginRedirectURL(m.InternalConfig.App.LoginPath, r.URL.RequestURI()), constvars.StatusFound)
			default:
				m.Log.Info("Middlewares.RouteGuard rendering unauthorized view",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingPathKey, r.URL.Path),
					zap.String(constvars.LoggingUserIDKey, session.UserID),
					zap.String(constvars.LoggingDecisionKey, decision.String()),
					zap.String(constvars.LoggingRouteKey, method+" "+pattern),
				)
				utils.BuildPageResponse(w, constvars.StatusForbidden, constvars.UnauthorizedPageMessage, &responses.Page{
					Name:    PageUnauthorized,
					Title:   "Unauthorized",
					Path:    r.URL.Path,
					Session: responses.NewSession(session),
				})
			}
		})
	}
}
