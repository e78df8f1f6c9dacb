package middlewares

import (
	"context"
	"net/http"
	"strings"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token into a session and stores it in the
// request context. Handlers behind it can rely on SessionFromContext.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(err))
			return
		}

		session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects authenticated requests whose session role is not in
// the allow list.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
		})
	}
}

func SessionFromContext(ctx context.Context) *models.Session {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		return nil
	}
	return session
}
