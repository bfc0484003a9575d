package middlewares

import (
	"context"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authentication resolves the bearer token into the calling account and puts
// it on the request context. Every protected route answers 401 with the same
// client message whether the header is missing, malformed, or expired.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.BearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing())
			return
		}

		accessToken := strings.TrimPrefix(authHeader, constvars.BearerPrefix)
		if accessToken == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing())
			return
		}

		user, err := m.AuthUsecase.ResolveUser(r.Context(), accessToken)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_KEY, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
