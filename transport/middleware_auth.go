package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/stockwise/ims/application/auth"
	"github.com/stockwise/ims/constant"
	utilsContext "github.com/stockwise/ims/utils/context"
	"github.com/stockwise/ims/utils/errors"
)

// AuthMiddleware validates bearer tokens and embeds the caller's identity
// into the request context. Public endpoints (login, register, swagger) and
// internal routes pass through; internal routes carry their own API key check.
func AuthMiddleware(validator auth.TokenValidator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			ctx = context.WithValue(ctx, constant.UserRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" || path == "/health" {
		return true
	}

	return false
}

// requireRoles wraps a handler so only the named roles may call it. Admins
// always pass.
func requireRoles(next http.HandlerFunc, roles ...constant.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, ok := utilsContext.GetUserRole(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		if role == constant.RoleAdmin {
			next(w, r)
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				next(w, r)
				return
			}
		}
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
	}
}
