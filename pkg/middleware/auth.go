package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// IsAuthenticated reports whether r carries "Authorization: Bearer <secret>".
// A missing header, another scheme, an empty token and a wrong token all
// yield false.
func IsAuthenticated(r *http.Request, secret string) bool {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" || secret == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

// RequireAdmin rejects requests without the admin bearer token before the
// wrapped handler reads the body or touches storage. The failure reason is
// deliberately not reported to the client.
func RequireAdmin(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAuthenticated(r, secret) {
				logger.Warn("Admin authentication failed",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
