package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	pkgauth "github.com/printventory/printventory-backend/pkg/auth"
	"github.com/printventory/printventory-backend/pkg/config"
	"github.com/printventory/printventory-backend/pkg/logger"
)

// Identify reads an optional bearer token and, when it parses, seeds the
// request context with the caller's identity for downstream logging.
// Requests without a token, or with one that does not verify, pass through
// anonymously; no endpoint behind this middleware rejects on credentials.
func Identify(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil || claims.UserID <= 0 {
				if logg != nil {
					logg.Warn(r.Context(), "ignoring bearer token that does not verify")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxUsername, claims.Username)
			ctx = context.WithValue(ctx, ctxRole, claims.Role)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    strconv.FormatInt(claims.UserID, 10),
					"actor_role": claims.Role,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
