package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// KeyAuth returns middleware that validates API key authentication.
//
// The middleware checks for an API key in the Authorization header using
// the Bearer scheme: "Authorization: Bearer <api-key>". A request
// presenting adminKey gets RoleAdmin, editorKey gets RoleEditor; the
// resulting Actor is attached to the request context.
//
// Usage in routes.go:
//
//	r.Group(func(r chi.Router) {
//	    r.Use(apicors.Middleware())
//	    r.Use(auth.KeyAuth(appCfg.AdminAPIKey, appCfg.EditorAPIKey, logger))
//	    r.Mount("/api/leads", leadRoutes)
//	})
//
// If the API key is invalid or missing, returns 401 Unauthorized.
// If neither key is configured, logs a warning and rejects all requests.
func KeyAuth(adminKey, editorKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	if adminKey == "" && editorKey == "" {
		logger.Warn("no API keys configured - all authenticated API requests will be rejected")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && editorKey == "" {
				logger.Warn("API request rejected: no API keys configured",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "API authentication not configured", http.StatusUnauthorized)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("API request rejected: missing Authorization header",
					zap.String("path", r.URL.Path),
				)
				http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Debug("API request rejected: invalid Authorization format",
					zap.String("path", r.URL.Path),
				)
				http.Error(w, "Invalid Authorization format (expected: Bearer <api-key>)", http.StatusUnauthorized)
				return
			}

			role := ""
			switch {
			case keyMatches(parts[1], adminKey):
				role = RoleAdmin
			case keyMatches(parts[1], editorKey):
				role = RoleEditor
			default:
				logger.Warn("API request rejected: invalid API key",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "Invalid API key", http.StatusUnauthorized)
				return
			}

			actor := Actor{ID: r.Header.Get("X-Actor-Id"), Role: role}
			if actor.ID == "" {
				actor.ID = role
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireRole returns middleware that restricts a route group to the
// given role. Admins pass every gate.
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := CurrentActor(r)
			if actor.Role != role && actor.Role != RoleAdmin {
				logger.Warn("API request rejected: insufficient role",
					zap.String("path", r.URL.Path),
					zap.String("actor", actor.ID),
					zap.String("role", actor.Role),
				)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func keyMatches(provided, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) == 1
}
