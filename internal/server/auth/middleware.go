package auth

import (
	"net/http"
	"strings"

	"github.com/sportvest/sportvest/internal/logging"
)

const bearerPrefix = "Bearer "

// BearerToken extracts the token from the Authorization header. A header
// without the Bearer prefix is treated the same as no header at all.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	return token, token != ""
}

// Authenticator resolves a fresh Identity for every request before it
// reaches a handler. It never rejects a request itself: a protected-required
// route with no valid token simply proceeds with no identity set, and the
// first ownership or identity check downstream fails closed.
type Authenticator struct {
	tokens *TokenService
	logger logging.Logger
}

func NewAuthenticator(tokens *TokenService, logger logging.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, logger: logger.With("module", "authenticator")}
}

// Middleware wraps next with per-request identity resolution.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := ClassifyRoute(r.URL.Path)
		if class == RoutePublic {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()

		if token, ok := BearerToken(r); ok {
			subject, err := a.tokens.Validate(token)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, Authenticated(subject))))
				return
			}
			// An invalid token is treated like an absent one; the route
			// class decides what that means below.
			a.logger.Warn(ctx, "token rejected", "path", r.URL.Path, "reason", err.Error())
		}

		if class == RouteProtectedOptional {
			ctx = WithIdentity(ctx, Anonymous)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
