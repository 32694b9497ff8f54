package auth

import "context"

// Identity is the resolved caller context for one request: either an
// authenticated username or the anonymous caller. The zero value is
// anonymous, so downstream code can never mistake a sentinel username for
// a real user.
type Identity struct {
	username      string
	authenticated bool
}

// Anonymous is the identity of a caller that presented no valid token on a
// route that tolerates it.
var Anonymous = Identity{}

// Authenticated builds an identity for a verified username.
func Authenticated(username string) Identity {
	return Identity{username: username, authenticated: true}
}

func (i Identity) IsAuthenticated() bool { return i.authenticated }

// Username returns the authenticated caller's username, or "" for the
// anonymous identity.
func (i Identity) Username() string { return i.username }

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity attaches the identity to the request context. The value is
// request-scoped and is never shared across requests.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity resolved for this request. The
// second return value is false when the authenticator left the request
// without any identity (a protected-required route with no valid token),
// in which case every downstream check must fail closed.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
