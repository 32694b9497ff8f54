// Package auth implements the identity layer: token issuance and
// validation, credential hashing, route classification, the per-request
// authenticator middleware, and the ownership guard.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sportvest/sportvest/internal/common"
)

// TokenService issues and validates signed, time-bounded identity tokens.
// Tokens are HS256 JWTs carrying sub (username), iat and exp; nothing is
// stored server-side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token for the given username, expiring after the
// configured TTL.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

// Validate verifies the token and returns its subject. The failure order is
// fixed: parse, then signature, then expiry. Claims of a token whose
// signature does not verify are never inspected.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", common.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", common.ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", common.ErrTokenExpired
	case err != nil:
		return "", common.ErrTokenMalformed
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenMalformed
	}
	return claims.Subject, nil
}
