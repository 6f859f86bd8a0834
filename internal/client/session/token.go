package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed bearer token")

// TokenInfo is what the client can read out of a bearer token without
// verifying it. The server remains the authority on token validity; this
// exists only to drive UI hints like "session expires in 5m".
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken decodes token without signature verification and extracts
// the subject and expiry claims. Missing claims leave zero values.
func InspectToken(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// Expired reports whether the token looked expired at the given instant.
// A token without an expiry claim never looks expired.
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
