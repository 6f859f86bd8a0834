// Package session persists the client-owned part of the platform state:
// the bearer token obtained at login and the username it belongs to.
// Everything else the client shows is fetched per call and discarded.
package session

import "context"

// Store is the persistent session state. Implementations must treat a
// missing value as ("", nil), not as an error.
type Store interface {
	// Token returns the persisted bearer token, or "" when logged out.
	Token(ctx context.Context) (string, error)

	// Username returns the username the token was issued for, or "".
	Username(ctx context.Context) (string, error)

	// SaveLogin stores username and token atomically after a successful login.
	SaveLogin(ctx context.Context, username, token string) error

	// SetToken replaces only the token, leaving the username in place.
	SetToken(ctx context.Context, token string) error

	// ClearToken removes the token but keeps the username for the next
	// login prompt.
	ClearToken(ctx context.Context) error

	// Clear wipes all session state (logout).
	Clear(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}
