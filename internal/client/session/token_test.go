package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})

	info, err := InspectToken(raw)
	require.NoError(t, err)
	require.Equal(t, "alice", info.Subject)
	require.True(t, info.ExpiresAt.Equal(exp))
	require.False(t, info.Expired(time.Now()))
	require.True(t, info.Expired(exp.Add(time.Second)))
}

func TestInspectToken_NoExpiry(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "alice"})

	info, err := InspectToken(raw)
	require.NoError(t, err)
	require.True(t, info.ExpiresAt.IsZero())
	require.False(t, info.Expired(time.Now()), "token without exp never looks expired")
}

func TestInspectToken_Malformed(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	require.ErrorIs(t, err, ErrMalformedToken)
}
