package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shipdeck/shipdeck/internal/client/session"
	"github.com/shipdeck/shipdeck/internal/logging"
)

// newTestClient spins up a mock backend and an API wired to an in-memory
// session store.
func newTestClient(t *testing.T, handler http.Handler) (*API, *session.MemoryStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	a := New(srv.URL, store, logging.NewZapLogger(zap.NewNop()))
	require.NoError(t, a.Init(context.Background()))
	return a, store
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func decodeBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(v))
}

func TestTransport_AttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	a, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		writeJSON(t, w, http.StatusOK, []any{})
	}))

	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "tok-1"))
	require.NoError(t, a.Init(ctx))

	_, err := a.GetOriginLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestTransport_NoTokenNoAuthHeader(t *testing.T) {
	var sawAuth bool
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		writeJSON(t, w, http.StatusOK, []any{})
	}))

	_, err := a.GetOriginLocations(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestTransport_UnauthorizedDropsSession(t *testing.T) {
	var authHeaders []string
	a, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	}))

	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "stale"))
	require.NoError(t, a.Init(ctx))

	hookFired := false
	a.OnUnauthorized(func() { hookFired = true })

	_, err := a.GetOriginLocations(ctx)
	require.ErrorIs(t, err, ErrUnauthorized, "original failure must propagate to the caller")
	assert.True(t, hookFired)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "persisted token must be cleared")

	// The next call must not carry the stale token.
	_, _ = a.GetOriginLocations(ctx)
	require.Len(t, authHeaders, 2)
	assert.Equal(t, "Bearer stale", authHeaders[0])
	assert.Empty(t, authHeaders[1])
}

func TestTransport_AnonymousUnauthorizedKeepsQuiet(t *testing.T) {
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "incorrect username or password"})
	}))

	hookFired := false
	a.OnUnauthorized(func() { hookFired = true })

	_, err := a.GetOriginLocations(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, hookFired, "a 401 without a token is not a session expiry")
}

func TestTransport_ServerDetailSurfaces(t *testing.T) {
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]string{"detail": "carrier_code is required"})
	}))

	_, err := a.GetOriginLocations(context.Background())
	require.Error(t, err)

	detail, ok := ErrorDetail(err)
	require.True(t, ok)
	assert.Equal(t, "carrier_code is required", detail)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
}

func TestTransport_MissingDetailHandled(t *testing.T) {
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := a.GetOriginLocations(context.Background())
	require.Error(t, err)

	_, ok := ErrorDetail(err)
	assert.False(t, ok, "caller must get the no-message case explicitly")
	assert.Equal(t, "server returned 500", err.Error())
}

func TestTransport_NetworkFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	store := session.NewMemoryStore()
	a := New(srv.URL, store, logging.NewZapLogger(zap.NewNop()))

	_, err := a.GetOriginLocations(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTransport_NotFound(t *testing.T) {
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "location not found"})
	}))

	_, err := a.GetOriginLocation(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}
