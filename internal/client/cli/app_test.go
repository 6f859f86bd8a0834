package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shipdeck/shipdeck/internal/client/api"
	"github.com/shipdeck/shipdeck/internal/client/config"
	"github.com/shipdeck/shipdeck/internal/client/models"
	"github.com/shipdeck/shipdeck/internal/client/session"
	"github.com/shipdeck/shipdeck/internal/logging"
)

// newTestApp builds an App driven by a scripted stdin against a mock
// backend, collecting all output in a buffer.
func newTestApp(t *testing.T, handler http.Handler, script string) (*App, *session.MemoryStore, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	log := logging.NewZapLogger(zap.NewNop())
	a := api.New(srv.URL, store, log)
	require.NoError(t, a.Init(context.Background()))

	out := &bytes.Buffer{}
	cfg := &config.Config{APIBaseURL: srv.URL}
	return newApp(cfg, a, log, strings.NewReader(script), out), store, out
}

func respond(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}
}

func TestApp_LoginThenWhoami(t *testing.T) {
	stubSecrets(t, "hunter2")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token":
			require.NoError(t, r.ParseForm())
			require.Equal(t, "alice", r.PostFormValue("username"))
			require.Equal(t, "hunter2", r.PostFormValue("password"))
			respond(t, w, http.StatusOK, models.TokenResponse{AccessToken: "tok", TokenType: "bearer"})
		case "/auth/profile":
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			respond(t, w, http.StatusOK, models.User{Username: "alice", Email: "alice@example.com", IsActive: true})
		default:
			http.NotFound(w, r)
		}
	})

	app, store, out := newTestApp(t, handler, "login\nalice\nwhoami\nexit\n")
	app.Root(context.Background())

	s := out.String()
	assert.Contains(t, s, "Logged in as alice")
	assert.Contains(t, s, "alice <alice@example.com>")
	assert.Contains(t, s, "shipdeck (alice)>", "prompt reflects the logged-in user")

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestApp_RejectedLoginShowsServerDetail(t *testing.T) {
	stubSecrets(t, "wrongpass")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusUnauthorized, map[string]string{"detail": "incorrect username or password"})
	})

	app, store, out := newTestApp(t, handler, "login\nalice\nexit\n")
	app.Root(context.Background())

	assert.Contains(t, out.String(), "incorrect username or password")
	assert.NotContains(t, out.String(), "Logged in")

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestApp_SessionExpiryDropsUserFromPrompt(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	})

	app, store, out := newTestApp(t, handler, "locations list\nexit\n")
	ctx := context.Background()
	require.NoError(t, store.SaveLogin(ctx, "alice", "stale"))
	require.NoError(t, app.api.Init(ctx))
	app.restoreSession(ctx)
	require.True(t, app.isLoggedIn())

	app.Root(ctx)

	assert.Contains(t, out.String(), "Session expired. Please login again.")
	assert.False(t, app.isLoggedIn())

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestApp_CarriersListAndTest(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/user/carriers" && r.Method == http.MethodGet:
			respond(t, w, http.StatusOK, []models.CarrierCredentials{
				{CarrierCode: models.CarrierFedEx, ClientID: "fd-client", ClientSecretMasked: "****abc", IsActive: true},
			})
		case r.URL.Path == "/user/carriers/test-tokens" && r.Method == http.MethodPost:
			respond(t, w, http.StatusOK, map[string]any{"results": []models.TokenResult{
				{Carrier: models.CarrierFedEx, Success: true, TokenType: "bearer", ExpiresIn: 3600},
				{Carrier: models.CarrierUPS, Success: false, Error: "invalid_client"},
			}})
		default:
			http.NotFound(w, r)
		}
	})

	app, _, out := newTestApp(t, handler, "carriers list\ncarriers test\nexit\n")
	app.Root(context.Background())

	s := out.String()
	assert.Contains(t, s, "FEDEX")
	assert.Contains(t, s, "****abc")
	assert.Contains(t, s, "OK    FEDEX")
	assert.Contains(t, s, "FAIL  UPS")
	assert.Contains(t, s, "invalid_client")
}

func TestApp_LocationsList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, []models.OriginLocation{
			{ID: 1, Name: "Warehouse A", City: "Memphis", State: "TN", ZipCode: "38101", IsDefault: true},
			{ID: 2, Name: "Warehouse B", City: "Austin", State: "TX", ZipCode: "78701"},
		})
	})

	app, _, out := newTestApp(t, handler, "locations\nexit\n")
	app.Root(context.Background())

	s := out.String()
	assert.Contains(t, s, "Warehouse A")
	assert.Contains(t, s, "Warehouse B")
	assert.Contains(t, s, "* ", "default location is marked")
}

func TestApp_UnknownCommand(t *testing.T) {
	app, _, out := newTestApp(t, http.NotFoundHandler(), "frobnicate\nexit\n")
	app.Root(context.Background())

	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}

func TestApp_HelpDependsOnLoginState(t *testing.T) {
	app, _, out := newTestApp(t, http.NotFoundHandler(), "help\nexit\n")
	app.Root(context.Background())

	assert.Contains(t, out.String(), "login, register")
	assert.NotContains(t, out.String(), "carriers  [list")
}
