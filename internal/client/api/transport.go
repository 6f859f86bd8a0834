// Package api is the typed HTTP access layer for the carrier platform.
// One shared transport owns the base URL and the bearer-token state;
// the per-entity services on top of it are thin single-round-trip calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shipdeck/shipdeck/internal/client/session"
	"github.com/shipdeck/shipdeck/internal/logging"
)

const requestIDHeader = "X-Request-ID"

// Transport is the single configured HTTP client all services share.
// It attaches the bearer token to outgoing requests and is the only
// component allowed to drop the persisted token when a 401 comes back.
type Transport struct {
	baseURL string
	http    *http.Client
	session session.Store
	log     logging.Logger

	mu    sync.RWMutex
	token string

	onUnauthorized func()
}

func NewTransport(baseURL string, store session.Store, log logging.Logger) *Transport {
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: store,
		log:     log.With("component", "transport"),
	}
}

// Init loads the persisted token into the in-memory header state. Call once
// on startup, before issuing requests.
func (t *Transport) Init(ctx context.Context) error {
	token, err := t.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
	return nil
}

// OnUnauthorized registers a hook invoked after a 401 has cleared the
// session, so the UI layer can send the user back to login.
func (t *Transport) OnUnauthorized(fn func()) {
	t.onUnauthorized = fn
}

// SetToken installs token into both the in-memory header state and the
// persistent store. An empty token clears both. Idempotent.
func (t *Transport) SetToken(ctx context.Context, token string) error {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()

	if token == "" {
		return t.session.ClearToken(ctx)
	}
	return t.session.SetToken(ctx, token)
}

// SaveLogin is SetToken plus remembering which user the token belongs to,
// written atomically after a successful login.
func (t *Transport) SaveLogin(ctx context.Context, username, token string) error {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()

	return t.session.SaveLogin(ctx, username, token)
}

func (t *Transport) currentToken() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// dropSession clears the token everywhere and notifies the UI hook.
// The triggering error is still propagated by the caller.
func (t *Transport) dropSession(ctx context.Context) {
	t.mu.Lock()
	t.token = ""
	t.mu.Unlock()

	if err := t.session.ClearToken(ctx); err != nil {
		t.log.Error(ctx, "failed to clear stored token", "error", err)
	}
	if t.onUnauthorized != nil {
		t.onUnauthorized()
	}
}

func (t *Transport) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	token := t.currentToken()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.http.Do(req)
	if err != nil {
		t.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	t.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode)

	// Only a rejected bearer token invalidates the session; a 401 on an
	// anonymous request (e.g. a failed login) is just an error.
	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		t.log.Warn(ctx, "authentication rejected, dropping session", "path", path)
		t.dropSession(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return t.apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError turns a non-2xx response into an *APIError, pulling the optional
// {"detail": "..."} message out of the body.
func (t *Transport) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

func (t *Transport) getJSON(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodGet, path, "", nil, out)
}

func (t *Transport) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return t.do(ctx, http.MethodPost, path, "application/json", body, out)
}

func (t *Transport) putJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return t.do(ctx, http.MethodPut, path, "application/json", body, out)
}

func (t *Transport) deleteReq(ctx context.Context, path string) error {
	return t.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// postForm sends form-encoded data; the login endpoint expects credentials
// this way, not as JSON.
func (t *Transport) postForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return t.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", body, out)
}

func encodeJSON(in any) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(b), nil
}
