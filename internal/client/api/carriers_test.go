package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

func TestCarriers_CreateReturnsMaskedSecret(t *testing.T) {
	var gotBody map[string]any
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/carriers", r.URL.Path)
		decodeBody(t, r, &gotBody)
		writeJSON(t, w, http.StatusCreated, models.CarrierCredentials{
			ID: 1, CarrierCode: models.CarrierFedEx, ClientID: "abc",
			ClientSecretMasked: "****r3t", AccountNumber: "123", IsActive: true,
		})
	}))

	created, err := a.CreateCarrierCredential(context.Background(), models.CarrierCredentialsPatch{
		CarrierCode: models.CarrierFedEx, ClientID: "abc", ClientSecret: "s3cr3t", AccountNumber: "123",
	})
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", gotBody["client_secret"], "secret is sent on create")
	assert.Equal(t, models.CarrierFedEx, created.CarrierCode)
	assert.Equal(t, "****r3t", created.ClientSecretMasked, "reads carry the masked form only")
}

func TestCarriers_AddressedByCarrierCode(t *testing.T) {
	var gotPaths []string
	var gotMethods []string
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		gotMethods = append(gotMethods, r.Method)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(t, w, http.StatusOK, models.CarrierCredentials{CarrierCode: models.CarrierUPS})
		}
	}))
	ctx := context.Background()

	_, err := a.GetCarrierCredential(ctx, models.CarrierUPS)
	require.NoError(t, err)

	_, err = a.UpdateCarrierCredential(ctx, models.CarrierUPS, models.CarrierCredentialsPatch{ClientID: "new-id"})
	require.NoError(t, err)

	require.NoError(t, a.DeleteCarrierCredential(ctx, models.CarrierUPS))

	assert.Equal(t, []string{"/user/carriers/UPS", "/user/carriers/UPS", "/user/carriers/UPS"}, gotPaths)
	assert.Equal(t, []string{http.MethodGet, http.MethodPut, http.MethodDelete}, gotMethods)
}

func TestCarriers_UpdateWithEmptySecretOmitsIt(t *testing.T) {
	var gotBody map[string]any
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decodeBody(t, r, &gotBody)
		writeJSON(t, w, http.StatusOK, models.CarrierCredentials{CarrierCode: models.CarrierFedEx})
	}))

	_, err := a.UpdateCarrierCredential(context.Background(), models.CarrierFedEx, models.CarrierCredentialsPatch{
		ClientID: "abc",
	})
	require.NoError(t, err)

	_, present := gotBody["client_secret"]
	assert.False(t, present, "empty secret must not be sent, so the stored secret is preserved")
	assert.Equal(t, "abc", gotBody["client_id"])
}

func TestCarriers_TestTokens(t *testing.T) {
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/carriers/test-tokens", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"results": []models.TokenResult{
				{Carrier: models.CarrierFedEx, Success: true, AccessToken: "t1", TokenType: "bearer", ExpiresIn: 3600},
				{Carrier: models.CarrierUPS, Success: false, Error: "invalid_client", ErrorType: "auth"},
			},
		})
	}))

	results, err := a.TestCarrierTokens(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Success)
	assert.Equal(t, models.CarrierFedEx, results[0].Carrier)

	// Per-carrier failures are data, not errors.
	assert.False(t, results[1].Success)
	assert.Equal(t, "invalid_client", results[1].Error)
}

func TestCarriers_TestTokensEmptyResults(t *testing.T) {
	a, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{})
	}))

	results, err := a.TestCarrierTokens(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
