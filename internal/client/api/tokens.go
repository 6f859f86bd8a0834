package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

// ErrMalformedTokenResult flags a response claiming success without an
// access token; callers should treat it as a server-side contract breach.
var ErrMalformedTokenResult = errors.New("malformed token result")

// TokenService tests and generates carrier OAuth tokens from ad-hoc
// credentials (as opposed to CarrierService.TestTokens, which uses the
// stored ones). Both calls are stateless.
type TokenService struct {
	rt *Transport
}

func NewTokenService(rt *Transport) *TokenService {
	return &TokenService{rt: rt}
}

// TestSingleToken attempts one token acquisition. Two failure shapes exist
// and callers must handle both: a transport/validation failure rejects the
// call, while a credential or carrier-side failure succeeds with
// Success=false and Error/ErrorType populated.
func (s *TokenService) TestSingleToken(ctx context.Context, req models.CarrierTokenRequest) (*models.TokenResult, error) {
	var resp struct {
		Result models.TokenResult `json:"result"`
	}
	if err := s.rt.postJSON(ctx, "/carriers/test-token", req, &resp); err != nil {
		return nil, err
	}
	if resp.Result.Success && resp.Result.AccessToken == "" {
		return nil, ErrMalformedTokenResult
	}
	return &resp.Result, nil
}

// GenerateTokens requests tokens for a batch of carriers. The server
// returns one result per input; correspondence is positional, with each
// entry's Carrier field echoing the requested code. When a result entry
// comes back without the echo, the requested code is filled in from the
// input so callers can always key off Carrier.
func (s *TokenService) GenerateTokens(ctx context.Context, carriers []models.CarrierTokenRequest) ([]models.TokenResult, error) {
	body := struct {
		Carriers []models.CarrierTokenRequest `json:"carriers"`
	}{Carriers: carriers}

	var resp struct {
		Results struct {
			Tokens []models.TokenResult `json:"tokens"`
		} `json:"results"`
	}
	if err := s.rt.postJSON(ctx, "/carriers/tokens", body, &resp); err != nil {
		return nil, err
	}

	results := resp.Results.Tokens
	if len(results) != len(carriers) {
		return nil, fmt.Errorf("server returned %d token results for %d carriers", len(results), len(carriers))
	}
	for i := range results {
		if results[i].Carrier == "" {
			results[i].Carrier = carriers[i].CarrierCode
		}
	}
	return results, nil
}
