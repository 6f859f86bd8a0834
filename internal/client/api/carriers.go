package api

import (
	"context"
	"fmt"

	"github.com/shipdeck/shipdeck/internal/client/models"
)

const carriersPath = "/user/carriers"

// CarrierService is the credentials service. The backend keeps at most one
// credential set per carrier per user, so Get/Update/Delete address records
// by carrier code rather than numeric id; List and Create come from the
// embedded generic resource.
type CarrierService struct {
	*Resource[models.CarrierCredentials, models.CarrierCredentialsPatch]
}

func NewCarrierService(rt *Transport) *CarrierService {
	return &CarrierService{
		Resource: NewResource[models.CarrierCredentials, models.CarrierCredentialsPatch](rt, carriersPath),
	}
}

// Get fetches the stored credentials for one carrier.
func (s *CarrierService) Get(ctx context.Context, code models.CarrierCode) (*models.CarrierCredentials, error) {
	var c models.CarrierCredentials
	if err := s.rt.getJSON(ctx, fmt.Sprintf("%s/%s", carriersPath, code), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update patches the stored credentials for one carrier. Leaving
// patch.ClientSecret empty keeps the existing secret.
func (s *CarrierService) Update(ctx context.Context, code models.CarrierCode, patch models.CarrierCredentialsPatch) (*models.CarrierCredentials, error) {
	var c models.CarrierCredentials
	if err := s.rt.putJSON(ctx, fmt.Sprintf("%s/%s", carriersPath, code), patch, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes the stored credentials for one carrier.
func (s *CarrierService) Delete(ctx context.Context, code models.CarrierCode) error {
	return s.rt.deleteReq(ctx, fmt.Sprintf("%s/%s", carriersPath, code))
}

// TestTokens asks the server to attempt token acquisition for every carrier
// the user has configured. Per-carrier failures come back inside the
// results, never as a rejected call; only a transport-level failure rejects.
func (s *CarrierService) TestTokens(ctx context.Context) ([]models.TokenResult, error) {
	var resp struct {
		Results []models.TokenResult `json:"results"`
	}
	if err := s.rt.postJSON(ctx, carriersPath+"/test-tokens", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []models.TokenResult{}, nil
	}
	return resp.Results, nil
}
