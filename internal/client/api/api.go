package api

import (
	"context"

	"github.com/shipdeck/shipdeck/internal/client/models"
	"github.com/shipdeck/shipdeck/internal/client/session"
	"github.com/shipdeck/shipdeck/internal/logging"
)

// API aggregates every service of the platform behind one object. The
// grouped services are exported for callers that want them; the flat
// methods below mirror the call-site-friendly names the rest of the
// application uses.
type API struct {
	rt *Transport

	Auth      *AuthService
	Locations *Resource[models.OriginLocation, models.OriginLocationPatch]
	Shipments *Resource[models.Shipment, models.ShipmentPatch]
	Carriers  *CarrierService
	Tokens    *TokenService
}

// New wires the shared transport and all services. Call Init before use to
// restore a persisted session, and Close when done.
func New(baseURL string, store session.Store, log logging.Logger) *API {
	rt := NewTransport(baseURL, store, log)
	return &API{
		rt:        rt,
		Auth:      NewAuthService(rt),
		Locations: NewResource[models.OriginLocation, models.OriginLocationPatch](rt, "/user/locations"),
		Shipments: NewResource[models.Shipment, models.ShipmentPatch](rt, "/shipments"),
		Carriers:  NewCarrierService(rt),
		Tokens:    NewTokenService(rt),
	}
}

// Init restores the persisted token into the transport.
func (a *API) Init(ctx context.Context) error {
	return a.rt.Init(ctx)
}

// OnUnauthorized registers the hook invoked when a 401 drops the session.
func (a *API) OnUnauthorized(fn func()) {
	a.rt.OnUnauthorized(fn)
}

// Session exposes the persistent session store (username, token) for UI
// status displays.
func (a *API) Session() session.Store {
	return a.rt.session
}

// Close releases the session store.
func (a *API) Close() error {
	return a.rt.session.Close()
}

// Origin locations.

func (a *API) GetOriginLocations(ctx context.Context) ([]models.OriginLocation, error) {
	return a.Locations.List(ctx)
}

func (a *API) GetOriginLocation(ctx context.Context, id int64) (*models.OriginLocation, error) {
	return a.Locations.Get(ctx, id)
}

func (a *API) CreateOriginLocation(ctx context.Context, patch models.OriginLocationPatch) (*models.OriginLocation, error) {
	return a.Locations.Create(ctx, patch)
}

func (a *API) UpdateOriginLocation(ctx context.Context, id int64, patch models.OriginLocationPatch) (*models.OriginLocation, error) {
	return a.Locations.Update(ctx, id, patch)
}

func (a *API) DeleteOriginLocation(ctx context.Context, id int64) error {
	return a.Locations.Delete(ctx, id)
}

// Carrier credentials.

func (a *API) GetCarrierCredentials(ctx context.Context) ([]models.CarrierCredentials, error) {
	return a.Carriers.List(ctx)
}

func (a *API) GetCarrierCredential(ctx context.Context, code models.CarrierCode) (*models.CarrierCredentials, error) {
	return a.Carriers.Get(ctx, code)
}

func (a *API) CreateCarrierCredential(ctx context.Context, patch models.CarrierCredentialsPatch) (*models.CarrierCredentials, error) {
	return a.Carriers.Create(ctx, patch)
}

func (a *API) UpdateCarrierCredential(ctx context.Context, code models.CarrierCode, patch models.CarrierCredentialsPatch) (*models.CarrierCredentials, error) {
	return a.Carriers.Update(ctx, code, patch)
}

func (a *API) DeleteCarrierCredential(ctx context.Context, code models.CarrierCode) error {
	return a.Carriers.Delete(ctx, code)
}

func (a *API) TestCarrierTokens(ctx context.Context) ([]models.TokenResult, error) {
	return a.Carriers.TestTokens(ctx)
}

// Token generation.

func (a *API) TestSingleToken(ctx context.Context, req models.CarrierTokenRequest) (*models.TokenResult, error) {
	return a.Tokens.TestSingleToken(ctx, req)
}

func (a *API) GenerateTokens(ctx context.Context, carriers []models.CarrierTokenRequest) ([]models.TokenResult, error) {
	return a.Tokens.GenerateTokens(ctx, carriers)
}

// Shipments.

func (a *API) GetShipments(ctx context.Context) ([]models.Shipment, error) {
	return a.Shipments.List(ctx)
}

func (a *API) GetShipment(ctx context.Context, id int64) (*models.Shipment, error) {
	return a.Shipments.Get(ctx, id)
}

func (a *API) CreateShipment(ctx context.Context, patch models.ShipmentPatch) (*models.Shipment, error) {
	return a.Shipments.Create(ctx, patch)
}

func (a *API) UpdateShipment(ctx context.Context, id int64, patch models.ShipmentPatch) (*models.Shipment, error) {
	return a.Shipments.Update(ctx, id, patch)
}

func (a *API) DeleteShipment(ctx context.Context, id int64) error {
	return a.Shipments.Delete(ctx, id)
}
