// Package models defines the entities exchanged with the carrier-platform API.
package models

import (
	"errors"
	"strings"
	"time"
)

// CarrierCode identifies one of the supported shipping carriers.
type CarrierCode string

const (
	CarrierFedEx CarrierCode = "FEDEX"
	CarrierUPS   CarrierCode = "UPS"
	CarrierUSPS  CarrierCode = "USPS"
)

// CarrierCodes lists all supported carriers in display order.
var CarrierCodes = []CarrierCode{CarrierFedEx, CarrierUPS, CarrierUSPS}

var ErrUnsupportedCarrier = errors.New("unsupported carrier code")

// Valid reports whether c is one of the supported carrier codes.
func (c CarrierCode) Valid() bool {
	switch c {
	case CarrierFedEx, CarrierUPS, CarrierUSPS:
		return true
	}
	return false
}

// DisplayName returns a human-readable carrier name for UI output.
func (c CarrierCode) DisplayName() string {
	switch c {
	case CarrierFedEx:
		return "FedEx"
	case CarrierUPS:
		return "UPS"
	case CarrierUSPS:
		return "USPS"
	}
	return string(c)
}

// ParseCarrierCode normalizes and validates a user-supplied carrier code.
func ParseCarrierCode(s string) (CarrierCode, error) {
	c := CarrierCode(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrUnsupportedCarrier
	}
	return c, nil
}

// CarrierCredentials is a stored credential set as returned by the server.
// The client secret is never read back: reads carry a masked form only.
type CarrierCredentials struct {
	ID                 int64       `json:"id"`
	UserID             int64       `json:"user_id"`
	CarrierCode        CarrierCode `json:"carrier_code"`
	ClientID           string      `json:"client_id"`
	ClientSecretMasked string      `json:"client_secret_masked"`
	AccountNumber      string      `json:"account_number"`
	IsActive           bool        `json:"is_active"`
	Description        string      `json:"description,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// CarrierCredentialsPatch is the write shape for creating or partially
// updating stored credentials. An empty ClientSecret is omitted from the
// payload, which the server treats as "keep the existing secret".
type CarrierCredentialsPatch struct {
	CarrierCode   CarrierCode `json:"carrier_code,omitempty"`
	ClientID      string      `json:"client_id,omitempty"`
	ClientSecret  string      `json:"client_secret,omitempty"`
	AccountNumber string      `json:"account_number,omitempty"`
	IsActive      *bool       `json:"is_active,omitempty"`
	Description   string      `json:"description,omitempty"`
}
