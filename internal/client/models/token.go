package models

// CarrierTokenRequest asks the server to obtain an OAuth token from a
// carrier using the supplied credentials.
type CarrierTokenRequest struct {
	CarrierCode   CarrierCode `json:"carrier_code"`
	ClientID      string      `json:"client_id"`
	ClientSecret  string      `json:"client_secret"`
	AccountNumber string      `json:"account_num,omitempty"`
}

// TokenResult is the outcome of a single carrier token attempt. A failed
// attempt is not an error at the transport level: Success is false and
// Error/ErrorType describe what went wrong on the carrier side.
type TokenResult struct {
	Carrier     CarrierCode `json:"carrier"`
	Success     bool        `json:"success"`
	AccessToken string      `json:"access_token,omitempty"`
	TokenType   string      `json:"token_type,omitempty"`
	ExpiresIn   int64       `json:"expires_in,omitempty"`
	Scope       string      `json:"scope,omitempty"`
	Error       string      `json:"error,omitempty"`
	ErrorType   string      `json:"error_type,omitempty"`
}
