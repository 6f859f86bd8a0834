package models

import "time"

// Shipment is a parcel booked (or being prepared) through a carrier.
type Shipment struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	FromLocationID   int64     `json:"from_location_id,omitempty"`
	Carrier          string    `json:"carrier"`
	TrackingNumber   string    `json:"tracking_number,omitempty"`
	ServiceType      string    `json:"service_type"`
	Weight           float64   `json:"weight"`
	Dimensions       string    `json:"dimensions,omitempty"`
	RecipientName    string    `json:"recipient_name"`
	RecipientAddress string    `json:"recipient_address"`
	RecipientCity    string    `json:"recipient_city"`
	RecipientState   string    `json:"recipient_state"`
	RecipientZip     string    `json:"recipient_zip"`
	RecipientCountry string    `json:"recipient_country"`
	Status           string    `json:"status"`
	Cost             *float64  `json:"cost,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ShipmentPatch is the write shape for creating or partially updating
// a shipment.
type ShipmentPatch struct {
	FromLocationID   int64    `json:"from_location_id,omitempty"`
	Carrier          string   `json:"carrier,omitempty"`
	ServiceType      string   `json:"service_type,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	Dimensions       string   `json:"dimensions,omitempty"`
	RecipientName    string   `json:"recipient_name,omitempty"`
	RecipientAddress string   `json:"recipient_address,omitempty"`
	RecipientCity    string   `json:"recipient_city,omitempty"`
	RecipientState   string   `json:"recipient_state,omitempty"`
	RecipientZip     string   `json:"recipient_zip,omitempty"`
	RecipientCountry string   `json:"recipient_country,omitempty"`
	Status           string   `json:"status,omitempty"`
}
