package models

import "time"

// ClaimToken is the ephemeral exclusivity lock binding one driver to one order.
// It lives only in the backing store with a TTL and is never persisted.
type ClaimToken struct {
	OrderID   string    `json:"order_id"`
	DriverID  string    `json:"driver_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DispatchEvent is published on claim, release and expiry transitions
type DispatchEvent struct {
	OrderID   string    `json:"order_id"`
	ClientID  string    `json:"client_id,omitempty"`
	DriverID  string    `json:"driver_id,omitempty"`
	OrderType string    `json:"order_type,omitempty"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
