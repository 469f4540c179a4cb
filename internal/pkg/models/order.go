package models

import "time"

// Order type / service category constants partitioning the geo index
const (
	OrderTypeTaxi          = "TAXI"
	OrderTypeDelivery      = "DELIVERY"
	OrderTypeIntercityTaxi = "INTERCITY_TAXI"
	OrderTypeCargo         = "CARGO"
)

// OrderTypes lists every service category in a stable order.
var OrderTypes = []string{
	OrderTypeTaxi,
	OrderTypeDelivery,
	OrderTypeIntercityTaxi,
	OrderTypeCargo,
}

// OrderStatus represents the current status of an order
type OrderStatus string

const (
	OrderStatusCreated          OrderStatus = "CREATED"
	OrderStatusStarted          OrderStatus = "STARTED"
	OrderStatusRejected         OrderStatus = "REJECTED"
	OrderStatusRejectedByClient OrderStatus = "REJECTED_BY_CLIENT"
	OrderStatusRejectedByDriver OrderStatus = "REJECTED_BY_DRIVER"
	OrderStatusExpired          OrderStatus = "EXPIRED"
)

// Rejection reasons persisted alongside a terminal status. A client whose
// order timed out with no drivers must be distinguishable from one hit by a
// storage failure.
const (
	ReasonNoDriversFound = "no_drivers_found"
	ReasonDispatchExpiry = "dispatch_timeout"
	ReasonStorageError   = "storage_error"
)

// OrderRequest is the dispatch-relevant subset of a durable order record
type OrderRequest struct {
	OrderID   string      `json:"order_id" db:"id"`
	ClientID  string      `json:"client_id" db:"client_id"`
	DriverID  string      `json:"driver_id,omitempty" db:"driver_id"`
	OrderType string      `json:"order_type" db:"order_type"`
	Status    OrderStatus `json:"status" db:"status"`
	Latitude  float64     `json:"latitude" db:"latitude"`
	Longitude float64     `json:"longitude" db:"longitude"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// OrderStatusUpdate carries the optional fields written with a status transition
type OrderStatusUpdate struct {
	DriverID string
	Reason   string
}
