package models

import "time"

// Location represents a geographic coordinate pair
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// DriverPosition is the canonical position record for an online driver
type DriverPosition struct {
	DriverID      string    `json:"driver_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// NearbyDriver represents a candidate driver with its distance from the query point
type NearbyDriver struct {
	DriverID  string   `json:"driver_id"`
	Location  Location `json:"location"`
	DistanceM float64  `json:"distance_m"`
}

// LocationUpdate represents a driver location update event
type LocationUpdate struct {
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
