package models

import "time"

// User roles known to the presence registry
const (
	RoleDriver = "driver"
	RoleClient = "client"
)

// PresenceRecord tracks a user's connection state, distinct from geo-position
type PresenceRecord struct {
	UserID     string    `json:"user_id"`
	SocketID   string    `json:"socket_id"`
	Role       string    `json:"role"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// SocketBinding is the reverse side of a user/socket binding, carrying the
// role so a dead socket gets the role-correct offline cascade
type SocketBinding struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// BeaconEvent represents an online/offline toggle event
type BeaconEvent struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}
