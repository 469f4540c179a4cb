package constants

// WebSocket event names
const (
	EventLocationUpdate = "location_update"
	EventBeacon         = "beacon"
	EventError          = "error"
)

// WebSocket error codes
const (
	ErrorInvalidLocation = "INVALID_LOCATION"
	ErrorInvalidMessage  = "INVALID_MESSAGE"
	ErrorInternal        = "INTERNAL_ERROR"
)
