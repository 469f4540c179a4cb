package constants

// Redis key formats
const (
	// Geo index
	KeyCategoryGeo    = "dispatch:geo:%s"             // Format: dispatch:geo:{category}
	KeyDriverLocation = "dispatch:driver:location:%s" // Format: dispatch:driver:location:{driver_id}
	KeyDriverSeen     = "dispatch:driver:seen"        // Sorted set of driver IDs scored by last update time

	// Presence
	KeyOnlineDrivers  = "dispatch:drivers:online"
	KeyOnlineClients  = "dispatch:clients:online"
	KeyUserSocket     = "dispatch:socket:user:%s" // Format: dispatch:socket:user:{user_id}
	KeySocketBindings = "dispatch:socket:bindings" // Hash: socket_id -> user_id

	// Claims
	KeyOrderClaim  = "dispatch:claim:order:%s"  // Format: dispatch:claim:order:{order_id}
	KeyDriverClaim = "dispatch:claim:driver:%s" // Format: dispatch:claim:driver:{driver_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
