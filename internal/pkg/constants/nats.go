package constants

// NATS Subjects
const (
	// Inbound
	SubjectDriverBeacon   = "driver.beacon"
	SubjectLocationUpdate = "driver.location"

	// Outbound dispatch events
	SubjectOrderClaimed  = "dispatch.claimed"
	SubjectOrderReleased = "dispatch.released"
	SubjectOrderExpired  = "dispatch.expired"
)
