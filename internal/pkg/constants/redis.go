package constants

// Redis key formats
const (
	// KeyRideMatchLock guards the bind of a single ride: ride_match_lock:<ride_id>
	KeyRideMatchLock = "ride_match_lock:%s"
)
