package constants

// NSQ topics for outbound domain events
const (
	TopicRideCreated     = "ride.created"
	TopicRideUpdated     = "ride.updated"
	TopicRideMatched     = "ride.matched"
	TopicLocationCreated = "location.created"
	TopicPaymentCreated  = "payment.created"
)
