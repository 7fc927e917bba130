package models

import "time"

// RideEvent is the payload published for ride lifecycle notifications
type RideEvent struct {
	Ride      *Ride     `json:"ride"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationEvent is the payload published when a location row is created
type LocationEvent struct {
	Location  *Location `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentEvent is the payload published when a payment record is created
type PaymentEvent struct {
	Payment   *Payment  `json:"payment"`
	Timestamp time.Time `json:"timestamp"`
}
