package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment represents a payment record. One pending payment is created per
// ride at creation time; capture and refund happen downstream.
type Payment struct {
	ID        uuid.UUID     `json:"payment_id" db:"id"`
	RideID    uuid.UUID     `json:"ride_id" db:"ride_id"`
	Amount    float64       `json:"amount" db:"amount"`
	Method    string        `json:"method" db:"method"`
	Status    PaymentStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}
