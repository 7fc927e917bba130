package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusPending    RideStatus = "pending"
	RideStatusPicking    RideStatus = "picking"
	RideStatusTravelling RideStatus = "travelling"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed.
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// IsActive reports whether the ride counts against a driver's capacity.
func (s RideStatus) IsActive() bool {
	return s == RideStatusPicking || s == RideStatusTravelling
}

// CanTransitionTo validates a status transition against the ride lifecycle:
// pending -> picking -> travelling -> completed, with cancelled reachable
// from any non-terminal status.
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case RideStatusPicking:
		return s == RideStatusPending
	case RideStatusTravelling:
		return s == RideStatusPicking
	case RideStatusCompleted:
		return s == RideStatusTravelling
	case RideStatusCancelled:
		return true
	default:
		return false
	}
}

// RideType classifies how a ride may share its driver
type RideType string

const (
	RideTypeStandard RideType = "standard"
	RideTypeShared   RideType = "shared"
)

// Valid reports whether the ride type is one of the known values.
func (t RideType) Valid() bool {
	return t == RideTypeStandard || t == RideTypeShared
}

// VehicleClass is the vehicle category requested by the passenger
type VehicleClass string

const (
	VehicleClassMotorbike VehicleClass = "motorbike"
	VehicleClassSmallCar  VehicleClass = "small_car"
	VehicleClassLargeCar  VehicleClass = "large_car"
)

// Valid reports whether the vehicle class is one of the known values.
func (c VehicleClass) Valid() bool {
	switch c {
	case VehicleClassMotorbike, VehicleClassSmallCar, VehicleClassLargeCar:
		return true
	}
	return false
}

// Ride is the central aggregate of the booking workflow. Driver and vehicle
// stay nil until a match binds them; a ride with a driver is never pending.
type Ride struct {
	ID                    uuid.UUID    `json:"ride_id" db:"id"`
	PassengerID           uuid.UUID    `json:"passenger_id" db:"passenger_id"`
	DriverID              *uuid.UUID   `json:"driver_id,omitempty" db:"driver_id"`
	VehicleID             *uuid.UUID   `json:"vehicle_id,omitempty" db:"vehicle_id"`
	RideType              RideType     `json:"ride_type" db:"ride_type"`
	VehicleClass          VehicleClass `json:"vehicle_class" db:"vehicle_class"`
	Status                RideStatus   `json:"status" db:"status"`
	PickupLocationID      uuid.UUID    `json:"pickup_location_id" db:"pickup_location_id"`
	DestinationLocationID uuid.UUID    `json:"destination_location_id" db:"destination_location_id"`
	PickupETA             *time.Time   `json:"pickup_eta,omitempty" db:"pickup_eta"`
	PickupATA             *time.Time   `json:"pickup_ata,omitempty" db:"pickup_ata"`
	ArrivalETA            *time.Time   `json:"arrival_eta,omitempty" db:"arrival_eta"`
	ArrivalATA            *time.Time   `json:"arrival_ata,omitempty" db:"arrival_ata"`
	Fare                  float64      `json:"fare" db:"fare"`
	Notes                 string       `json:"notes,omitempty" db:"notes"`
	Version               int64        `json:"version" db:"version"`
	CreatedAt             time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at" db:"updated_at"`
}

// BindDriver attaches a driver and vehicle to a pending ride and moves it to
// picking. The aggregate is left untouched when any guard fails.
func (r *Ride) BindDriver(driverID, vehicleID uuid.UUID, pickupETA *time.Time, now time.Time) error {
	if r.Status != RideStatusPending {
		return apperrors.New(apperrors.KindConcurrencyConflict,
			"ride %s is already %s", r.ID, r.Status)
	}
	if pickupETA != nil && pickupETA.Before(now) {
		return apperrors.New(apperrors.KindInvalidRequest,
			"pickup ETA for ride %s must not be in the past", r.ID)
	}
	r.DriverID = &driverID
	r.VehicleID = &vehicleID
	r.Status = RideStatusPicking
	if pickupETA != nil {
		r.PickupETA = pickupETA
	}
	r.UpdatedAt = now
	return nil
}

// Start records the driver's arrival at the pickup point and moves the ride
// to travelling.
func (r *Ride) Start(now time.Time) error {
	if err := r.transition(RideStatusTravelling, now); err != nil {
		return err
	}
	r.PickupATA = &now
	return nil
}

// Complete finishes a travelling ride and records the actual arrival time.
func (r *Ride) Complete(now time.Time) error {
	if err := r.transition(RideStatusCompleted, now); err != nil {
		return err
	}
	r.ArrivalATA = &now
	return nil
}

// Cancel aborts a ride from any non-terminal status.
func (r *Ride) Cancel(now time.Time) error {
	return r.transition(RideStatusCancelled, now)
}

func (r *Ride) transition(next RideStatus, now time.Time) error {
	if !r.Status.CanTransitionTo(next) {
		return apperrors.New(apperrors.KindInvalidRequest,
			"ride %s cannot go from %s to %s", r.ID, r.Status, next)
	}
	r.Status = next
	r.UpdatedAt = now
	return nil
}

// RideRequest is the input for creating a new ride
type RideRequest struct {
	PassengerID          uuid.UUID    `json:"passenger_id"`
	RideType             RideType     `json:"ride_type"`
	VehicleClass         VehicleClass `json:"vehicle_class"`
	PickupAddress        string       `json:"pickup_address,omitempty"`
	PickupLatitude       *float64     `json:"pickup_latitude,omitempty"`
	PickupLongitude      *float64     `json:"pickup_longitude,omitempty"`
	DestinationAddress   string       `json:"destination_address,omitempty"`
	DestinationLatitude  *float64     `json:"destination_latitude,omitempty"`
	DestinationLongitude *float64     `json:"destination_longitude,omitempty"`
	PaymentMethod        string       `json:"payment_method"`
	Notes                string       `json:"notes,omitempty"`
}

// MatchRequest is the input for binding a driver and vehicle to a ride
type MatchRequest struct {
	RideID    uuid.UUID  `json:"ride_id"`
	DriverID  uuid.UUID  `json:"driver_id"`
	VehicleID uuid.UUID  `json:"vehicle_id"`
	PickupETA *time.Time `json:"pickup_eta,omitempty"`
}
