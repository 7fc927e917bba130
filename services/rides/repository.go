package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/minh-swinburne/ridelink/services/rides RideRepo,UserRepo
type RideRepo interface {
	// CreateRideWithPayment inserts the ride and its pending payment as a
	// single transaction: either both rows exist afterwards or neither does.
	CreateRideWithPayment(ctx context.Context, ride *models.Ride, payment *models.Payment) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	// UpdateRide persists the ride guarded by its version; a stale version
	// yields a concurrency conflict and increments nothing.
	UpdateRide(ctx context.Context, ride *models.Ride) error
}

// UserRepo defines the read capability the ride workflow needs from the
// user directory
type UserRepo interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
