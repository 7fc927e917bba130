package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// MatchRepo defines the data access operations the matching workflow needs
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/minh-swinburne/ridelink/services/match MatchRepo,UserRepo
type MatchRepo interface {
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	// BindDriver commits the driver/vehicle binding prepared on the ride.
	// The capacity re-check and the guarded status/version update run in a
	// single transaction; on success the ride's version is advanced.
	BindDriver(ctx context.Context, ride *models.Ride, maxOtherActiveRides int) error
	// AcquireMatchLock takes the short-lived per-ride lock; false means a
	// competing match holds it.
	AcquireMatchLock(ctx context.Context, rideID uuid.UUID) (bool, error)
	ReleaseMatchLock(ctx context.Context, rideID uuid.UUID) error
}

// UserRepo defines the user directory reads the matching workflow needs
type UserRepo interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
}
