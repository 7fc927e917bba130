package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/minh-swinburne/ridelink/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, req models.RideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, requesterID uuid.UUID) (*models.Ride, error)
}
