package match

import (
	"context"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// MatchUC defines the interface for driver/vehicle matching business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/minh-swinburne/ridelink/services/match MatchUC
type MatchUC interface {
	// MatchRide binds a driver and vehicle to a pending ride and advances it
	// to picking. Exactly one of two concurrent calls against the same ride
	// can succeed.
	MatchRide(ctx context.Context, req models.MatchRequest) (*models.Ride, error)
}
