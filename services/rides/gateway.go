package rides

import (
	"context"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// RideGW defines the interface for outbound ride domain events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/minh-swinburne/ridelink/services/rides RideGW
type RideGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
	PublishRideUpdated(ctx context.Context, ride *models.Ride) error
	PublishPaymentCreated(ctx context.Context, payment *models.Payment) error
}
