package match

import (
	"context"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// MatchGW defines the interface for outbound match events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/minh-swinburne/ridelink/services/match MatchGW
type MatchGW interface {
	PublishRideMatched(ctx context.Context, ride *models.Ride) error
}
