package location

import (
	"context"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// GeocodingGW defines the interface to the external geocoding provider
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/minh-swinburne/ridelink/services/location GeocodingGW,LocationGW
type GeocodingGW interface {
	AddressToCoordinates(ctx context.Context, address string) (latitude, longitude float64, err error)
	CoordinatesToAddress(ctx context.Context, latitude, longitude float64) (string, error)
}

// LocationGW defines the interface for outbound location events
type LocationGW interface {
	PublishLocationCreated(ctx context.Context, location *models.Location) error
}
