package location

import (
	"context"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// LocationRepo defines the interface for location data access operations.
// Lookup methods return (nil, nil) when no row matches.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/minh-swinburne/ridelink/services/location LocationRepo
type LocationRepo interface {
	GetByCoordinates(ctx context.Context, latitude, longitude float64) (*models.Location, error)
	GetByAddress(ctx context.Context, address string) (*models.Location, error)
	CreateLocation(ctx context.Context, location *models.Location) error
}
