package location

import (
	"context"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// LocationUC defines the interface for location resolution business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/minh-swinburne/ridelink/services/location LocationUC
type LocationUC interface {
	ResolveOrCreate(ctx context.Context, req models.LocationRequest) (*models.Location, error)
}
