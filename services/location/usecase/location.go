package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/logger"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/utils"
	"github.com/minh-swinburne/ridelink/services/location"
)

// locationUC implements the location.LocationUC interface
type locationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	geocodingGW  location.GeocodingGW
	locationGW   location.LocationGW
	log          *logger.AppLogger
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	geocodingGW location.GeocodingGW,
	locationGW location.LocationGW,
	log *logger.AppLogger,
) location.LocationUC {
	return &locationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		geocodingGW:  geocodingGW,
		locationGW:   locationGW,
		log:          log,
	}
}

// ResolveOrCreate resolves a free-text address or explicit coordinates to a
// stored location, creating one when no match exists. Existing rows are never
// mutated; at most one new row is created per call.
func (uc *locationUC) ResolveOrCreate(ctx context.Context, req models.LocationRequest) (*models.Location, error) {
	hasCoords := req.Latitude != nil && req.Longitude != nil

	if !hasCoords && req.Address == "" {
		return nil, apperrors.New(apperrors.KindInvalidRequest,
			"either an address or coordinates must be supplied")
	}

	if hasCoords {
		return uc.resolveByCoordinates(ctx, req)
	}
	return uc.resolveByAddress(ctx, req.Address)
}

func (uc *locationUC) resolveByCoordinates(ctx context.Context, req models.LocationRequest) (*models.Location, error) {
	lat, lon := *req.Latitude, *req.Longitude
	if !utils.ValidCoordinates(lat, lon) {
		return nil, apperrors.New(apperrors.KindInvalidRequest,
			"invalid coordinates (%f, %f)", lat, lon)
	}

	existing, err := uc.locationRepo.GetByCoordinates(ctx, lat, lon)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindLocationResolutionFailed, err,
			"coordinate lookup failed for (%f, %f)", lat, lon)
	}
	if existing != nil {
		return existing, nil
	}

	// No human-readable address supplied: ask the geocoder for one
	address := req.Address
	if address == "" {
		address, err = uc.geocodingGW.CoordinatesToAddress(ctx, lat, lon)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindLocationResolutionFailed, err,
				"reverse geocoding failed for (%f, %f)", lat, lon)
		}
	}

	return uc.create(ctx, address, lat, lon)
}

func (uc *locationUC) resolveByAddress(ctx context.Context, address string) (*models.Location, error) {
	existing, err := uc.locationRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindLocationResolutionFailed, err,
			"address lookup failed for %q", address)
	}
	if existing != nil {
		return existing, nil
	}

	lat, lon, err := uc.geocodingGW.AddressToCoordinates(ctx, address)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindLocationResolutionFailed, err,
			"geocoding failed for %q", address)
	}

	return uc.create(ctx, address, lat, lon)
}

func (uc *locationUC) create(ctx context.Context, address string, lat, lon float64) (*models.Location, error) {
	loc := &models.Location{
		ID:        uuid.New(),
		Address:   address,
		Latitude:  &lat,
		Longitude: &lon,
		Geohash:   utils.CoordinateKey(lat, lon),
		CreatedAt: time.Now(),
	}

	if err := uc.locationRepo.CreateLocation(ctx, loc); err != nil {
		return nil, apperrors.Wrap(apperrors.KindLocationResolutionFailed, err,
			"failed to persist location %q", address)
	}

	if err := uc.locationGW.PublishLocationCreated(ctx, loc); err != nil {
		uc.log.WithFields(logrus.Fields{"location_id": loc.ID}).
			WithError(err).Warn("Failed to publish location created event")
	}

	return loc, nil
}
