package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/logger"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/internal/pkg/pricing"
	"github.com/minh-swinburne/ridelink/services/location"
	"github.com/minh-swinburne/ridelink/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg        *models.Config
	ridesRepo  rides.RideRepo
	userRepo   rides.UserRepo
	locationUC location.LocationUC
	estimator  *pricing.Estimator
	ridesGW    rides.RideGW
	log        *logger.AppLogger
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	ridesRepo rides.RideRepo,
	userRepo rides.UserRepo,
	locationUC location.LocationUC,
	estimator *pricing.Estimator,
	ridesGW rides.RideGW,
	log *logger.AppLogger,
) rides.RideUC {
	return &rideUC{
		cfg:        cfg,
		ridesRepo:  ridesRepo,
		userRepo:   userRepo,
		locationUC: locationUC,
		estimator:  estimator,
		ridesGW:    ridesGW,
		log:        log,
	}
}

// CreateRide orchestrates ride creation: resolve both locations, compute
// distance, fare and ETAs, then persist the pending ride together with its
// pending payment in one transaction. Locations created along the way are
// kept even when a later step fails.
func (uc *rideUC) CreateRide(ctx context.Context, req models.RideRequest) (*models.Ride, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	passenger, err := uc.userRepo.GetUser(ctx, req.PassengerID)
	if err != nil {
		return nil, err
	}
	if !passenger.IsPassenger() {
		return nil, apperrors.New(apperrors.KindInvalidRoleOrOwnership,
			"user %s does not hold the passenger role", req.PassengerID)
	}

	pickup, err := uc.locationUC.ResolveOrCreate(ctx, models.LocationRequest{
		Address:   req.PickupAddress,
		Latitude:  req.PickupLatitude,
		Longitude: req.PickupLongitude,
	})
	if err != nil {
		return nil, err
	}

	destination, err := uc.locationUC.ResolveOrCreate(ctx, models.LocationRequest{
		Address:   req.DestinationAddress,
		Latitude:  req.DestinationLatitude,
		Longitude: req.DestinationLongitude,
	})
	if err != nil {
		return nil, err
	}

	if pickup.ID == destination.ID {
		return nil, apperrors.New(apperrors.KindInvalidRequest,
			"pickup and destination resolve to the same location %s", pickup.ID)
	}
	if !pickup.HasCoordinates() {
		return nil, apperrors.New(apperrors.KindInvalidRequest,
			"pickup location %s is missing coordinates", pickup.ID)
	}
	if !destination.HasCoordinates() {
		return nil, apperrors.New(apperrors.KindInvalidRequest,
			"destination location %s is missing coordinates", destination.ID)
	}

	distance, err := uc.estimator.Distance(
		*pickup.Latitude, *pickup.Longitude,
		*destination.Latitude, *destination.Longitude,
	)
	if err != nil {
		return nil, err
	}

	fare := uc.estimator.Fare(distance)
	if !uc.estimator.FareInBounds(fare) {
		return nil, apperrors.New(apperrors.KindInvalidRequest,
			"computed fare %.2f is outside the configured bounds", fare)
	}

	now := time.Now()
	pickupETA := now.Add(time.Duration(uc.estimator.PickupDelayMinutes(distance) * float64(time.Minute)))
	arrivalETA := pickupETA.Add(time.Duration(uc.estimator.TravelTimeMinutes(distance) * float64(time.Minute)))

	ride := &models.Ride{
		ID:                    uuid.New(),
		PassengerID:           req.PassengerID,
		RideType:              req.RideType,
		VehicleClass:          req.VehicleClass,
		Status:                models.RideStatusPending,
		PickupLocationID:      pickup.ID,
		DestinationLocationID: destination.ID,
		PickupETA:             &pickupETA,
		ArrivalETA:            &arrivalETA,
		Fare:                  fare,
		Notes:                 req.Notes,
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	payment := &models.Payment{
		ID:        uuid.New(),
		RideID:    ride.ID,
		Amount:    fare,
		Method:    req.PaymentMethod,
		Status:    models.PaymentStatusPending,
		CreatedAt: now,
	}

	// Once the commit starts it must run to completion; a caller cancel at
	// this point must not leave a half-written ride.
	commitCtx := context.WithoutCancel(ctx)
	if err := uc.ridesRepo.CreateRideWithPayment(commitCtx, ride, payment); err != nil {
		return nil, err
	}

	uc.publishCreated(commitCtx, ride, payment)

	uc.log.WithFields(logrus.Fields{
		"ride_id":      ride.ID,
		"passenger_id": ride.PassengerID,
		"distance_km":  distance,
		"fare":         fare,
	}).Info("Ride created")

	return ride, nil
}

func (uc *rideUC) validateRequest(req models.RideRequest) error {
	if !req.RideType.Valid() {
		return apperrors.New(apperrors.KindInvalidRequest, "unknown ride type %q", req.RideType)
	}
	if !req.VehicleClass.Valid() {
		return apperrors.New(apperrors.KindInvalidRequest, "unknown vehicle class %q", req.VehicleClass)
	}
	if req.PaymentMethod == "" {
		return apperrors.New(apperrors.KindInvalidRequest, "payment method is required")
	}
	if max := uc.cfg.Rides.MaxNotesLength; max > 0 && len(req.Notes) > max {
		return apperrors.New(apperrors.KindInvalidRequest, "notes exceed %d characters", max)
	}
	return nil
}

// publishCreated emits the post-commit domain events. Publishing is a
// notification, not control flow: the committed ride stands even when the
// event bus is down.
func (uc *rideUC) publishCreated(ctx context.Context, ride *models.Ride, payment *models.Payment) {
	if err := uc.ridesGW.PublishRideCreated(ctx, ride); err != nil {
		uc.log.WithFields(logrus.Fields{"ride_id": ride.ID}).
			WithError(err).Warn("Failed to publish ride created event")
	}
	if err := uc.ridesGW.PublishPaymentCreated(ctx, payment); err != nil {
		uc.log.WithFields(logrus.Fields{"payment_id": payment.ID}).
			WithError(err).Warn("Failed to publish payment created event")
	}
}

// GetRide retrieves a ride by ID
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.ridesRepo.GetRide(ctx, rideID)
}

// StartRide records the driver's arrival at the pickup point and moves the
// ride from picking to travelling.
func (uc *rideUC) StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	return uc.progress(ctx, rideID, func(ride *models.Ride, now time.Time) error {
		if ride.DriverID == nil || *ride.DriverID != driverID {
			return apperrors.New(apperrors.KindInvalidRoleOrOwnership,
				"driver %s is not assigned to ride %s", driverID, rideID)
		}
		return ride.Start(now)
	})
}

// CompleteRide finishes a travelling ride.
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	return uc.progress(ctx, rideID, func(ride *models.Ride, now time.Time) error {
		if ride.DriverID == nil || *ride.DriverID != driverID {
			return apperrors.New(apperrors.KindInvalidRoleOrOwnership,
				"driver %s is not assigned to ride %s", driverID, rideID)
		}
		return ride.Complete(now)
	})
}

// CancelRide aborts a non-terminal ride on behalf of its passenger or
// assigned driver.
func (uc *rideUC) CancelRide(ctx context.Context, rideID, requesterID uuid.UUID) (*models.Ride, error) {
	return uc.progress(ctx, rideID, func(ride *models.Ride, now time.Time) error {
		if ride.PassengerID != requesterID &&
			(ride.DriverID == nil || *ride.DriverID != requesterID) {
			return apperrors.New(apperrors.KindInvalidRoleOrOwnership,
				"user %s is not a party to ride %s", requesterID, rideID)
		}
		return ride.Cancel(now)
	})
}

func (uc *rideUC) progress(ctx context.Context, rideID uuid.UUID, mutate func(*models.Ride, time.Time) error) (*models.Ride, error) {
	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if err := mutate(ride, time.Now()); err != nil {
		return nil, err
	}

	commitCtx := context.WithoutCancel(ctx)
	if err := uc.ridesRepo.UpdateRide(commitCtx, ride); err != nil {
		return nil, err
	}

	if err := uc.ridesGW.PublishRideUpdated(commitCtx, ride); err != nil {
		uc.log.WithFields(logrus.Fields{"ride_id": ride.ID}).
			WithError(err).Warn("Failed to publish ride updated event")
	}

	return ride, nil
}
