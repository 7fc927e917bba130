package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/logger"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	"github.com/minh-swinburne/ridelink/services/match"
)

// matchUC implements the match.MatchUC interface
type matchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	userRepo  match.UserRepo
	matchGW   match.MatchGW
	log       *logger.AppLogger
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	matchRepo match.MatchRepo,
	userRepo match.UserRepo,
	matchGW match.MatchGW,
	log *logger.AppLogger,
) match.MatchUC {
	return &matchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		userRepo:  userRepo,
		matchGW:   matchGW,
		log:       log,
	}
}

// MatchRide binds a driver and vehicle to a pending ride. Assignment is
// caller-directed and validated: the ride must be pending, the driver must
// hold the driver role, the vehicle must belong to the driver, and the
// capacity rule for the ride's type must hold. All failures leave the ride
// untouched.
func (uc *matchUC) MatchRide(ctx context.Context, req models.MatchRequest) (*models.Ride, error) {
	acquired, err := uc.matchRepo.AcquireMatchLock(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperrors.New(apperrors.KindConcurrencyConflict,
			"ride %s is being matched by another request", req.RideID)
	}
	defer func() {
		if err := uc.matchRepo.ReleaseMatchLock(context.WithoutCancel(ctx), req.RideID); err != nil {
			uc.log.WithFields(logrus.Fields{"ride_id": req.RideID}).
				WithError(err).Warn("Failed to release match lock")
		}
	}()

	ride, err := uc.matchRepo.GetRide(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	driver, err := uc.userRepo.GetUser(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if !driver.IsDriver() {
		return nil, apperrors.New(apperrors.KindInvalidRoleOrOwnership,
			"user %s does not hold the driver role", req.DriverID)
	}

	vehicle, err := uc.userRepo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != req.DriverID {
		return nil, apperrors.New(apperrors.KindInvalidRoleOrOwnership,
			"vehicle %s is not owned by driver %s", req.VehicleID, req.DriverID)
	}

	if err := ride.BindDriver(req.DriverID, req.VehicleID, req.PickupETA, time.Now()); err != nil {
		return nil, err
	}

	// The capacity re-check and the guarded update share one transaction;
	// once that commit starts it runs to completion regardless of the caller.
	commitCtx := context.WithoutCancel(ctx)
	if err := uc.matchRepo.BindDriver(commitCtx, ride, uc.maxOtherActiveRides(ride.RideType)); err != nil {
		return nil, err
	}

	if err := uc.matchGW.PublishRideMatched(commitCtx, ride); err != nil {
		uc.log.WithFields(logrus.Fields{"ride_id": ride.ID}).
			WithError(err).Warn("Failed to publish ride matched event")
	}

	uc.log.WithFields(logrus.Fields{
		"ride_id":    ride.ID,
		"driver_id":  req.DriverID,
		"vehicle_id": req.VehicleID,
	}).Info("Ride matched")

	return ride, nil
}

// maxOtherActiveRides returns how many active rides, besides the one being
// matched, the driver may already hold. Shared rides tolerate up to 3;
// standard rides tolerate none.
func (uc *matchUC) maxOtherActiveRides(rideType models.RideType) int {
	if rideType == models.RideTypeShared {
		if uc.cfg.Rides.SharedMaxOtherRides > 0 {
			return uc.cfg.Rides.SharedMaxOtherRides
		}
		return 3
	}
	return 0
}
