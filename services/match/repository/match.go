package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/minh-swinburne/ridelink/internal/pkg/apperrors"
	"github.com/minh-swinburne/ridelink/internal/pkg/constants"
	"github.com/minh-swinburne/ridelink/internal/pkg/database"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	ridesrepo "github.com/minh-swinburne/ridelink/services/rides/repository"
)

// MatchRepo provides the data access for the matching workflow: ride reads,
// the atomic driver bind, and the per-ride Redis lock.
type MatchRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
	rides *ridesrepo.RideRepo
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *MatchRepo {
	return &MatchRepo{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
		rides: ridesrepo.NewRideRepository(cfg, db),
	}
}

// GetRide retrieves a ride by ID.
func (r *MatchRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return r.rides.GetRide(ctx, rideID)
}

// BindDriver commits a prepared driver/vehicle binding. The driver's other
// active rides are counted and the ride row is updated inside the same
// transaction, guarded on pending status and the version the caller loaded.
// Two concurrent binds of the same ride therefore cannot both succeed.
func (r *MatchRepo) BindDriver(ctx context.Context, ride *models.Ride, maxOtherActiveRides int) error {
	if ride.DriverID == nil || ride.VehicleID == nil {
		return fmt.Errorf("ride %s has no driver/vehicle binding prepared", ride.ID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	countQuery := `
		SELECT COUNT(*) FROM rides
		WHERE driver_id = $1
		AND status IN ('picking', 'travelling')
		AND id <> $2
	`
	var otherActive int
	if err := tx.QueryRowContext(ctx, countQuery, *ride.DriverID, ride.ID).Scan(&otherActive); err != nil {
		return fmt.Errorf("failed to count active rides: %w", err)
	}
	if otherActive > maxOtherActiveRides {
		return apperrors.New(apperrors.KindDriverAlreadyInRides,
			"driver %s already has %d active rides", *ride.DriverID, otherActive)
	}

	updateQuery := `
		UPDATE rides SET
			driver_id = $1, vehicle_id = $2, status = $3,
			pickup_eta = $4, version = version + 1, updated_at = $5
		WHERE id = $6 AND status = 'pending' AND version = $7
	`
	result, err := tx.ExecContext(ctx, updateQuery,
		*ride.DriverID,
		*ride.VehicleID,
		models.RideStatusPicking,
		ride.PickupETA,
		ride.UpdatedAt,
		ride.ID,
		ride.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to bind driver: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read bind result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindConcurrencyConflict,
			"ride %s is no longer pending", ride.ID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	ride.Version++
	return nil
}

// AcquireMatchLock takes the short-lived per-ride lock in Redis.
func (r *MatchRepo) AcquireMatchLock(ctx context.Context, rideID uuid.UUID) (bool, error) {
	ttl := time.Duration(r.cfg.Rides.MatchLockTTL) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Second
	}

	key := fmt.Sprintf(constants.KeyRideMatchLock, rideID)
	acquired, err := r.redis.AcquireLock(ctx, key, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire match lock: %w", err)
	}
	return acquired, nil
}

// ReleaseMatchLock releases the per-ride lock.
func (r *MatchRepo) ReleaseMatchLock(ctx context.Context, rideID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyRideMatchLock, rideID)
	return r.redis.ReleaseLock(ctx, key)
}
